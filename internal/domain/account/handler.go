package account

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/caredash/caredash/internal/platform/session"
	"github.com/caredash/caredash/pkg/listview"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/auth/login", h.Login)
	api.POST("/auth/logout", h.Logout)
	api.GET("/auth/me", h.Me)
}

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type identityResponse struct {
	Subject   string `json:"subject"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	ExpiresAt string `json:"expiresAt,omitempty"`
}

func (h *Handler) Login(c echo.Context) error {
	var body loginBody
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	sess, err := h.svc.Login(c.Request().Context(), body.Email, body.Password)
	if err != nil {
		return listview.HTTPError(err)
	}
	return c.JSON(http.StatusOK, toIdentity(sess))
}

func (h *Handler) Logout(c echo.Context) error {
	if err := h.svc.Logout(c.Request().Context()); err != nil {
		return listview.HTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Me(c echo.Context) error {
	sess, ok := h.svc.Whoami()
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not signed in")
	}
	return c.JSON(http.StatusOK, toIdentity(sess))
}

func toIdentity(sess session.Session) identityResponse {
	resp := identityResponse{
		Subject: sess.Subject,
		Name:    sess.Name,
		Email:   sess.Email,
		Role:    sess.Role,
	}
	if !sess.ExpiresAt.IsZero() {
		resp.ExpiresAt = sess.ExpiresAt.Format(time.RFC3339)
	}
	return resp
}
