package user

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/caredash/caredash/internal/platform/table"
	"github.com/caredash/caredash/internal/platform/upstream"
	"github.com/caredash/caredash/pkg/listview"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/users", h.List)
	api.GET("/users/:id", h.Get)
}

func columns() []table.Column {
	return []table.Column{
		{Field: "displayName", Header: "User", Type: table.CellAvatar},
		{Field: "email", Header: "Email"},
		{Field: "role", Header: "Role", Type: table.CellChip},
		{Field: "status", Header: "Status", Type: table.CellChip, ChipColor: statusColor},
		{Field: "lastLoginAt", Header: "Last Login", Type: table.CellDate},
	}
}

func statusColor(value any) string {
	s, _ := value.(string)
	if Status(s) == StatusSuspended {
		return "error"
	}
	return "success"
}

func (h *Handler) List(c echo.Context) error {
	state := listview.StateFromContext(c)

	users, synthetic, err := h.svc.FetchAll(c.Request().Context(), upstream.Query{})
	if err != nil {
		return listview.HTTPError(err)
	}

	rows := listview.Rows(users)
	return c.JSON(http.StatusOK, listview.NewResponse(rows, columns(), state, synthetic))
}

func (h *Handler) Get(c echo.Context) error {
	u, err := h.svc.FetchOne(c.Request().Context(), c.Param("id"))
	if err != nil {
		return listview.HTTPError(err)
	}
	return c.JSON(http.StatusOK, u)
}
