package notification

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
	api.GET("/notifications", h.List)
	api.GET("/notifications/:id", h.Get)
}

func columns() []table.Column {
	return []table.Column{
		{Field: "title", Header: "Title"},
		{Field: "message", Header: "Message"},
		{Field: "kind", Header: "Kind", Type: table.CellChip, ChipColor: kindColor},
		{Field: "ageLabel", Header: "When"},
		{Field: "read", Header: "Read"},
	}
}

func kindColor(value any) string {
	s, _ := value.(string)
	switch Kind(s) {
	case KindAppointment:
		return "info"
	case KindPayment:
		return "success"
	default:
		return "default"
	}
}

func (h *Handler) List(c echo.Context) error {
	state := listview.StateFromContext(c)

	items, synthetic, err := h.svc.FetchAll(c.Request().Context(), upstream.Query{})
	if err != nil {
		return listview.HTTPError(err)
	}

	rows := listview.Rows(items)
	return c.JSON(http.StatusOK, listview.NewResponse(rows, columns(), state, synthetic))
}

func (h *Handler) Get(c echo.Context) error {
	n, err := h.svc.FetchOne(c.Request().Context(), c.Param("id"))
	if err != nil {
		return listview.HTTPError(err)
	}
	return c.JSON(http.StatusOK, n)
}
