package payment

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
	api.GET("/payments", h.List)
	api.GET("/payments/:id", h.Get)
}

func columns() []table.Column {
	return []table.Column{
		{Field: "reference", Header: "Reference"},
		{Field: "patientName", Header: "Patient"},
		{Field: "doctorName", Header: "Doctor"},
		{Field: "amount", Header: "Amount", Align: "right"},
		{Field: "method", Header: "Method"},
		{Field: "status", Header: "Status", Type: table.CellChip, ChipColor: statusColor},
		{Field: "createdAt", Header: "Created", Type: table.CellDate},
	}
}

func statusColor(value any) string {
	s, _ := value.(string)
	switch Status(s) {
	case StatusPaid:
		return "success"
	case StatusFailed:
		return "error"
	case StatusRefunded:
		return "info"
	default:
		return "warning"
	}
}

func (h *Handler) List(c echo.Context) error {
	state := listview.StateFromContext(c)

	payments, synthetic, err := h.svc.FetchAll(c.Request().Context(), upstream.Query{})
	if err != nil {
		return listview.HTTPError(err)
	}

	rows := listview.Rows(payments)
	return c.JSON(http.StatusOK, listview.NewResponse(rows, columns(), state, synthetic))
}

func (h *Handler) Get(c echo.Context) error {
	p, err := h.svc.FetchOne(c.Request().Context(), c.Param("id"))
	if err != nil {
		return listview.HTTPError(err)
	}
	return c.JSON(http.StatusOK, p)
}
