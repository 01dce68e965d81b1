package appointment

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
	api.GET("/appointments", h.List)
	api.GET("/appointments/:id", h.Get)
}

func columns() []table.Column {
	return []table.Column{
		{Field: "patientName", Header: "Patient", Type: table.CellAvatar},
		{Field: "doctorName", Header: "Doctor"},
		{Field: "date", Header: "Date", Type: table.CellDate},
		{Field: "timeLabel", Header: "Time"},
		{Field: "reason", Header: "Reason"},
		{Field: "fee", Header: "Fee", Align: "right"},
		{Field: "status", Header: "Status", Type: table.CellChip, ChipColor: statusColor},
	}
}

func statusColor(value any) string {
	s, _ := value.(string)
	switch Status(s) {
	case StatusCompleted:
		return "success"
	case StatusCancelled:
		return "error"
	case StatusNoShow:
		return "warning"
	default:
		return "info"
	}
}

func (h *Handler) List(c echo.Context) error {
	state := listview.StateFromContext(c)

	appts, synthetic, err := h.svc.FetchAll(c.Request().Context(), upstream.Query{})
	if err != nil {
		return listview.HTTPError(err)
	}

	rows := listview.Rows(appts)
	return c.JSON(http.StatusOK, listview.NewResponse(rows, columns(), state, synthetic))
}

func (h *Handler) Get(c echo.Context) error {
	appt, err := h.svc.FetchOne(c.Request().Context(), c.Param("id"))
	if err != nil {
		return listview.HTTPError(err)
	}
	return c.JSON(http.StatusOK, appt)
}
