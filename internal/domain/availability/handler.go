package availability

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
	api.GET("/availability", h.List)
	api.GET("/availability/:id", h.Get)
}

func columns() []table.Column {
	return []table.Column{
		{Field: "day", Header: "Day"},
		{Field: "start", Header: "From"},
		{Field: "end", Header: "To"},
		{Field: "slotMinutes", Header: "Slot (min)", Align: "right"},
		{Field: "status", Header: "Status", Type: table.CellChip, ChipColor: statusColor},
	}
}

func statusColor(value any) string {
	s, _ := value.(string)
	switch Status(s) {
	case StatusAvailable:
		return "success"
	case StatusBreak:
		return "warning"
	default:
		return "default"
	}
}

func (h *Handler) List(c echo.Context) error {
	state := listview.StateFromContext(c)

	// The schedule is usually requested per doctor; forward that upstream.
	q := upstream.Query{}
	if doctorID := c.QueryParam("doctor_id"); doctorID != "" {
		q.Filters = map[string]string{"doctorId": doctorID}
	}

	entries, synthetic, err := h.svc.FetchAll(c.Request().Context(), q)
	if err != nil {
		return listview.HTTPError(err)
	}

	rows := listview.Rows(entries)
	return c.JSON(http.StatusOK, listview.NewResponse(rows, columns(), state, synthetic))
}

func (h *Handler) Get(c echo.Context) error {
	entry, err := h.svc.FetchOne(c.Request().Context(), c.Param("id"))
	if err != nil {
		return listview.HTTPError(err)
	}
	return c.JSON(http.StatusOK, entry)
}
