package specialization

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
	api.GET("/specializations", h.List)
	api.GET("/specializations/:id", h.Get)
}

func columns() []table.Column {
	return []table.Column{
		{Field: "name", Header: "Specialization"},
		{Field: "description", Header: "Description"},
		{Field: "doctorCount", Header: "Doctors", Align: "right"},
		{Field: "status", Header: "Status", Type: table.CellChip, ChipColor: statusColor},
	}
}

func statusColor(value any) string {
	s, _ := value.(string)
	if Status(s) == StatusArchived {
		return "default"
	}
	return "success"
}

func (h *Handler) List(c echo.Context) error {
	state := listview.StateFromContext(c)

	specs, synthetic, err := h.svc.FetchAll(c.Request().Context(), upstream.Query{})
	if err != nil {
		return listview.HTTPError(err)
	}

	rows := listview.Rows(specs)
	return c.JSON(http.StatusOK, listview.NewResponse(rows, columns(), state, synthetic))
}

func (h *Handler) Get(c echo.Context) error {
	sp, err := h.svc.FetchOne(c.Request().Context(), c.Param("id"))
	if err != nil {
		return listview.HTTPError(err)
	}
	return c.JSON(http.StatusOK, sp)
}
