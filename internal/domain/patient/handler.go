package patient

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
	api.GET("/patients", h.List)
	api.GET("/patients/:id", h.Get)
}

func columns() []table.Column {
	return []table.Column{
		{Field: "displayName", Header: "Patient", Type: table.CellAvatar},
		{Field: "age", Header: "Age", Align: "right"},
		{Field: "gender", Header: "Gender"},
		{Field: "bloodGroup", Header: "Blood Group"},
		{Field: "phone", Header: "Phone"},
		{Field: "status", Header: "Status", Type: table.CellChip, ChipColor: statusColor},
		{Field: "createdAt", Header: "Registered", Type: table.CellDate},
	}
}

func statusColor(value any) string {
	s, _ := value.(string)
	switch Status(s) {
	case StatusActive:
		return "success"
	case StatusBlocked:
		return "error"
	default:
		return "default"
	}
}

func (h *Handler) List(c echo.Context) error {
	state := listview.StateFromContext(c)

	patients, synthetic, err := h.svc.FetchAll(c.Request().Context(), upstream.Query{})
	if err != nil {
		return listview.HTTPError(err)
	}

	rows := listview.Rows(patients)
	return c.JSON(http.StatusOK, listview.NewResponse(rows, columns(), state, synthetic))
}

func (h *Handler) Get(c echo.Context) error {
	p, err := h.svc.FetchOne(c.Request().Context(), c.Param("id"))
	if err != nil {
		return listview.HTTPError(err)
	}
	return c.JSON(http.StatusOK, p)
}
