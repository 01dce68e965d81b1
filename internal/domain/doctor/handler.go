package doctor

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
	api.GET("/doctors", h.List)
	api.GET("/doctors/:id", h.Get)
}

// columns is the console's doctor table. The handler is the view here: the
// engine consumes these read-only.
func columns() []table.Column {
	return []table.Column{
		{Field: "displayName", Header: "Doctor", Type: table.CellAvatar},
		{Field: "specialization", Header: "Specialization"},
		{Field: "email", Header: "Email"},
		{Field: "experienceYears", Header: "Experience", Align: "right"},
		{Field: "fee", Header: "Fee", Align: "right"},
		{Field: "status", Header: "Status", Type: table.CellChip, ChipColor: statusColor},
		{Field: "createdAt", Header: "Joined", Type: table.CellDate},
	}
}

func statusColor(value any) string {
	switch Status(asString(value)) {
	case StatusVerified:
		return "success"
	case StatusRejected:
		return "error"
	default:
		return "warning"
	}
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func (h *Handler) List(c echo.Context) error {
	state := listview.StateFromContext(c)

	docs, synthetic, err := h.svc.FetchAll(c.Request().Context(), upstream.Query{})
	if err != nil {
		return listview.HTTPError(err)
	}

	rows := listview.Rows(docs)
	return c.JSON(http.StatusOK, listview.NewResponse(rows, columns(), state, synthetic))
}

func (h *Handler) Get(c echo.Context) error {
	doc, err := h.svc.FetchOne(c.Request().Context(), c.Param("id"))
	if err != nil {
		return listview.HTTPError(err)
	}
	return c.JSON(http.StatusOK, doc)
}
