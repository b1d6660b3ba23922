package handlers

import (
	"net/http"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"github.com/beingsaumyadeep/py-commerce/internal/service/search"
	"github.com/beingsaumyadeep/py-commerce/internal/util"
)

type SearchHandler struct {
	ES    *elasticsearch.Client
	Index string
}

func (h *SearchHandler) Search(c echo.Context) error {
	if h.ES == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "search unavailable")
	}

	q := c.QueryParam("q")
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query required")
	}

	skip, limit := pageParams(c)
	skip, limit = util.Clamp(skip, limit)

	total, products, err := search.Search(c.Request().Context(), h.ES, h.Index, q, skip, limit)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"total": total, "products": products})
}
