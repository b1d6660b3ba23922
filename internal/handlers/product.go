package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"

	"github.com/beingsaumyadeep/py-commerce/internal/logging"
	"github.com/beingsaumyadeep/py-commerce/internal/models"
	"github.com/beingsaumyadeep/py-commerce/internal/mykafka"
	"github.com/beingsaumyadeep/py-commerce/internal/service"
	"github.com/beingsaumyadeep/py-commerce/internal/service/search"
	"github.com/beingsaumyadeep/py-commerce/internal/transport"
)

type ProductHandler struct {
	Svc      *service.CatalogService
	Producer *mykafka.Producer
	ES       *elasticsearch.Client
	Index    string
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	specs, err := json.Marshal(req.Metadata.Specifications)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid specifications")
	}

	product := models.Product{
		Name:        req.Product.Name,
		Description: req.Product.Description,
		Price:       req.Product.Price,
	}
	metadata := models.ProductMetadata{
		Brand:          req.Metadata.Brand,
		Category:       req.Metadata.Category,
		Specifications: datatypes.JSON(specs),
	}

	ctx := c.Request().Context()
	created, err := h.Svc.CreateProduct(ctx, &product, &metadata, req.Stock)
	if err != nil {
		return httpError(c, err)
	}

	if h.ES != nil {
		if err := search.IndexProduct(ctx, h.ES, h.Index, created); err != nil {
			logging.FromContext(ctx).Error("product index error", "product_id", created.ID, "error", err)
		}
	}

	publish(c, h.Producer, "product_events", created.ID, map[string]interface{}{
		"type":       "product_created",
		"product_id": created.ID,
		"name":       created.Name,
	})

	return c.JSON(http.StatusCreated, created)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	product, err := h.Svc.GetProduct(c.Request().Context(), uint(id))
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) GetProducts(c echo.Context) error {
	skip, limit := pageParams(c)

	products, err := h.Svc.ListProducts(c.Request().Context(), skip, limit)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, products)
}
