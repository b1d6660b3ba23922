package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/beingsaumyadeep/py-commerce/internal/models"
)

func TestCreateProductCreatesAllRows(t *testing.T) {
	gdb := newTestDB(t)
	svc := &CatalogService{DB: gdb}

	product := models.Product{Name: "laptop", Description: "14 inch", Price: 1200}
	metadata := models.ProductMetadata{
		Brand:          "acme",
		Category:       "computers",
		Specifications: datatypes.JSON([]byte(`{"ram":"16GB"}`)),
	}

	created, err := svc.CreateProduct(context.Background(), &product, &metadata, 7)
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.NotNil(t, created.Metadata)
	require.NotNil(t, created.Stock)
	require.Equal(t, created.ID, created.Metadata.ProductID)
	require.Equal(t, 7, created.Stock.Quantity)

	require.EqualValues(t, 1, countRows(t, gdb, &models.Product{}))
	require.EqualValues(t, 1, countRows(t, gdb, &models.ProductMetadata{}))
	require.EqualValues(t, 1, countRows(t, gdb, &models.ProductStock{}))
}

func TestCreateProductValidation(t *testing.T) {
	gdb := newTestDB(t)
	svc := &CatalogService{DB: gdb}

	_, err := svc.CreateProduct(context.Background(), &models.Product{Name: "", Price: 1}, &models.ProductMetadata{}, 1)
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateProduct(context.Background(), &models.Product{Name: "x", Price: -1}, &models.ProductMetadata{}, 1)
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateProduct(context.Background(), &models.Product{Name: "x", Price: 1}, &models.ProductMetadata{}, -1)
	require.ErrorIs(t, err, ErrValidation)

	require.EqualValues(t, 0, countRows(t, gdb, &models.Product{}))
	require.EqualValues(t, 0, countRows(t, gdb, &models.ProductMetadata{}))
	require.EqualValues(t, 0, countRows(t, gdb, &models.ProductStock{}))
}

func TestGetProduct(t *testing.T) {
	gdb := newTestDB(t)
	svc := &CatalogService{DB: gdb}
	seeded := seedProduct(t, gdb, "monitor", 300, 4)

	got, err := svc.GetProduct(context.Background(), seeded.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Metadata)
	require.NotNil(t, got.Stock)
	require.Equal(t, 4, got.Stock.Quantity)

	_, err = svc.GetProduct(context.Background(), 999)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	require.Equal(t, "product", nf.Entity)
}

func TestListProductsPagination(t *testing.T) {
	gdb := newTestDB(t)
	svc := &CatalogService{DB: gdb}

	seedProduct(t, gdb, "a", 1, 1)
	seedProduct(t, gdb, "b", 2, 1)
	seedProduct(t, gdb, "c", 3, 1)

	products, err := svc.ListProducts(context.Background(), 1, 1)
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, "b", products[0].Name)

	products, err = svc.ListProducts(context.Background(), -1, -1)
	require.NoError(t, err)
	require.Len(t, products, 3)
}
