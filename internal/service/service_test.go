package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	appdb "github.com/beingsaumyadeep/py-commerce/internal/db"
	"github.com/beingsaumyadeep/py-commerce/internal/hash"
	"github.com/beingsaumyadeep/py-commerce/internal/models"
)

// newTestDB opens an isolated in-memory database per test. The pool is
// pinned to a single connection so concurrent transactions serialize
// instead of tripping sqlite busy errors.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, appdb.Migrate(gdb))

	t.Cleanup(func() { _ = sqlDB.Close() })
	return gdb
}

func seedUser(t *testing.T, gdb *gorm.DB, email string) models.User {
	t.Helper()

	hashed, err := hash.HashPassword("secret")
	require.NoError(t, err)

	user := models.User{
		Email:          email,
		HashedPassword: hashed,
		FullName:       "Test User",
		IsActive:       true,
	}
	require.NoError(t, gdb.Create(&user).Error)
	return user
}

func seedProduct(t *testing.T, gdb *gorm.DB, name string, price float64, stock int) models.Product {
	t.Helper()

	product := models.Product{Name: name, Description: name + " description", Price: price}
	require.NoError(t, gdb.Create(&product).Error)

	metadata := models.ProductMetadata{
		ProductID:      product.ID,
		Brand:          "testbrand",
		Category:       "testcategory",
		Specifications: datatypes.JSON([]byte(`{"color":"black"}`)),
	}
	require.NoError(t, gdb.Create(&metadata).Error)

	stockRow := models.ProductStock{
		ProductID:   product.ID,
		Quantity:    stock,
		LastUpdated: time.Now().UTC(),
	}
	require.NoError(t, gdb.Create(&stockRow).Error)

	return product
}

func stockOf(t *testing.T, gdb *gorm.DB, productID uint) int {
	t.Helper()

	var stock models.ProductStock
	require.NoError(t, gdb.Where("product_id = ?", productID).First(&stock).Error)
	return stock.Quantity
}

func countRows(t *testing.T, gdb *gorm.DB, model interface{}) int64 {
	t.Helper()

	var n int64
	require.NoError(t, gdb.Model(model).Count(&n).Error)
	return n
}
