package productcontroller

import (
	"testing"

	"github.com/gitmibrahim/soul/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.ProductImage{},
	))
	return db
}

func seedCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()
	category := models.Category{Name: name}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func TestNextProductCodeOnEmptyCatalog(t *testing.T) {
	db := setupTestDB(t)

	code, err := NextProductCode(db)
	require.NoError(t, err)
	require.Equal(t, "SO-0001", code)
}

func TestNextProductCodeUsesMaxNotCount(t *testing.T) {
	db := setupTestDB(t)
	category := seedCategory(t, db, "Cases")
	for _, code := range []string{"SO-0001", "SO-0003"} {
		require.NoError(t, db.Create(&models.Product{
			Name: "P " + code, Price: 1, CategoryID: category.ID, ProductCode: code,
		}).Error)
	}

	code, err := NextProductCode(db)
	require.NoError(t, err)
	require.Equal(t, "SO-0004", code)
}

func TestCreateProductRecordAssignsSequentialCodes(t *testing.T) {
	db := setupTestDB(t)
	category := seedCategory(t, db, "Cases")

	first, err := CreateProductRecord(db, ProductInput{
		Name:        "Case A",
		Description: "leather case",
		Price:       25,
		CategoryID:  category.ID,
		ImageURLs:   []string{"abc.png", "https://cdn.example.com/a.jpg"},
		Stock:       10,
	})
	require.NoError(t, err)
	require.Equal(t, "SO-0001", first.ProductCode)
	require.Len(t, first.Images, 2)

	second, err := CreateProductRecord(db, ProductInput{
		Name: "Case B", Price: 30, CategoryID: category.ID,
	})
	require.NoError(t, err)
	require.Equal(t, "SO-0002", second.ProductCode)
}

func TestProductCodeNeverReassigned(t *testing.T) {
	db := setupTestDB(t)
	category := seedCategory(t, db, "Cases")

	first, err := CreateProductRecord(db, ProductInput{Name: "A", Price: 1, CategoryID: category.ID})
	require.NoError(t, err)
	_, err = CreateProductRecord(db, ProductInput{Name: "B", Price: 1, CategoryID: category.ID})
	require.NoError(t, err)

	// Deleting a product retires its code; the sequence keeps climbing.
	require.NoError(t, db.Delete(&models.Product{}, first.ID).Error)
	third, err := CreateProductRecord(db, ProductInput{Name: "C", Price: 1, CategoryID: category.ID})
	require.NoError(t, err)
	require.Equal(t, "SO-0003", third.ProductCode)
}

func TestSearchProductRecords(t *testing.T) {
	db := setupTestDB(t)
	category := seedCategory(t, db, "Chargers")

	_, err := CreateProductRecord(db, ProductInput{
		Name: "Fast Charger", Description: "45W wall charger", Price: 300, CategoryID: category.ID,
	})
	require.NoError(t, err)
	_, err = CreateProductRecord(db, ProductInput{
		Name: "USB Cable", Description: "braided", Price: 50, CategoryID: category.ID,
	})
	require.NoError(t, err)

	byName, err := SearchProductRecords(db, "charger")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	require.Equal(t, "Fast Charger", byName[0].Name)

	byCode, err := SearchProductRecords(db, "so-0002")
	require.NoError(t, err)
	require.Len(t, byCode, 1)
	require.Equal(t, "USB Cable", byCode[0].Name)

	all, err := SearchProductRecords(db, "")
	require.NoError(t, err)
	require.Len(t, all, 2)

	none, err := SearchProductRecords(db, "headphones")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestNewProductResponseResolvesImageRefs(t *testing.T) {
	product := models.Product{
		Name: "Case",
		Images: []models.ProductImage{
			{Ref: "https://cdn.example.com/a.jpg"},
			{Ref: "local_key.png"},
		},
	}

	resp := NewProductResponse(product)
	require.Equal(t, []string{
		"https://cdn.example.com/a.jpg",
		"/uploads/products/local_key.png",
	}, resp.ImageURLs)
}
