package cartControllers

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
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64, stock int, code string) models.Product {
	t.Helper()
	category := models.Category{Name: "Cases " + code}
	require.NoError(t, db.Create(&category).Error)
	product := models.Product{
		Name:        name,
		Price:       price,
		CategoryID:  category.ID,
		Stock:       stock,
		ProductCode: code,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func TestGetCartReturnsEmptyViewWithoutPersisting(t *testing.T) {
	db := setupTestDB(t)

	cart, err := GetCart(db, "guest_1_abc")
	require.NoError(t, err)
	require.Empty(t, cart.Items)
	require.Zero(t, cart.Total)
	require.Zero(t, cart.CartID)

	var count int64
	require.NoError(t, db.Model(&models.Cart{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestAddToCartMergesDuplicateProductLines(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "Case A", 25, 10, "SO-0001")
	guestID := "guest_1_merge"

	_, err := AddToCart(db, guestID, product.ID, 2)
	require.NoError(t, err)
	_, err = AddToCart(db, guestID, product.ID, 3)
	require.NoError(t, err)

	cart, err := GetCart(db, guestID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.Equal(t, 5, cart.Items[0].Quantity)
	require.Equal(t, float64(125), cart.Total)
}

func TestCartTotalFollowsCurrentProductPrice(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "Charger", 100, 10, "SO-0001")
	guestID := "guest_1_price"

	_, err := AddToCart(db, guestID, product.ID, 2)
	require.NoError(t, err)

	// Cart totals are not frozen at add time: a price change shows up on
	// the next recomputation.
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", product.ID).Update("price", 80).Error)
	_, err = UpdateCartItem(db, guestID, product.ID, 2)
	require.NoError(t, err)

	cart, err := GetCart(db, guestID)
	require.NoError(t, err)
	require.Equal(t, float64(160), cart.Total)
}

func TestMutationsOnMissingCartFailNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := UpdateCartItem(db, "guest_none", 1, 2)
	require.ErrorIs(t, err, models.ErrCartNotFound)
	_, err = RemoveFromCart(db, "guest_none", 1)
	require.ErrorIs(t, err, models.ErrCartNotFound)
	_, err = ClearCart(db, "guest_none")
	require.ErrorIs(t, err, models.ErrCartNotFound)
}

func TestRemoveFromCartIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "Cable", 10, 5, "SO-0001")
	guestID := "guest_1_rm"

	_, err := AddToCart(db, guestID, product.ID, 1)
	require.NoError(t, err)

	_, err = RemoveFromCart(db, guestID, product.ID)
	require.NoError(t, err)
	_, err = RemoveFromCart(db, guestID, product.ID)
	require.NoError(t, err)

	cart, err := GetCart(db, guestID)
	require.NoError(t, err)
	require.Empty(t, cart.Items)
	require.Zero(t, cart.Total)
}

func TestGetCartItemCount(t *testing.T) {
	db := setupTestDB(t)
	a := seedProduct(t, db, "A", 10, 5, "SO-0001")
	b := seedProduct(t, db, "B", 20, 5, "SO-0002")
	guestID := "guest_1_count"

	count, err := GetCartItemCount(db, guestID)
	require.NoError(t, err)
	require.Zero(t, count)

	_, err = AddToCart(db, guestID, a.ID, 2)
	require.NoError(t, err)
	_, err = AddToCart(db, guestID, b.ID, 3)
	require.NoError(t, err)

	count, err = GetCartItemCount(db, guestID)
	require.NoError(t, err)
	require.Equal(t, 5, count)
}

func TestPlaceOrderDrainsCartAndSnapshotsLines(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "Case A", 25, 10, "SO-0001")
	guestID := "guest_1_place"

	_, err := AddToCart(db, guestID, product.ID, 2)
	require.NoError(t, err)

	orderID, err := PlaceOrder(db, guestID, "msg", &models.CustomerInfo{Name: "Sara", Phone: "+20100"})
	require.NoError(t, err)
	require.NotZero(t, orderID)

	var order models.Order
	require.NoError(t, db.Preload("Items").First(&order, orderID).Error)
	require.Equal(t, models.OrderStatusPending, order.Status)
	require.Equal(t, guestID, order.GuestID)
	require.Equal(t, "Sara", order.CustomerInfo.Name)
	require.Len(t, order.Items, 1)
	require.Equal(t, "Case A", order.Items[0].ProductName)
	require.Equal(t, "SO-0001", order.Items[0].ProductCode)
	require.Equal(t, float64(25), order.Items[0].Price)
	require.Equal(t, float64(50), order.Total)

	var updated models.Product
	require.NoError(t, db.First(&updated, product.ID).Error)
	require.Equal(t, 8, updated.Stock)

	cart, err := GetCart(db, guestID)
	require.NoError(t, err)
	require.Empty(t, cart.Items)
	require.Zero(t, cart.Total)
}

func TestPlaceOrderSnapshotSurvivesProductEdits(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "Case A", 25, 10, "SO-0001")
	guestID := "guest_1_frozen"

	_, err := AddToCart(db, guestID, product.ID, 1)
	require.NoError(t, err)
	orderID, err := PlaceOrder(db, guestID, "msg", nil)
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", product.ID).
		Updates(map[string]interface{}{"price": 99, "name": "Case A v2"}).Error)

	var order models.Order
	require.NoError(t, db.Preload("Items").First(&order, orderID).Error)
	require.Equal(t, float64(25), order.Items[0].Price)
	require.Equal(t, "Case A", order.Items[0].ProductName)
	require.Equal(t, float64(25), order.Total)
}

func TestPlaceOrderLeavesStockOnInsufficientQuantity(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "Stand", 40, 5, "SO-0001")
	guestID := "guest_1_oversell"

	_, err := AddToCart(db, guestID, product.ID, 8)
	require.NoError(t, err)

	orderID, err := PlaceOrder(db, guestID, "msg", nil)
	require.NoError(t, err)

	// Oversold line: stock untouched, line present and unconfirmed — the
	// admin resolves the shortfall manually.
	var updated models.Product
	require.NoError(t, db.First(&updated, product.ID).Error)
	require.Equal(t, 5, updated.Stock)

	var order models.Order
	require.NoError(t, db.Preload("Items").First(&order, orderID).Error)
	require.Len(t, order.Items, 1)
	require.Equal(t, 8, order.Items[0].Quantity)
	require.False(t, order.Items[0].Confirmed)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "Case", 10, 5, "SO-0001")
	guestID := "guest_1_empty"

	_, err := PlaceOrder(db, guestID, "msg", nil)
	require.ErrorIs(t, err, models.ErrEmptyCart)

	// A cart emptied by a prior clear behaves the same as no cart.
	_, err = AddToCart(db, guestID, product.ID, 1)
	require.NoError(t, err)
	_, err = ClearCart(db, guestID)
	require.NoError(t, err)
	_, err = PlaceOrder(db, guestID, "msg", nil)
	require.ErrorIs(t, err, models.ErrEmptyCart)
}

func TestPlaceOrderSkipsDeletedProducts(t *testing.T) {
	db := setupTestDB(t)
	kept := seedProduct(t, db, "Kept", 30, 10, "SO-0001")
	gone := seedProduct(t, db, "Gone", 15, 10, "SO-0002")
	guestID := "guest_1_skip"

	_, err := AddToCart(db, guestID, kept.ID, 1)
	require.NoError(t, err)
	_, err = AddToCart(db, guestID, gone.ID, 2)
	require.NoError(t, err)

	require.NoError(t, db.Delete(&models.Product{}, gone.ID).Error)

	orderID, err := PlaceOrder(db, guestID, "msg", nil)
	require.NoError(t, err)

	var order models.Order
	require.NoError(t, db.Preload("Items").First(&order, orderID).Error)
	require.Len(t, order.Items, 1)
	require.Equal(t, kept.ID, order.Items[0].ProductID)
	require.Equal(t, float64(30), order.Total)
}

func TestGetCartWithProductsJoinsLiveProducts(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "Case A", 25, 10, "SO-0001")
	require.NoError(t, db.Create(&models.ProductImage{ProductID: product.ID, Ref: "abc.png"}).Error)
	gone := seedProduct(t, db, "Gone", 15, 10, "SO-0002")
	guestID := "guest_1_details"

	_, err := AddToCart(db, guestID, product.ID, 1)
	require.NoError(t, err)
	_, err = AddToCart(db, guestID, gone.ID, 1)
	require.NoError(t, err)
	require.NoError(t, db.Delete(&models.Product{}, gone.ID).Error)

	details, err := GetCartWithProducts(db, guestID)
	require.NoError(t, err)
	require.Len(t, details.Items, 2)

	byProduct := map[uint]CartItemWithProduct{}
	for _, item := range details.Items {
		byProduct[item.ProductID] = item
	}
	require.NotNil(t, byProduct[product.ID].Product)
	require.Equal(t, []string{"/uploads/products/abc.png"}, byProduct[product.ID].Product.ImageURLs)
	require.Nil(t, byProduct[gone.ID].Product)
}
