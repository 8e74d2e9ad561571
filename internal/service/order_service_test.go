package service

import (
	"context"
	"sync"
	"testing"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type OrderServiceTestSuite struct {
	suite.Suite
	dao          *db.DbDao
	cartRepo     *db.CartRepo
	productRepo  *db.ProductRepo
	orderRepo    *db.OrderRepo
	cartService  ICartService
	orderService IOrderService
}

// SetupSuite 在測試套件開始前執行
func (suite *OrderServiceTestSuite) SetupSuite() {
	suite.dao = setupTestDao(suite.T())
	suite.cartRepo = db.NewCartRepo(suite.dao)
	suite.productRepo = db.NewProductRepo(suite.dao)
	suite.orderRepo = db.NewOrderRepo(suite.dao)
	suite.cartService = NewCartService(suite.cartRepo, suite.productRepo)
	suite.orderService = NewOrderService(suite.dao, suite.cartRepo, suite.productRepo, suite.orderRepo, nil)
}

// SetupTest 在每個測試前執行
func (suite *OrderServiceTestSuite) SetupTest() {
	cleanTables(suite.T(), suite.dao)
}

func (suite *OrderServiceTestSuite) createTestUser(email string) *model.User {
	user := &model.User{
		UserName:       "Test User",
		UserEmail:      email,
		HashedPassword: "not-a-real-hash",
		Role:           "customer",
	}
	require.NoError(suite.T(), suite.dao.Create(user).Error)
	return user
}

func (suite *OrderServiceTestSuite) createTestProduct(name string, price string, stock int) *model.Product {
	product := &model.Product{
		Name:        name,
		Description: "test product",
		Price:       decimal.RequireFromString(price),
		Stock:       stock,
	}
	require.NoError(suite.T(), suite.dao.Create(product).Error)
	return product
}

func (suite *OrderServiceTestSuite) addToCart(userID, productID uint, quantity int) {
	_, err := suite.cartService.AddItem(context.Background(), userID, productID, quantity)
	require.NoError(suite.T(), err)
}

func (suite *OrderServiceTestSuite) getStock(productID uint) int {
	product, err := suite.productRepo.GetProductByID(context.Background(), productID)
	require.NoError(suite.T(), err)
	return product.Stock
}

func (suite *OrderServiceTestSuite) countCartItems(userID uint) int {
	cart, err := suite.cartService.GetCart(context.Background(), userID)
	require.NoError(suite.T(), err)
	return len(cart.Items)
}

func (suite *OrderServiceTestSuite) countOrders(userID uint) int64 {
	var count int64
	require.NoError(suite.T(), suite.dao.Model(&model.Order{}).Where("user_id = ?", userID).Count(&count).Error)
	return count
}

func (suite *OrderServiceTestSuite) TestPlaceOrder() {
	user := suite.createTestUser("order@example.com")
	p1 := suite.createTestProduct("Product A", "10.00", 10)
	p2 := suite.createTestProduct("Product B", "25.50", 5)

	suite.addToCart(user.UserID, p1.ProductID, 2)
	suite.addToCart(user.UserID, p2.ProductID, 3)

	order, err := suite.orderService.PlaceOrder(context.Background(), user.UserID)

	require.NoError(suite.T(), err)
	require.Equal(suite.T(), model.OrderStatusCompleted, order.Status)
	// 2*10.00 + 3*25.50 = 96.50
	require.True(suite.T(), order.Total.Equal(decimal.RequireFromString("96.50")))
	require.Len(suite.T(), order.Items, 2)

	// 庫存各自扣掉明細數量
	require.Equal(suite.T(), 8, suite.getStock(p1.ProductID))
	require.Equal(suite.T(), 2, suite.getStock(p2.ProductID))

	// 購物車被清空但purchase cart本身保留
	require.Equal(suite.T(), 0, suite.countCartItems(user.UserID))
	_, err = suite.cartRepo.GetCartByUserID(context.Background(), user.UserID)
	require.NoError(suite.T(), err)
}

func (suite *OrderServiceTestSuite) TestPlaceOrder_RecordsSnapshotPrice() {
	user := suite.createTestUser("snapshot@example.com")
	product := suite.createTestProduct("Product A", "10.00", 10)

	suite.addToCart(user.UserID, product.ProductID, 1)

	// 加入購物車後商品改價，訂單記錄的是加入當下的價格
	updated, err := suite.productRepo.GetProductByID(context.Background(), product.ProductID)
	require.NoError(suite.T(), err)
	updated.Price = decimal.RequireFromString("99.99")
	require.NoError(suite.T(), suite.productRepo.UpdateProduct(context.Background(), updated))

	order, err := suite.orderService.PlaceOrder(context.Background(), user.UserID)

	require.NoError(suite.T(), err)
	require.True(suite.T(), order.Total.Equal(decimal.RequireFromString("10.00")))
	require.True(suite.T(), order.Items[0].Price.Equal(decimal.RequireFromString("10.00")))
}

func (suite *OrderServiceTestSuite) TestPlaceOrder_EmptyCart() {
	user := suite.createTestUser("empty@example.com")

	// 購物車不存在
	order, err := suite.orderService.PlaceOrder(context.Background(), user.UserID)
	require.ErrorIs(suite.T(), err, ErrEmptyCart)
	require.Nil(suite.T(), order)

	// 購物車存在但沒有項目
	product := suite.createTestProduct("Product A", "10.00", 10)
	suite.addToCart(user.UserID, product.ProductID, 1)
	require.NoError(suite.T(), suite.cartService.RemoveItem(context.Background(), user.UserID, product.ProductID))

	order, err = suite.orderService.PlaceOrder(context.Background(), user.UserID)
	require.ErrorIs(suite.T(), err, ErrEmptyCart)
	require.Nil(suite.T(), order)
	require.EqualValues(suite.T(), 0, suite.countOrders(user.UserID))
}

func (suite *OrderServiceTestSuite) TestPlaceOrder_InsufficientStock() {
	user := suite.createTestUser("stock@example.com")
	p1 := suite.createTestProduct("Product A", "10.00", 10)
	p2 := suite.createTestProduct("Product B", "5.00", 1)

	suite.addToCart(user.UserID, p1.ProductID, 2)
	suite.addToCart(user.UserID, p2.ProductID, 2) // 超過庫存

	order, err := suite.orderService.PlaceOrder(context.Background(), user.UserID)

	require.Error(suite.T(), err)
	require.Nil(suite.T(), order)

	var stockErr *InsufficientStockError
	require.ErrorAs(suite.T(), err, &stockErr)
	require.Equal(suite.T(), p2.ProductID, stockErr.ProductID)

	// 整筆回滾: 兩個商品的庫存都不變，沒有訂單，購物車項目保留
	require.Equal(suite.T(), 10, suite.getStock(p1.ProductID))
	require.Equal(suite.T(), 1, suite.getStock(p2.ProductID))
	require.EqualValues(suite.T(), 0, suite.countOrders(user.UserID))
	require.Equal(suite.T(), 2, suite.countCartItems(user.UserID))
}

func (suite *OrderServiceTestSuite) TestPlaceOrder_ProductGone() {
	user := suite.createTestUser("gone@example.com")
	product := suite.createTestProduct("Product A", "10.00", 10)

	suite.addToCart(user.UserID, product.ProductID, 1)
	require.NoError(suite.T(), suite.productRepo.DeleteProduct(context.Background(), product.ProductID))

	order, err := suite.orderService.PlaceOrder(context.Background(), user.UserID)

	require.ErrorIs(suite.T(), err, ErrProductGone)
	require.Nil(suite.T(), order)
	require.EqualValues(suite.T(), 0, suite.countOrders(user.UserID))
}

// 不同用戶對不相交的商品併發下單，互不影響
func (suite *OrderServiceTestSuite) TestPlaceOrder_ConcurrentDisjointProducts() {
	userA := suite.createTestUser("a@example.com")
	userB := suite.createTestUser("b@example.com")
	pa := suite.createTestProduct("Product A", "10.00", 5)
	pb := suite.createTestProduct("Product B", "20.00", 5)

	suite.addToCart(userA.UserID, pa.ProductID, 2)
	suite.addToCart(userB.UserID, pb.ProductID, 3)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, userID := range []uint{userA.UserID, userB.UserID} {
		wg.Add(1)
		go func(i int, userID uint) {
			defer wg.Done()
			_, errs[i] = suite.orderService.PlaceOrder(context.Background(), userID)
		}(i, userID)
	}
	wg.Wait()

	require.NoError(suite.T(), errs[0])
	require.NoError(suite.T(), errs[1])
	require.Equal(suite.T(), 3, suite.getStock(pa.ProductID))
	require.Equal(suite.T(), 2, suite.getStock(pb.ProductID))
}

// 兩個用戶搶同商品最後一件，恰好一人成功
func (suite *OrderServiceTestSuite) TestPlaceOrder_LastUnitRace() {
	userA := suite.createTestUser("racer-a@example.com")
	userB := suite.createTestUser("racer-b@example.com")
	product := suite.createTestProduct("Last Unit", "10.00", 1)

	suite.addToCart(userA.UserID, product.ProductID, 1)
	suite.addToCart(userB.UserID, product.ProductID, 1)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, userID := range []uint{userA.UserID, userB.UserID} {
		wg.Add(1)
		go func(i int, userID uint) {
			defer wg.Done()
			_, errs[i] = suite.orderService.PlaceOrder(context.Background(), userID)
		}(i, userID)
	}
	wg.Wait()

	var successCount, stockErrCount int
	for _, err := range errs {
		if err == nil {
			successCount++
			continue
		}
		var stockErr *InsufficientStockError
		require.ErrorAs(suite.T(), err, &stockErr)
		stockErrCount++
	}

	require.Equal(suite.T(), 1, successCount)
	require.Equal(suite.T(), 1, stockErrCount)
	require.Equal(suite.T(), 0, suite.getStock(product.ProductID))

	// 輸的那方購物車項目保留
	remaining := suite.countCartItems(userA.UserID) + suite.countCartItems(userB.UserID)
	require.Equal(suite.T(), 1, remaining)
}

// 庫存1 價格10.00，A先下單成功，B跟著下單失敗
func (suite *OrderServiceTestSuite) TestPlaceOrder_SequentialContention() {
	userA := suite.createTestUser("seq-a@example.com")
	userB := suite.createTestUser("seq-b@example.com")
	product := suite.createTestProduct("Scarce", "10.00", 1)

	suite.addToCart(userA.UserID, product.ProductID, 1)
	suite.addToCart(userB.UserID, product.ProductID, 1)

	orderA, err := suite.orderService.PlaceOrder(context.Background(), userA.UserID)
	require.NoError(suite.T(), err)
	require.True(suite.T(), orderA.Total.Equal(decimal.RequireFromString("10.00")))
	require.Equal(suite.T(), 0, suite.getStock(product.ProductID))

	_, err = suite.orderService.PlaceOrder(context.Background(), userB.UserID)
	var stockErr *InsufficientStockError
	require.ErrorAs(suite.T(), err, &stockErr)
	require.Equal(suite.T(), 1, suite.countCartItems(userB.UserID))
	require.Equal(suite.T(), 0, suite.getStock(product.ProductID))
}

func (suite *OrderServiceTestSuite) TestGetOrderHistory() {
	user := suite.createTestUser("history@example.com")
	product := suite.createTestProduct("Product A", "10.00", 100)

	var orderIDs []uint
	for i := 0; i < 3; i++ {
		suite.addToCart(user.UserID, product.ProductID, 1)
		order, err := suite.orderService.PlaceOrder(context.Background(), user.UserID)
		require.NoError(suite.T(), err)
		orderIDs = append(orderIDs, order.OrderID)
	}

	page, err := suite.orderService.GetOrderHistory(context.Background(), user.UserID, 1, 2)
	require.NoError(suite.T(), err)
	require.EqualValues(suite.T(), 3, page.Total)
	require.Equal(suite.T(), 1, page.Page)
	require.Equal(suite.T(), 2, page.TotalPages)
	require.Len(suite.T(), page.Orders, 2)

	// 新到舊
	require.Equal(suite.T(), orderIDs[2], page.Orders[0].OrderID)
	require.Equal(suite.T(), orderIDs[1], page.Orders[1].OrderID)

	page2, err := suite.orderService.GetOrderHistory(context.Background(), user.UserID, 2, 2)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), page2.Orders, 1)
	require.Equal(suite.T(), orderIDs[0], page2.Orders[0].OrderID)
}

func (suite *OrderServiceTestSuite) TestGetOrderHistory_DefaultPaging() {
	user := suite.createTestUser("paging@example.com")

	page, err := suite.orderService.GetOrderHistory(context.Background(), user.UserID, 0, -1)
	require.NoError(suite.T(), err)
	require.EqualValues(suite.T(), 0, page.Total)
	require.Equal(suite.T(), 1, page.Page)
	require.Equal(suite.T(), 0, page.TotalPages)
}

func (suite *OrderServiceTestSuite) TestPlaceOrder_RetryAfterSuccessIsEmptyCart() {
	user := suite.createTestUser("retry@example.com")
	product := suite.createTestProduct("Product A", "10.00", 10)

	suite.addToCart(user.UserID, product.ProductID, 1)

	_, err := suite.orderService.PlaceOrder(context.Background(), user.UserID)
	require.NoError(suite.T(), err)

	// 重送同一請求，購物車已清空
	_, err = suite.orderService.PlaceOrder(context.Background(), user.UserID)
	require.ErrorIs(suite.T(), err, ErrEmptyCart)
	require.EqualValues(suite.T(), 1, suite.countOrders(user.UserID))
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
