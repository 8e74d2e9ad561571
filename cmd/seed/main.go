package main

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/RoyceAzure/lab/shopcenter/internal/config"
	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

var adjectives = []string{"Sleek", "Rustic", "Modern", "Compact", "Ergonomic", "Durable", "Handmade", "Smart", "Portable", "Classic"}
var materials = []string{"Steel", "Wooden", "Cotton", "Plastic", "Granite", "Leather", "Ceramic", "Bamboo"}
var items = []string{"Chair", "Lamp", "Keyboard", "Jacket", "Bottle", "Backpack", "Speaker", "Watch", "Desk", "Shoes"}

func randomProductName() string {
	return fmt.Sprintf("%s %s %s",
		adjectives[rand.Intn(len(adjectives))],
		materials[rand.Intn(len(materials))],
		items[rand.Intn(len(items))])
}

func randomPrice(min, max int) decimal.Decimal {
	cents := min*100 + rand.Intn((max-min)*100)
	return decimal.New(int64(cents), -2)
}

// 填充測試資料: 用戶/分類/商品/購物車
func main() {
	cf := config.GetConfig()

	conn, err := db.GetDbConn(cf.DbName, cf.DbHost, cf.DbPort, cf.DbUser, cf.DbPas)
	if err != nil {
		log.Fatal(err)
	}

	dbDao := db.NewDbDao(conn)
	if err := dbDao.InitMigrate(); err != nil {
		log.Fatal(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	admin := &model.User{
		UserName:       "Admin User",
		UserEmail:      "admin@example.com",
		HashedPassword: string(hash),
		Role:           string(constants.RoleAdmin),
	}
	customer := &model.User{
		UserName:       "John Doe",
		UserEmail:      "john1@example.com",
		HashedPassword: string(hash),
		Role:           string(constants.RoleCustomer),
	}
	if err := dbDao.Create(admin).Error; err != nil {
		log.Fatal(err)
	}
	if err := dbDao.Create(customer).Error; err != nil {
		log.Fatal(err)
	}

	electronics := &model.Category{Name: "Electronics"}
	clothing := &model.Category{Name: "Clothing"}
	if err := dbDao.Create(electronics).Error; err != nil {
		log.Fatal(err)
	}
	if err := dbDao.Create(clothing).Error; err != nil {
		log.Fatal(err)
	}

	products := make([]model.Product, 0, 100)
	for i := 0; i < 50; i++ {
		products = append(products, model.Product{
			Name:       randomProductName(),
			Price:      randomPrice(50, 1500),
			Stock:      1 + rand.Intn(100),
			CategoryID: &electronics.CategoryID,
		})
	}
	for i := 0; i < 50; i++ {
		products = append(products, model.Product{
			Name:       randomProductName(),
			Price:      randomPrice(10, 200),
			Stock:      1 + rand.Intn(200),
			CategoryID: &clothing.CategoryID,
		})
	}
	if err := dbDao.Create(&products).Error; err != nil {
		log.Fatal(err)
	}

	cart := &model.Cart{UserID: customer.UserID}
	if err := dbDao.Create(cart).Error; err != nil {
		log.Fatal(err)
	}

	picked := products[rand.Intn(len(products))]
	if err := dbDao.Create(&model.CartItem{
		CartID:    cart.CartID,
		ProductID: picked.ProductID,
		Quantity:  2,
		Price:     picked.Price,
	}).Error; err != nil {
		log.Fatal(err)
	}

	log.Println("seed completed: users, categories, products, cart created")
}
