package appcontext

import (
	"context"

	"github.com/RoyceAzure/lab/shopcenter/internal/config"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/limiter"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/producer"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/token"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type ApplicationContext struct {
	Cf     *config.Config
	DbConn *gorm.DB
	DbDao  *db.DbDao

	TokenMaker  token.Maker
	RateLimiter limiter.ILimiter

	UserService     service.IUserService
	AuthService     service.IAuthService
	CategoryService service.ICategoryService
	ProductService  service.IProductService
	CartService     service.ICartService
	OrderService    service.IOrderService

	orderProducer *producer.OrderProducer
	bucket        *limiter.TokenBucket
}

func NewApplicationContext(cf *config.Config) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf: cf,
	}

	err := app.Init()
	if err != nil {
		return nil, err
	}

	return &app, nil
}

func (app *ApplicationContext) Init() error {
	err := app.setUpDbConn()
	if err != nil {
		return err
	}

	err = app.setUpTokenMaker()
	if err != nil {
		return err
	}

	app.setUpRateLimiter()
	app.setUpServices()
	return nil
}

func (app *ApplicationContext) setUpDbConn() error {
	conn, err := db.GetDbConn(app.Cf.DbName, app.Cf.DbHost, app.Cf.DbPort, app.Cf.DbUser, app.Cf.DbPas)
	if err != nil {
		return err
	}

	app.DbConn = conn
	app.DbDao = db.NewDbDao(conn)
	return app.DbDao.InitMigrate()
}

func (app *ApplicationContext) setUpTokenMaker() error {
	maker, err := token.NewJWTMaker(app.Cf.TokenKey)
	if err != nil {
		return err
	}
	app.TokenMaker = maker
	return nil
}

// 有redis用redis bucket讓多實例共用額度，沒有就退回單機bucket
func (app *ApplicationContext) setUpRateLimiter() {
	cfg := limiter.GetDefaultLimiterConfig()
	if app.Cf.RateLimitCap > 0 {
		cfg.Capacity = app.Cf.RateLimitCap
	}
	if app.Cf.RateLimitPS > 0 {
		cfg.RatePS = float64(app.Cf.RateLimitPS)
	}

	if app.Cf.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     app.Cf.RedisAddr,
			Password: app.Cf.RedisPassword,
		})
		app.RateLimiter = limiter.NewRedisTokenBucket(client, &cfg)
		return
	}

	app.bucket = limiter.NewTokenBucket(&cfg)
	app.RateLimiter = app.bucket
}

func (app *ApplicationContext) setUpServices() {
	userRepo := db.NewUserRepo(app.DbDao)
	categoryRepo := db.NewCategoryRepo(app.DbDao)
	productRepo := db.NewProductRepo(app.DbDao)
	cartRepo := db.NewCartRepo(app.DbDao)
	orderRepo := db.NewOrderRepo(app.DbDao)

	var publisher service.OrderEventPublisher
	if brokers := app.Cf.KafkaBrokerList(); len(brokers) > 0 && app.Cf.KafkaTopic != "" {
		app.orderProducer = producer.NewOrderProducer(brokers, app.Cf.KafkaTopic)
		publisher = app.orderProducer
	}

	app.UserService = service.NewUserService(userRepo)
	app.AuthService = service.NewAuthService(app.UserService, app.TokenMaker)
	app.CategoryService = service.NewCategoryService(categoryRepo)
	app.ProductService = service.NewProductService(productRepo)
	app.CartService = service.NewCartService(cartRepo, productRepo)
	app.OrderService = service.NewOrderService(app.DbDao, cartRepo, productRepo, orderRepo, publisher)
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	if app.bucket != nil {
		app.bucket.Stop()
	}

	if app.orderProducer != nil {
		if err := app.orderProducer.Close(); err != nil {
			return err
		}
	}

	if app.DbConn != nil {
		sqlDB, err := app.DbConn.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
