package router

import (
	"github.com/RoyceAzure/lab/shopcenter/internal/api/handler"
	m "github.com/RoyceAzure/lab/shopcenter/internal/api/middleware"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/limiter"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/token"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type Server struct {
	AuthHandler     *handler.AuthHandler
	CategoryHandler *handler.CategoryHandler
	ProductHandler  *handler.ProductHandler
	CartHandler     *handler.CartHandler
	OrderHandler    *handler.OrderHandler
}

func NewServer(
	authHandler *handler.AuthHandler,
	categoryHandler *handler.CategoryHandler,
	productHandler *handler.ProductHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
) *Server {
	return &Server{
		AuthHandler:     authHandler,
		CategoryHandler: categoryHandler,
		ProductHandler:  productHandler,
		CartHandler:     cartHandler,
		OrderHandler:    orderHandler,
	}
}

func SetupRouter(server *Server, tokenMaker token.Maker, rateLimiter limiter.ILimiter, logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(middleware.RealIP)
	r.Use(m.LoggerMiddleware(logger))
	r.Use(m.RecoverMiddleware)
	if rateLimiter != nil {
		r.Use(m.NewRateLimitMiddleware(rateLimiter))
	}

	auth := m.AuthMiddleware(tokenMaker)

	// API 路由
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", server.AuthHandler.Signup)
			r.Post("/login", server.AuthHandler.Login)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", server.CategoryHandler.ListCategories)
			r.Group(func(r chi.Router) {
				r.Use(auth, m.AdminMiddleware)
				r.Post("/", server.CategoryHandler.CreateCategory)
				r.Put("/{id}", server.CategoryHandler.UpdateCategory)
				r.Delete("/{id}", server.CategoryHandler.DeleteCategory)
			})
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", server.ProductHandler.ListProducts)
			r.Group(func(r chi.Router) {
				r.Use(auth, m.AdminMiddleware)
				r.Get("/admin", server.ProductHandler.ListAllProductsAdmin)
				r.Post("/", server.ProductHandler.CreateProduct)
				r.Put("/{id}", server.ProductHandler.UpdateProduct)
				r.Delete("/{id}", server.ProductHandler.DeleteProduct)
			})
			r.Get("/{id}", server.ProductHandler.GetProduct)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Use(auth)
			r.Get("/", server.CartHandler.ViewCart)
			r.Post("/add", server.CartHandler.AddToCart)
			r.Post("/remove", server.CartHandler.RemoveFromCart)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Use(auth)
			r.Post("/", server.OrderHandler.PlaceOrder)
			r.Get("/", server.OrderHandler.OrderHistory)
		})
	})

	return r
}
