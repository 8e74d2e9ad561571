package service

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductSearchQuery 商品搜尋條件
type ProductSearchQuery struct {
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	CategoryID *uint
	Search     string
	Page       int
	Limit      int
}

type ProductPage struct {
	Products []model.Product
	Total    int64
	Page     int
	Limit    int
}

// UpdateProductParams 部分更新，nil 欄位不異動
type UpdateProductParams struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Stock       *int
	CategoryID  *uint
	ImageURL    *string
}

type IProductService interface {
	CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	GetProduct(ctx context.Context, productID uint) (*model.Product, error)
	UpdateProduct(ctx context.Context, productID uint, params UpdateProductParams) (*model.Product, error)
	DeleteProduct(ctx context.Context, productID uint) error
	ListAllProducts(ctx context.Context) ([]model.Product, error)
	SearchProducts(ctx context.Context, query ProductSearchQuery) (*ProductPage, error)
}

type ProductService struct {
	productRepo *db.ProductRepo
}

func NewProductService(productRepo *db.ProductRepo) IProductService {
	if productRepo == nil {
		panic("productRepo cannot be nil")
	}
	return &ProductService{productRepo: productRepo}
}

func (s *ProductService) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if err := s.productRepo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) GetProduct(ctx context.Context, productID uint) (*model.Product, error) {
	product, err := s.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, productID uint, params UpdateProductParams) (*model.Product, error) {
	product, err := s.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		product.Name = *params.Name
	}
	if params.Description != nil {
		product.Description = *params.Description
	}
	if params.Price != nil {
		product.Price = *params.Price
	}
	if params.Stock != nil {
		product.Stock = *params.Stock
	}
	if params.CategoryID != nil {
		product.CategoryID = params.CategoryID
	}
	if params.ImageURL != nil {
		product.ImageURL = *params.ImageURL
	}

	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, productID uint) error {
	if _, err := s.GetProduct(ctx, productID); err != nil {
		return err
	}
	return s.productRepo.DeleteProduct(ctx, productID)
}

func (s *ProductService) ListAllProducts(ctx context.Context) ([]model.Product, error) {
	return s.productRepo.GetAllProducts(ctx)
}

// SearchProducts 依價格區間/分類/名稱模糊搜尋做分頁查詢
func (s *ProductService) SearchProducts(ctx context.Context, query ProductSearchQuery) (*ProductPage, error) {
	if query.Page < 1 {
		query.Page = constants.DefaultPaging
	}
	if query.Limit < 1 || query.Limit > constants.MaxPagingSize {
		query.Limit = constants.DefaultPagingSize
	}

	products, total, err := s.productRepo.SearchProducts(ctx, db.ProductSearchParams{
		MinPrice:   query.MinPrice,
		MaxPrice:   query.MaxPrice,
		CategoryID: query.CategoryID,
		Name:       query.Search,
		Page:       query.Page,
		PageSize:   query.Limit,
	})
	if err != nil {
		return nil, err
	}

	return &ProductPage{
		Products: products,
		Total:    total,
		Page:     query.Page,
		Limit:    query.Limit,
	}, nil
}
