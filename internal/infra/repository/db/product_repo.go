package db

import (
	"context"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepo struct {
	db *DbDao
}

func NewProductRepo(db *DbDao) *ProductRepo {
	return &ProductRepo{db: db}
}

// ProductSearchParams 商品搜尋條件，指標欄位為 nil 表示不過濾
type ProductSearchParams struct {
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	CategoryID *uint
	Name       string // 名稱模糊搜尋，不分大小寫
	Page       int
	PageSize   int
}

// Create - 創建商品
func (r *ProductRepo) CreateProduct(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// Read - 根據ID查詢商品
func (r *ProductRepo) GetProductByID(ctx context.Context, productID uint) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).First(&product, productID).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Read - 查詢所有商品(含分類)
func (r *ProductRepo) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Preload("Category").Order("created_at DESC").Find(&products).Error
	return products, err
}

// 分頁搜尋商品
// 排序固定為上架時間新到舊
func (r *ProductRepo) SearchProducts(ctx context.Context, params ProductSearchParams) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	query := r.db.WithContext(ctx).Model(&model.Product{})

	if params.MinPrice != nil {
		query = query.Where("price >= ?", *params.MinPrice)
	}
	if params.MaxPrice != nil {
		query = query.Where("price <= ?", *params.MaxPrice)
	}
	if params.CategoryID != nil {
		query = query.Where("category_id = ?", *params.CategoryID)
	}
	if params.Name != "" {
		query = query.Where("name ILIKE ?", "%"+params.Name+"%")
	}

	// 計算總數
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (params.Page - 1) * params.PageSize

	// 分頁查詢
	err := query.Preload("Category").
		Order("created_at DESC").
		Offset(offset).
		Limit(params.PageSize).
		Find(&products).Error

	return products, total, err
}

// Update - 更新商品
func (r *ProductRepo) UpdateProduct(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// Delete - 軟刪除商品
func (r *ProductRepo) DeleteProduct(ctx context.Context, productID uint) error {
	return r.db.WithContext(ctx).Delete(&model.Product{}, productID).Error
}

// GetProductForUpdate 在呼叫端交易內以 row lock 讀取商品
// 鎖會持有到該交易 commit 或 rollback 為止
func (r *ProductRepo) GetProductForUpdate(ctx context.Context, tx *gorm.DB, productID uint) (*model.Product, error) {
	var product model.Product
	err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&product, productID).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// DecrementStock 在呼叫端交易內扣減庫存
// 呼叫前必須先以 GetProductForUpdate 取得鎖並檢查庫存
func (r *ProductRepo) DecrementStock(ctx context.Context, tx *gorm.DB, productID uint, quantity int) error {
	return tx.WithContext(ctx).Model(&model.Product{}).
		Where("product_id = ?", productID).
		Update("stock", gorm.Expr("stock - ?", quantity)).Error
}
