package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/shopcenter/internal/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
	"github.com/shopspring/decimal"
)

type ProductHandler struct {
	productService service.IProductService
}

func NewProductHandler(productService service.IProductService) *ProductHandler {
	if productService == nil {
		panic("productService cannot be nil")
	}
	return &ProductHandler{
		productService: productService,
	}
}

// ListProducts 商品搜尋，支援價格區間/分類/名稱模糊查詢與分頁
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := service.ProductSearchQuery{
		Search: q.Get("search"),
	}

	if v := q.Get("min_price"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			api.ErrorJSON(w, http.StatusBadRequest, "invalid min_price")
			return
		}
		query.MinPrice = &d
	}
	if v := q.Get("max_price"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			api.ErrorJSON(w, http.StatusBadRequest, "invalid max_price")
			return
		}
		query.MaxPrice = &d
	}
	if v := q.Get("category"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			api.ErrorJSON(w, http.StatusBadRequest, "invalid category")
			return
		}
		categoryID := uint(id)
		query.CategoryID = &categoryID
	}
	query.Page, _ = strconv.Atoi(q.Get("page"))
	query.Limit, _ = strconv.Atoi(q.Get("limit"))

	page, err := h.productService.SearchProducts(r.Context(), query)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	products := make([]dto.ProductDTO, len(page.Products))
	for i := range page.Products {
		products[i] = convertProductModelToDTO(&page.Products[i])
	}

	api.SuccessJSON(w, http.StatusOK, dto.ProductListResponse{
		Products: products,
		Total:    page.Total,
		Page:     page.Page,
		Limit:    page.Limit,
	})
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID, ok := parseUintParam(r, "id")
	if !ok {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := h.productService.GetProduct(r.Context(), productID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.SuccessJSON(w, http.StatusOK, convertProductModelToDTO(product))
}

// ListAllProductsAdmin admin查詢所有商品
func (h *ProductHandler) ListAllProductsAdmin(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.ListAllProducts(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	res := make([]dto.ProductDTO, len(products))
	for i := range products {
		res[i] = convertProductModelToDTO(&products[i])
	}
	api.SuccessJSON(w, http.StatusOK, res)
}

func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var createDTO dto.CreateProductDTO
	if err := json.NewDecoder(r.Body).Decode(&createDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if createDTO.Name == "" {
		api.ErrorJSON(w, http.StatusBadRequest, "name is required")
		return
	}
	if createDTO.Price.IsNegative() || createDTO.Stock < 0 {
		api.ErrorJSON(w, http.StatusBadRequest, "price and stock must be non-negative")
		return
	}

	product, err := h.productService.CreateProduct(r.Context(), &model.Product{
		Name:        createDTO.Name,
		Description: createDTO.Description,
		Price:       createDTO.Price,
		Stock:       createDTO.Stock,
		CategoryID:  createDTO.CategoryID,
		ImageURL:    createDTO.ImageURL,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.SuccessJSON(w, http.StatusCreated, convertProductModelToDTO(product))
}

func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	productID, ok := parseUintParam(r, "id")
	if !ok {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var updateDTO dto.UpdateProductDTO
	if err := json.NewDecoder(r.Body).Decode(&updateDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.productService.UpdateProduct(r.Context(), productID, service.UpdateProductParams{
		Name:        updateDTO.Name,
		Description: updateDTO.Description,
		Price:       updateDTO.Price,
		Stock:       updateDTO.Stock,
		CategoryID:  updateDTO.CategoryID,
		ImageURL:    updateDTO.ImageURL,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.SuccessJSON(w, http.StatusOK, convertProductModelToDTO(product))
}

func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID, ok := parseUintParam(r, "id")
	if !ok {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := h.productService.DeleteProduct(r.Context(), productID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.SuccessJSON(w, http.StatusOK, "Deleted")
}

func convertProductModelToDTO(product *model.Product) dto.ProductDTO {
	res := dto.ProductDTO{
		ID:          product.ProductID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
		CategoryID:  product.CategoryID,
		ImageURL:    product.ImageURL,
	}
	if product.Category != nil {
		category := convertCategoryModelToDTO(product.Category)
		res.Category = &category
	}
	return res
}
