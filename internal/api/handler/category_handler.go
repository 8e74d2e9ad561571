package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/shopcenter/internal/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
	"github.com/go-chi/chi/v5"
)

type CategoryHandler struct {
	categoryService service.ICategoryService
}

func NewCategoryHandler(categoryService service.ICategoryService) *CategoryHandler {
	if categoryService == nil {
		panic("categoryService cannot be nil")
	}
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// parseUintParam 解析路徑參數
func parseUintParam(r *http.Request, name string) (uint, bool) {
	v, err := strconv.ParseUint(chi.URLParam(r, name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var createDTO dto.CreateCategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&createDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if createDTO.Name == "" {
		api.ErrorJSON(w, http.StatusBadRequest, "name is required")
		return
	}

	category, err := h.categoryService.CreateCategory(r.Context(), &model.Category{
		Name:        createDTO.Name,
		Description: createDTO.Description,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.SuccessJSON(w, http.StatusCreated, convertCategoryModelToDTO(category))
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := parseUintParam(r, "id")
	if !ok {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid category id")
		return
	}

	var updateDTO dto.UpdateCategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&updateDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	category, err := h.categoryService.UpdateCategory(r.Context(), categoryID, updateDTO.Name, updateDTO.Description)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.SuccessJSON(w, http.StatusOK, convertCategoryModelToDTO(category))
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := parseUintParam(r, "id")
	if !ok {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid category id")
		return
	}

	if err := h.categoryService.DeleteCategory(r.Context(), categoryID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.SuccessJSON(w, http.StatusOK, "Deleted")
}

func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.ListCategories(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	res := make([]dto.CategoryDTO, len(categories))
	for i := range categories {
		res[i] = convertCategoryModelToDTO(&categories[i])
	}
	api.SuccessJSON(w, http.StatusOK, res)
}

func convertCategoryModelToDTO(category *model.Category) dto.CategoryDTO {
	return dto.CategoryDTO{
		ID:          category.CategoryID,
		Name:        category.Name,
		Description: category.Description,
	}
}
