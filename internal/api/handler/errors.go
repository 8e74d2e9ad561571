package handler

import (
	"errors"
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
	"github.com/rs/zerolog/log"
)

// writeServiceError 業務錯誤對應4xx，其餘一律500並記log
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var stockErr *service.InsufficientStockError
	switch {
	case errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrEmailAlreadyExists):
		api.ErrorJSON(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		api.ErrorJSON(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrCartNotFound),
		errors.Is(err, service.ErrItemNotFound),
		errors.Is(err, service.ErrOrderNotFound):
		api.ErrorJSON(w, http.StatusNotFound, err.Error())
	case errors.As(err, &stockErr),
		errors.Is(err, service.ErrProductGone):
		// 下單時的庫存/商品衝突，客戶端可重試整個操作
		api.ErrorJSON(w, http.StatusConflict, err.Error())
	default:
		log.Error().
			Err(err).
			Str("method", r.Method).
			Str("url", r.URL.String()).
			Msg("internal error")
		api.ErrorJSON(w, http.StatusInternalServerError, "Server error")
	}
}
