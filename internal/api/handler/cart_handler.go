package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
	"github.com/RoyceAzure/lab/shopcenter/internal/util"
)

type CartHandler struct {
	cartService service.ICartService
}

func NewCartHandler(cartService service.ICartService) *CartHandler {
	if cartService == nil {
		panic("cartService cannot be nil")
	}
	return &CartHandler{
		cartService: cartService,
	}
}

// ViewCart 查看購物車
func (h *CartHandler) ViewCart(w http.ResponseWriter, r *http.Request) {
	payload := util.GetTokenPayloadFromContext(r.Context())

	cart, err := h.cartService.GetCart(r.Context(), payload.UserID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.SuccessJSON(w, http.StatusOK, convertCartModelToDTO(cart))
}

// AddToCart 加入商品到購物車
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	payload := util.GetTokenPayloadFromContext(r.Context())

	var addDTO dto.AddToCartDTO
	if err := json.NewDecoder(r.Body).Decode(&addDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.cartService.AddItem(r.Context(), payload.UserID, addDTO.ProductID, addDTO.Quantity)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.SuccessJSON(w, http.StatusOK, convertCartItemModelToDTO(item))
}

// RemoveFromCart 從購物車移除商品
func (h *CartHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	payload := util.GetTokenPayloadFromContext(r.Context())

	var removeDTO dto.RemoveFromCartDTO
	if err := json.NewDecoder(r.Body).Decode(&removeDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.cartService.RemoveItem(r.Context(), payload.UserID, removeDTO.ProductID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.SuccessJSON(w, http.StatusOK, "Removed")
}

func convertCartItemModelToDTO(item *model.CartItem) dto.CartItemDTO {
	res := dto.CartItemDTO{
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		Price:     item.Price,
	}
	if item.Product != nil {
		product := convertProductModelToDTO(item.Product)
		res.Product = &product
	}
	return res
}

func convertCartModelToDTO(cart *model.Cart) dto.CartDTO {
	items := make([]dto.CartItemDTO, len(cart.Items))
	for i := range cart.Items {
		items[i] = convertCartItemModelToDTO(&cart.Items[i])
	}
	return dto.CartDTO{Items: items}
}
