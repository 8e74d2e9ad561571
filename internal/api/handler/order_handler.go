package handler

import (
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/shopcenter/internal/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
	"github.com/RoyceAzure/lab/shopcenter/internal/util"
)

type OrderHandler struct {
	orderService service.IOrderService
}

func NewOrderHandler(orderService service.IOrderService) *OrderHandler {
	if orderService == nil {
		panic("orderService cannot be nil")
	}
	return &OrderHandler{
		orderService: orderService,
	}
}

// PlaceOrder 將購物車轉為訂單
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	payload := util.GetTokenPayloadFromContext(r.Context())

	order, err := h.orderService.PlaceOrder(r.Context(), payload.UserID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.SuccessJSON(w, http.StatusCreated, convertOrderModelToDTO(order))
}

// OrderHistory 歷史訂單分頁查詢
func (h *OrderHandler) OrderHistory(w http.ResponseWriter, r *http.Request) {
	payload := util.GetTokenPayloadFromContext(r.Context())

	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	history, err := h.orderService.GetOrderHistory(r.Context(), payload.UserID, page, limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	orders := make([]dto.OrderDTO, len(history.Orders))
	for i := range history.Orders {
		orders[i] = convertOrderModelToDTO(&history.Orders[i])
	}

	api.SuccessJSON(w, http.StatusOK, dto.OrderHistoryResponse{
		Orders:     orders,
		Total:      history.Total,
		Page:       history.Page,
		TotalPages: history.TotalPages,
	})
}

func convertOrderModelToDTO(order *model.Order) dto.OrderDTO {
	items := make([]dto.OrderItemDTO, len(order.Items))
	for i := range order.Items {
		item := &order.Items[i]
		items[i] = dto.OrderItemDTO{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
		if item.Product != nil {
			product := convertProductModelToDTO(item.Product)
			items[i].Product = &product
		}
	}
	return dto.OrderDTO{
		ID:        order.OrderID,
		Status:    string(order.Status),
		Total:     order.Total,
		Items:     items,
		CreatedAt: order.CreatedAt,
	}
}
