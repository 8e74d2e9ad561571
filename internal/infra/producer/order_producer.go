package producer

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"sync/atomic"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/segmentio/kafka-go"
)

// OrderProducer sends order lifecycle events to Kafka.
// 下單結果以DB為準，事件發送失敗不影響訂單
type OrderProducer struct {
	writer *kafka.Writer
	closed atomic.Bool
}

type OrderEvent string

var (
	OrderEventCompleted OrderEvent = "order_completed"
)

func NewOrderProducer(brokers []string, topic string) *OrderProducer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		Async:        false,

		// 錯誤處理
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			log.Printf("kafka producer error: "+msg, args...)
		}),

		// 壓縮設置
		Compression: kafka.Snappy,
	}

	return &OrderProducer{
		writer: writer,
	}
}

type orderEventPayload struct {
	OrderID uint             `json:"order_id"`
	UserID  uint             `json:"user_id"`
	Status  string           `json:"status"`
	Total   string           `json:"total"`
	Items   []orderEventItem `json:"items"`
}

type orderEventItem struct {
	ProductID uint   `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
}

// PublishOrderCompleted 同步發送訂單完成事件
func (p *OrderProducer) PublishOrderCompleted(ctx context.Context, order *model.Order) error {
	if p.closed.Load() {
		return nil
	}

	payload := orderEventPayload{
		OrderID: order.OrderID,
		UserID:  order.UserID,
		Status:  string(order.Status),
		Total:   order.Total.String(),
		Items:   make([]orderEventItem, len(order.Items)),
	}
	for i := range order.Items {
		payload.Items[i] = orderEventItem{
			ProductID: order.Items[i].ProductID,
			Quantity:  order.Items[i].Quantity,
			Price:     order.Items[i].Price.String(),
		}
	}

	value, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(order.OrderID), 10)),
		Value: value,
		Headers: []kafka.Header{
			{
				Key:   "event_type",
				Value: []byte(OrderEventCompleted),
			},
		},
	}

	return p.writer.WriteMessages(ctx, msg)
}

func (p *OrderProducer) Close() error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}
	return p.writer.Close()
}
