package kafka

import "time"

// StockMovementEvent is emitted after a stock movement has been committed
type StockMovementEvent struct {
	EventID       string    `json:"event_id"`
	EventType     string    `json:"event_type"`
	TransactionID uint      `json:"transaction_id"`
	ItemID        uint      `json:"item_id"`
	Type          string    `json:"type"`
	Quantity      int       `json:"quantity"`
	UserID        uint      `json:"user_id"`
	Timestamp     time.Time `json:"timestamp"`
}

// ItemCreatedEvent is emitted after a new item has been created
type ItemCreatedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	ItemID    uint      `json:"item_id"`
	Name      string    `json:"name"`
	SKU       string    `json:"sku"`
	Quantity  int       `json:"quantity"`
	UserID    uint      `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeStockMovement = "stock.movement.recorded"
	EventTypeItemCreated   = "item.created"
)

// Kafka topics
const (
	TopicStockMovements = "inventory.stock-movements"
	TopicItemLifecycle  = "inventory.item-lifecycle"
)
