// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// Order lines live in a child table linked by foreign key, mirroring the
// aggregate's item collection.
package orderrepo

import (
	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Items         []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Total         float64        `gorm:"type:numeric(10,2);not null"`
	PaymentMethod string         `gorm:"type:varchar(64);not null"`
	PickupTime    string         `gorm:"type:varchar(64);not null"`
	Status        int            `gorm:"type:int;not null;index"`
	Rating        int            `gorm:"type:int;not null"`
	Feedback      string         `gorm:"type:text"`
	Rated         bool           `gorm:"not null"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents a single order line.
// Links to the order via foreign key and keeps a snapshot of the listing's
// name and price at checkout time.
type OrderItemDTO struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ListingID string    `gorm:"type:varchar(64);not null"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Price     float64   `gorm:"type:numeric(10,2);not null"`
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(order *order.Order) OrderDTO {
	orderID := order.ID().Bytes()
	items := make([]OrderItemDTO, 0, len(order.Items()))

	for _, item := range order.Items() {
		items = append(items, OrderItemDTO{
			OrderID:   orderID,
			ListingID: item.ListingID(),
			Name:      item.Name(),
			Price:     item.Price(),
		})
	}

	return OrderDTO{
		ID:            orderID,
		CustomerID:    order.CustomerID().Bytes(),
		Items:         items,
		Total:         order.Total(),
		PaymentMethod: order.PaymentMethod(),
		PickupTime:    order.PickupTime(),
		Status:        int(order.Status()),
		Rating:        order.Rating(),
		Feedback:      order.Feedback(),
		Rated:         order.IsRated(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including all lines and the rating state
// using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := order.NewItem(itemDto.ListingID, itemDto.Name, itemDto.Price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		customerID,
		items,
		dto.PaymentMethod,
		dto.PickupTime,
		order.Status(dto.Status),
		dto.Rating,
		dto.Feedback,
		dto.Rated,
	)
}
