package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

const (
	TransactionStatusPending = "pending"
	TransactionStatusSuccess = "success"
	TransactionStatusFailed  = "failed"
)

type User struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email          string    `gorm:"uniqueIndex;not null"     json:"email"`
	HashedPassword string    `gorm:"not null"                 json:"-"`
	FullName       string    `json:"full_name"`
	IsActive       bool      `gorm:"not null;default:true"    json:"is_active"`
	IsAdmin        bool      `gorm:"not null;default:false"   json:"is_admin"`
	CreatedAt      time.Time `json:"created_at"`
}

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name        string    `gorm:"index;not null"            json:"name"`
	Description string    `gorm:"not null"                  json:"description"`
	Price       float64   `gorm:"not null;check:price >= 0" json:"price"`
	CreatedAt   time.Time `json:"created_at"`

	Metadata *ProductMetadata `gorm:"constraint:OnDelete:CASCADE" json:"metadata,omitempty"`
	Stock    *ProductStock    `gorm:"constraint:OnDelete:CASCADE" json:"stock,omitempty"`
}

type ProductMetadata struct {
	ID             uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID      uint           `gorm:"uniqueIndex;not null"     json:"product_id"`
	Brand          string         `json:"brand"`
	Category       string         `gorm:"index"                    json:"category"`
	Specifications datatypes.JSON `json:"specifications"`
}

type ProductStock struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"     json:"id"`
	ProductID   uint      `gorm:"uniqueIndex;not null"         json:"product_id"`
	Quantity    int       `gorm:"not null;check:quantity >= 0" json:"quantity"`
	LastUpdated time.Time `json:"last_updated"`
}

type Order struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"index;not null"           json:"user_id"`
	Status    string    `gorm:"not null;default:pending" json:"status"`
	CreatedAt time.Time `json:"created_at"`

	Items       []OrderItem  `gorm:"constraint:OnDelete:CASCADE" json:"items"`
	Transaction *Transaction `gorm:"constraint:OnDelete:CASCADE" json:"transaction,omitempty"`
}

type OrderItem struct {
	ID        uint `gorm:"primaryKey;autoIncrement"    json:"id"`
	OrderID   uint `gorm:"index;not null"              json:"order_id"`
	ProductID uint `gorm:"index;not null"              json:"product_id"`
	Quantity  int  `gorm:"not null;check:quantity > 0" json:"quantity"`
	// Snapshot of the product price when the order was placed; never updated.
	PriceAtTime float64 `gorm:"not null" json:"price_at_time"`
}

type Transaction struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID       uint      `gorm:"uniqueIndex;not null"     json:"order_id"`
	Reference     string    `gorm:"uniqueIndex;not null"     json:"reference"`
	Amount        float64   `gorm:"not null"                 json:"amount"`
	Status        string    `gorm:"not null;default:pending" json:"status"`
	PaymentMethod string    `gorm:"not null"                 json:"payment_method"`
	CreatedAt     time.Time `json:"created_at"`
}
