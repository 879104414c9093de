package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting admin action
	OrderStatusConfirmed OrderStatus = "confirmed" // Accepted by admin
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled by admin, or auto on last-item removal
)

type Order struct {
	ID              uint         `gorm:"primaryKey" json:"id"`
	GuestID         string       `gorm:"index;not null" json:"guest_id"`
	Items           []OrderItem  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Total           float64      `json:"total"`
	Status          OrderStatus  `gorm:"type:VARCHAR(20);default:'pending';index" json:"status"`
	CustomerInfo    CustomerInfo `gorm:"embedded;embeddedPrefix:customer_" json:"customer_info"`
	WhatsAppMessage string       `gorm:"type:text" json:"whatsapp_message"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// OrderItem is a snapshot: price, name and code are frozen at order
// creation and never follow later product edits.
type OrderItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	OrderID     uint    `gorm:"index" json:"order_id"`
	ProductID   uint    `json:"product_id"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	ProductName string  `json:"product_name"`
	ProductCode string  `json:"product_code"`
	Confirmed   bool    `json:"confirmed"` // admin acknowledged an oversold line will ship anyway
}

// CustomerInfo embedded in Order
type CustomerInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}
