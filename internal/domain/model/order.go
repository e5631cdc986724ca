package model

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// 確定済み注文。itemsは送信時点のカートのスナップショット。
// total_amountは送信側が計算した値をそのまま保存する（再計算しない）。
type Order struct {
	ID               int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerName     string      `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerContact  string      `gorm:"type:varchar(255);not null" json:"customer_contact"`
	CustomerLocation string      `gorm:"type:varchar(255)" json:"customer_location"`
	Notes            string      `gorm:"type:text" json:"notes"`
	Items            LineItems   `gorm:"type:jsonb;not null" json:"items"`
	Subtotal         float64     `gorm:"not null" json:"subtotal"`
	Tax              float64     `gorm:"not null" json:"tax"`
	TotalAmount      float64     `gorm:"not null" json:"total_amount"`
	Status           OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedAt        time.Time   `gorm:"not null;autoCreateTime;index" json:"created_at"`
	UpdatedAt        time.Time   `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
