package models

import "time"

// Order statuses. Transitions are admin-driven; any known status may be
// set from any other, delivered and cancelled are simply never advanced
// further in practice.
const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// ValidStatus reports whether s is one of the known order statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusProcessing, StatusShipped,
		StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Order is an immutable snapshot of a cart at checkout time. Total is
// captured once and never recomputed; status and tracking number are the
// only fields mutated afterwards.
type Order struct {
	ID              string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID          string     `json:"user_id" gorm:"index;type:varchar(36)"`
	Items           []CartLine `json:"items" gorm:"serializer:json"`
	Total           float64    `json:"total"`
	Status          string     `json:"status"`
	DeliveryAddress *Address   `json:"delivery_address,omitempty" gorm:"serializer:json"`
	TrackingNumber  string     `json:"tracking_number,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// ItemCount is the number of units across all lines, not the number of lines.
func (o *Order) ItemCount() int {
	count := 0
	for _, l := range o.Items {
		count += l.Quantity
	}
	return count
}
