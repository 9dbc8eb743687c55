package entities

import (
	"time"
)

const (
	OrderStatusReceived = "received"
)

type Order struct {
	ID         int64     `db:"id"`
	UserID     int64     `db:"user_id"`
	Items      Items     `db:"items"`
	Total      *float64  `db:"total"`
	PickupDate string    `db:"pickup_date"`
	PickupTime string    `db:"pickup_time"`
	Status     string    `db:"status"`
	CreatedAt  time.Time `db:"created_at"`
}
