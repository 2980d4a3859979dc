package domain

import "time"

// UsageEvent представляет одно событие использования банковского сервиса.
type UsageEvent struct {
	CustomerID string
	Action     string
	Timestamp  time.Time
}

func NewUsageEvent(customerID string, action string, timestamp time.Time) *UsageEvent {
	return &UsageEvent{
		CustomerID: customerID,
		Action:     action,
		Timestamp:  timestamp,
	}
}
