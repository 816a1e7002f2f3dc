package service

import (
	"context"
)

// ReminderEvent announces a warranty whose coverage is about to run out
type ReminderEvent struct {
	RequestID    string `json:"request_id,omitempty"` // For distributed tracing
	EventID      string `json:"event_id"`
	WarrantyID   string `json:"warranty_id"`
	CustomerName string `json:"customer_name"`
	Email        string `json:"email,omitempty"`
	PhoneNumber  string `json:"phone_number,omitempty"`
	ExpiresOn    string `json:"expires_on"` // ISO date of the expiry reference date
	DaysLeft     int    `json:"days_left"`
	Subject      string `json:"subject"`
	Body         string `json:"body"`
	EmailLink    string `json:"email_link,omitempty"`
	WhatsAppLink string `json:"whatsapp_link,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishReminderEvent publishes a reminder event for async delivery
	PublishReminderEvent(ctx context.Context, event *ReminderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
