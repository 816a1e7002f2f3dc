package usecase

import (
	"context"

	"warranty/internal/domain/message"
	"warranty/internal/domain/share"
)

// ShareResult is a composed message and the links built for it.
type ShareResult struct {
	WarrantyID string          `json:"warrantyId"`
	Mode       string          `json:"mode"`
	Message    message.Message `json:"message"`
	Links      share.Links     `json:"links"`
}

// ShareUsecase defines the use cases that hand a warranty message to the customer
type ShareUsecase interface {
	// Preview composes the message and builds links for the selected channels without opening anything
	Preview(ctx context.Context, id string, mode message.Mode, channels share.Channels) (*ShareResult, error)

	// Share composes the message and opens the selected channels. Email opens
	// first; when both channels are selected WhatsApp follows after the
	// configured delay. Selecting no channel does nothing.
	Share(ctx context.Context, id string, mode message.Mode, channels share.Channels) (*ShareResult, error)

	// ShareQR renders the WhatsApp link of the message as a PNG QR code
	ShareQR(ctx context.Context, id string, mode message.Mode) ([]byte, error)
}
