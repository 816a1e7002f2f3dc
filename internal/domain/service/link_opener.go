// Package service defines interfaces for external collaborators of the domain.
package service

import (
	"context"

	"warranty/internal/domain/share"
)

// LinkOpener hands a built deep link to the program that handles it: the
// mail client for mailto links, the messaging app for wa.me links.
type LinkOpener interface {
	// Open navigates to uri on behalf of channel.
	Open(ctx context.Context, channel share.Channel, uri string) error
}
