package source

import (
	"context"

	"salesboard/internal/core"
)

// Ports for inbound record sources.
type (
	// OrderSource supplies the full order collection in one batch read.
	// The dashboard never subscribes to changes; it loads once at startup.
	OrderSource interface {
		FetchOrders(ctx context.Context) ([]core.RawOrder, error)
	}

	// DateRewriter is implemented by stores that can migrate text dates to
	// a structured shape in place. Running it repeatedly must be a no-op.
	DateRewriter interface {
		RewriteTextDates(ctx context.Context) (rewritten int, err error)
	}
)
