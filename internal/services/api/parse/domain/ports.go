package domain

import "context"

// ParsePort is the service surface the transport layer calls
type ParsePort interface {
	// ParseText runs the pipeline over typed text
	ParseText(ctx context.Context, text string) Outcome
	// ParseImage runs the pipeline over a spooled note photo
	ParseImage(ctx context.Context, imagePath string) Outcome
}
