package ai

import (
	"context"
)

// CompletionProvider defines the contract for the hosted completion service.
// This interface allows for swapping different AI providers (Gemini, OpenAI, etc.) in the future.
type CompletionProvider interface {
	// Complete forwards a general customer inquiry to the model and returns its
	// free-text reply. bookingContext is an optional serialized summary of
	// current bookings; pass "" when there is nothing to share.
	Complete(ctx context.Context, userMessage, bookingContext string) (string, error)
}
