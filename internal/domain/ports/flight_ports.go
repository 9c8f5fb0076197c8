package ports

import (
	"context"
	"time"

	"github.com/khwalser/nextownair-site/internal/domain/models"
)

// OfferSource is one upstream provider. A single call covers one direction of
// travel for one departure date.
type OfferSource interface {
	Search(ctx context.Context, direction models.Direction, departureDate string) ([]models.FlightOption, error)
}

// TokenStore keeps a bearer token across invocations. Get returns
// ErrTokenNotFound when no unexpired token is stored.
type TokenStore interface {
	Get(ctx context.Context) (string, error)
	Save(ctx context.Context, token string, ttl time.Duration) error
}
