package repositories

import (
	"context"

	"github.com/simbalabs/simba-checkout-api/internal/domain/entities"
)

// SessionRepository stores ephemeral checkout sessions. Implementations
// expire entries after a TTL; a session is otherwise destroyed only by an
// explicit Delete. FindByReference supports the gateway callback, which
// only knows the payment reference.
type SessionRepository interface {
	Save(ctx context.Context, session *entities.CheckoutSession) error
	Get(ctx context.Context, id string) (*entities.CheckoutSession, error)
	FindByReference(ctx context.Context, reference string) (*entities.CheckoutSession, error)
	Delete(ctx context.Context, id string) error
}
