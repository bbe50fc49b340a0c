package payments

import (
	"context"

	"github.com/congo-pay/cardprofiles/internal/beanstream"
)

// Gateway charges stored profiles.
type Gateway interface {
	Purchase(ctx context.Context, amount int64, customerCode string) (beanstream.Result, error)
}
