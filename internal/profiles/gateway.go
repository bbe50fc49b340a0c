package profiles

import (
	"context"

	"github.com/congo-pay/cardprofiles/internal/beanstream"
)

// Gateway is the subset of the provider client used for profile maintenance.
type Gateway interface {
	CreateProfile(ctx context.Context, card *beanstream.CreditCard, opts beanstream.ProfileOptions) (beanstream.Result, error)
	UpdateProfile(ctx context.Context, customerCode string, card *beanstream.CreditCard, opts beanstream.ProfileOptions) (beanstream.Result, error)
}
