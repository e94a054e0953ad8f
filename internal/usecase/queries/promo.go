package queries

import (
	"context"

	"experience-booking/internal/domain/promo"
	"experience-booking/internal/infra"
	"experience-booking/internal/pkg/errs"
)

// ErrPromoNotFound covers both a nonexistent and an inactive code. The lookup
// filters on active = true, so the two cases are indistinguishable on purpose:
// the storefront shows the same "invalid or expired" message for both.
var ErrPromoNotFound = errs.New("promo code not found")

type PromoReadStore interface {
	FindActiveByCode(ctx context.Context, code string) (*PromoView, error)
}

type PromoQueries interface {
	Validate(ctx context.Context, code string) (*PromoView, error)
}

type promoQueriesImpl struct {
	promos PromoReadStore
}

func NewPromoQueries(promos PromoReadStore) PromoQueries {
	return &promoQueriesImpl{promos: promos}
}

func (q *promoQueriesImpl) Validate(ctx context.Context, code string) (*PromoView, error) {
	normalized, err := promo.NewCode(code)
	if err != nil {
		return nil, ErrPromoNotFound
	}

	view, err := q.promos.FindActiveByCode(ctx, normalized.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPromoNotFound
		}
		return nil, errs.Wrap(err, "failed to find promo code")
	}

	// Reject rows whose discount shape the pricing logic cannot represent.
	if _, err := promo.NewDiscount(view.DiscountType, view.DiscountValue); err != nil {
		return nil, errs.Wrap(err, "promo row has invalid discount")
	}

	return view, nil
}
