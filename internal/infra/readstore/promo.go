package readstore

import (
	"context"

	"experience-booking/internal/infra"
	"experience-booking/internal/pkg/pgconv"
	"experience-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// Inactive codes fall out of the WHERE clause, so a disabled promo is
// indistinguishable from one that never existed.
const getActivePromoByCodeSQL = `
	SELECT code, discount_type, discount_value, active, created_at
	FROM promo_codes
	WHERE code = $1 AND active = true
`

type promoRow struct {
	Code          string             `db:"code"`
	DiscountType  string             `db:"discount_type"`
	DiscountValue pgtype.Numeric     `db:"discount_value"`
	Active        pgtype.Bool        `db:"active"`
	CreatedAt     pgtype.Timestamptz `db:"created_at"`
}

type PromoReadStore struct {
	db infra.DBTX
}

func NewPromoReadStore(db infra.DBTX) *PromoReadStore {
	return &PromoReadStore{db: db}
}

func (r *PromoReadStore) FindActiveByCode(ctx context.Context, code string) (*queries.PromoView, error) {
	rows, err := r.db.Query(ctx, getActivePromoByCodeSQL, code)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query promo code", err)
	}

	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[promoRow])
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("promo code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to collect promo row", err)
	}

	view, err := toPromoViewFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert promo row", err)
	}
	return view, nil
}

func toPromoViewFromRow(row promoRow) (*queries.PromoView, error) {
	value, err := pgconv.Float64FromNumeric(row.DiscountValue)
	if err != nil {
		return nil, err
	}

	return &queries.PromoView{
		Code:          row.Code,
		DiscountType:  row.DiscountType,
		DiscountValue: value,
		Active:        pgconv.BoolFromPgtype(row.Active),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
