package repository

import (
	"context"

	"experience-booking/internal/infra"
	"experience-booking/internal/pkg/pgconv"
	"experience-booking/internal/usecase/commands"
	"experience-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// No capacity decrement happens here: available_slots is left untouched by a
// booking insert, matching the storefront's current (unguarded) behavior.
const createBookingSQL = `
	INSERT INTO bookings (
		experience_id, slot_id, user_name, user_email, user_phone,
		num_people, promo_code, discount_amount, total_price
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING id, experience_id, slot_id, user_name, user_email, user_phone,
		num_people, promo_code, discount_amount, total_price, status, created_at
`

type bookingRow struct {
	ID             pgtype.UUID        `db:"id"`
	ExperienceID   pgtype.UUID        `db:"experience_id"`
	SlotID         pgtype.UUID        `db:"slot_id"`
	UserName       string             `db:"user_name"`
	UserEmail      string             `db:"user_email"`
	UserPhone      string             `db:"user_phone"`
	NumPeople      pgtype.Int4        `db:"num_people"`
	PromoCode      pgtype.Text        `db:"promo_code"`
	DiscountAmount pgtype.Numeric     `db:"discount_amount"`
	TotalPrice     pgtype.Numeric     `db:"total_price"`
	Status         pgtype.Text        `db:"status"`
	CreatedAt      pgtype.Timestamptz `db:"created_at"`
}

type BookingRepository struct {
	db infra.DBTX
}

func NewBookingRepository(db infra.DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, params commands.CreateBookingParams) (*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, createBookingSQL,
		pgconv.UUIDToPgtype(params.ExperienceID),
		pgconv.UUIDToPgtype(params.SlotID),
		params.UserName,
		params.UserEmail,
		params.UserPhone,
		params.NumPeople,
		pgconv.StringPtrToPgtype(params.PromoCode),
		pgconv.NumericFromFloat64(params.DiscountAmount),
		pgconv.NumericFromFloat64(params.TotalPrice),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to insert booking", err)
	}

	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[bookingRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to collect booking row", err)
	}

	view, err := toBookingViewFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking row", err)
	}
	return view, nil
}

func toBookingViewFromRow(row bookingRow) (*queries.BookingView, error) {
	discountAmount, err := pgconv.Float64FromNumeric(row.DiscountAmount)
	if err != nil {
		return nil, err
	}

	totalPrice, err := pgconv.Float64FromNumeric(row.TotalPrice)
	if err != nil {
		return nil, err
	}

	status := "confirmed"
	if row.Status.Valid {
		status = row.Status.String
	}

	return &queries.BookingView{
		ID:             pgconv.UUIDFromPgtype(row.ID),
		ExperienceID:   pgconv.UUIDFromPgtype(row.ExperienceID),
		SlotID:         pgconv.UUIDFromPgtype(row.SlotID),
		UserName:       row.UserName,
		UserEmail:      row.UserEmail,
		UserPhone:      row.UserPhone,
		NumPeople:      pgconv.Int32FromPgtype(row.NumPeople),
		PromoCode:      pgconv.StringPtrFromPgtype(row.PromoCode),
		DiscountAmount: discountAmount,
		TotalPrice:     totalPrice,
		Status:         status,
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
