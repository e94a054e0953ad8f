package readstore

import (
	"context"

	"experience-booking/internal/infra"
	"experience-booking/internal/pkg/pgconv"
	"experience-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const listSlotsByExperienceSQL = `
	SELECT id, experience_id, date, time, total_slots, available_slots, created_at
	FROM slots
	WHERE experience_id = $1
	ORDER BY date ASC, time ASC
`

type slotRow struct {
	ID             pgtype.UUID        `db:"id"`
	ExperienceID   pgtype.UUID        `db:"experience_id"`
	Date           pgtype.Date        `db:"date"`
	Time           string             `db:"time"`
	TotalSlots     pgtype.Int4        `db:"total_slots"`
	AvailableSlots pgtype.Int4        `db:"available_slots"`
	CreatedAt      pgtype.Timestamptz `db:"created_at"`
}

type SlotReadStore struct {
	db infra.DBTX
}

func NewSlotReadStore(db infra.DBTX) *SlotReadStore {
	return &SlotReadStore{db: db}
}

func (r *SlotReadStore) ListByExperience(ctx context.Context, experienceID uuid.UUID) ([]*queries.SlotView, error) {
	rows, err := r.db.Query(ctx, listSlotsByExperienceSQL, pgconv.UUIDToPgtype(experienceID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query slots", err)
	}

	slotRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[slotRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to collect slot rows", err)
	}

	views := make([]*queries.SlotView, 0, len(slotRows))
	for _, row := range slotRows {
		views = append(views, toSlotViewFromRow(row))
	}
	return views, nil
}

func toSlotViewFromRow(row slotRow) *queries.SlotView {
	return &queries.SlotView{
		ID:             pgconv.UUIDFromPgtype(row.ID),
		ExperienceID:   pgconv.UUIDFromPgtype(row.ExperienceID),
		Date:           pgconv.DateFromPgtype(row.Date).Format("2006-01-02"),
		Time:           row.Time,
		TotalSlots:     pgconv.Int32FromPgtype(row.TotalSlots),
		AvailableSlots: pgconv.Int32FromPgtype(row.AvailableSlots),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
