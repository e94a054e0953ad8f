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

const experienceColumns = `
	id, title, description, location, duration, image_url,
	price, rating, total_reviews, max_slots_per_date, highlights, created_at
`

const listExperiencesSQL = `
	SELECT ` + experienceColumns + `
	FROM experiences
	ORDER BY rating DESC
`

const getExperienceByIDSQL = `
	SELECT ` + experienceColumns + `
	FROM experiences
	WHERE id = $1
`

type experienceRow struct {
	ID              pgtype.UUID        `db:"id"`
	Title           string             `db:"title"`
	Description     string             `db:"description"`
	Location        string             `db:"location"`
	Duration        string             `db:"duration"`
	ImageURL        string             `db:"image_url"`
	Price           pgtype.Numeric     `db:"price"`
	Rating          pgtype.Numeric     `db:"rating"`
	TotalReviews    pgtype.Int4        `db:"total_reviews"`
	MaxSlotsPerDate pgtype.Int4        `db:"max_slots_per_date"`
	Highlights      []string           `db:"highlights"`
	CreatedAt       pgtype.Timestamptz `db:"created_at"`
}

type ExperienceReadStore struct {
	db infra.DBTX
}

func NewExperienceReadStore(db infra.DBTX) *ExperienceReadStore {
	return &ExperienceReadStore{db: db}
}

func (r *ExperienceReadStore) List(ctx context.Context) ([]*queries.ExperienceView, error) {
	rows, err := r.db.Query(ctx, listExperiencesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query experiences", err)
	}

	experienceRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[experienceRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to collect experience rows", err)
	}

	views := make([]*queries.ExperienceView, 0, len(experienceRows))
	for _, row := range experienceRows {
		view, err := toExperienceViewFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert experience row", err)
		}
		views = append(views, view)
	}
	return views, nil
}

func (r *ExperienceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ExperienceView, error) {
	rows, err := r.db.Query(ctx, getExperienceByIDSQL, pgconv.UUIDToPgtype(id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query experience by ID", err)
	}

	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[experienceRow])
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("experience not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to collect experience row", err)
	}

	view, err := toExperienceViewFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert experience row", err)
	}
	return view, nil
}

func toExperienceViewFromRow(row experienceRow) (*queries.ExperienceView, error) {
	price, err := pgconv.Float64FromNumeric(row.Price)
	if err != nil {
		return nil, err
	}

	rating, err := pgconv.Float64FromNumeric(row.Rating)
	if err != nil {
		return nil, err
	}

	return &queries.ExperienceView{
		ID:              pgconv.UUIDFromPgtype(row.ID),
		Title:           row.Title,
		Description:     row.Description,
		Location:        row.Location,
		Duration:        row.Duration,
		ImageURL:        row.ImageURL,
		Price:           price,
		Rating:          rating,
		TotalReviews:    pgconv.Int32FromPgtype(row.TotalReviews),
		MaxSlotsPerDate: pgconv.Int32FromPgtype(row.MaxSlotsPerDate),
		Highlights:      row.Highlights,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
