package queries

import (
	"context"

	"experience-booking/internal/infra"
	"experience-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrExperienceNotFound = errs.New("experience not found")

type ExperienceReadStore interface {
	// List returns the whole catalog ordered by rating descending.
	List(ctx context.Context) ([]*ExperienceView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ExperienceView, error)
}

type SlotReadStore interface {
	// ListByExperience returns slots ordered by (date, time) ascending.
	ListByExperience(ctx context.Context, experienceID uuid.UUID) ([]*SlotView, error)
}

type ExperienceQueries interface {
	List(ctx context.Context) ([]*ExperienceView, error)
	Get(ctx context.Context, id uuid.UUID) (*ExperienceView, error)
	ListSlots(ctx context.Context, experienceID uuid.UUID) ([]*SlotView, error)
}

type experienceQueriesImpl struct {
	experiences ExperienceReadStore
	slots       SlotReadStore
}

func NewExperienceQueries(experiences ExperienceReadStore, slots SlotReadStore) ExperienceQueries {
	return &experienceQueriesImpl{
		experiences: experiences,
		slots:       slots,
	}
}

func (q *experienceQueriesImpl) List(ctx context.Context) ([]*ExperienceView, error) {
	views, err := q.experiences.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list experiences")
	}
	return views, nil
}

func (q *experienceQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*ExperienceView, error) {
	view, err := q.experiences.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrExperienceNotFound
		}
		return nil, errs.Wrap(err, "failed to find experience")
	}
	return view, nil
}

func (q *experienceQueriesImpl) ListSlots(ctx context.Context, experienceID uuid.UUID) ([]*SlotView, error) {
	views, err := q.slots.ListByExperience(ctx, experienceID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list slots")
	}
	return views, nil
}
