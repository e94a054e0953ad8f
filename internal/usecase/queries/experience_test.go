//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"experience-booking/internal/infra"
	"experience-booking/internal/usecase/queries"
	"experience-booking/tests/common/builder"
	queriesmock "experience-booking/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestExperienceQueries_List(t *testing.T) {
	t.Run("returns views in store order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		experiences := queriesmock.NewMockExperienceReadStore(ctrl)
		slots := queriesmock.NewMockSlotReadStore(ctrl)
		q := queries.NewExperienceQueries(experiences, slots)

		expected := []*queries.ExperienceView{
			builder.NewExperienceBuilder().WithRating(4.9).BuildView(),
			builder.NewExperienceBuilder().WithRating(4.2).BuildView(),
		}
		experiences.EXPECT().List(gomock.Any()).Return(expected, nil)

		got, err := q.List(context.Background())
		require.NoError(t, err)
		if diff := cmp.Diff(expected, got); diff != "" {
			t.Errorf("List() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("wraps store errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		experiences := queriesmock.NewMockExperienceReadStore(ctrl)
		slots := queriesmock.NewMockSlotReadStore(ctrl)
		q := queries.NewExperienceQueries(experiences, slots)

		experiences.EXPECT().List(gomock.Any()).Return(nil, errors.New("boom"))

		_, err := q.List(context.Background())
		assert.Error(t, err)
	})
}

func TestExperienceQueries_Get(t *testing.T) {
	t.Run("returns the view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		experiences := queriesmock.NewMockExperienceReadStore(ctrl)
		slots := queriesmock.NewMockSlotReadStore(ctrl)
		q := queries.NewExperienceQueries(experiences, slots)

		view := builder.NewExperienceBuilder().BuildView()
		experiences.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		got, err := q.Get(context.Background(), view.ID)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("maps missing rows to ErrExperienceNotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		experiences := queriesmock.NewMockExperienceReadStore(ctrl)
		slots := queriesmock.NewMockSlotReadStore(ctrl)
		q := queries.NewExperienceQueries(experiences, slots)

		id := uuid.New()
		experiences.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("not found", errors.New("no rows"), infra.KindNotFound))

		_, err := q.Get(context.Background(), id)
		assert.ErrorIs(t, err, queries.ErrExperienceNotFound)
	})
}

func TestExperienceQueries_ListSlots(t *testing.T) {
	t.Run("passes slots through untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		experiences := queriesmock.NewMockExperienceReadStore(ctrl)
		slots := queriesmock.NewMockSlotReadStore(ctrl)
		q := queries.NewExperienceQueries(experiences, slots)

		experienceID := uuid.New()
		expected := []*queries.SlotView{
			builder.NewSlotBuilder().WithExperienceID(experienceID).WithDate("2026-09-02").BuildView(),
			builder.NewSlotBuilder().WithExperienceID(experienceID).WithDate("2026-09-03").AsSoldOut().BuildView(),
		}
		slots.EXPECT().ListByExperience(gomock.Any(), experienceID).Return(expected, nil)

		got, err := q.ListSlots(context.Background(), experienceID)
		require.NoError(t, err)
		if diff := cmp.Diff(expected, got); diff != "" {
			t.Errorf("ListSlots() mismatch (-want +got):\n%s", diff)
		}
	})
}
