//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"experience-booking/internal/usecase/commands"
	"experience-booking/internal/usecase/queries"
	"experience-booking/tests/common/builder"
	commandsmock "experience-booking/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingCommands_Create(t *testing.T) {
	newCommands := func(t *testing.T) (*commandsmock.MockBookingRepository, commands.BookingCommands) {
		ctrl := gomock.NewController(t)
		repo := commandsmock.NewMockBookingRepository(ctrl)
		return repo, commands.NewBookingCommands(repo)
	}

	t.Run("persists the booking and returns the stored row", func(t *testing.T) {
		repo, c := newCommands(t)
		b := builder.NewBookingBuilder()
		view := b.BuildView()
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(view, nil)

		got, err := c.Create(context.Background(), b.BuildParams())
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("defaults num_people to 1 when missing or nonsense", func(t *testing.T) {
		for _, n := range []int32{0, -3} {
			repo, c := newCommands(t)
			b := builder.NewBookingBuilder().WithNumPeople(n)
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, params commands.CreateBookingParams) (*queries.BookingView, error) {
					assert.Equal(t, int32(1), params.NumPeople)
					return b.BuildView(), nil
				})

			_, err := c.Create(context.Background(), b.BuildParams())
			require.NoError(t, err)
		}
	})

	t.Run("normalizes the promo code and drops empty ones", func(t *testing.T) {
		repo, c := newCommands(t)
		b := builder.NewBookingBuilder().WithPromo("  save10 ", 4.5, 85.5)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params commands.CreateBookingParams) (*queries.BookingView, error) {
				require.NotNil(t, params.PromoCode)
				assert.Equal(t, "SAVE10", *params.PromoCode)
				return b.BuildView(), nil
			})

		_, err := c.Create(context.Background(), b.BuildParams())
		require.NoError(t, err)

		repo2, c2 := newCommands(t)
		b2 := builder.NewBookingBuilder().WithPromo("   ", 0, 90)
		repo2.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params commands.CreateBookingParams) (*queries.BookingView, error) {
				assert.Nil(t, params.PromoCode)
				return b2.BuildView(), nil
			})

		_, err = c2.Create(context.Background(), b2.BuildParams())
		require.NoError(t, err)
	})

	t.Run("marks store failures with ErrBookingCreationFailed", func(t *testing.T) {
		repo, c := newCommands(t)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("insert failed"))

		_, err := c.Create(context.Background(), builder.NewBookingBuilder().BuildParams())
		assert.ErrorIs(t, err, commands.ErrBookingCreationFailed)
	})
}
