//go:build unit

package review_test

import (
	"strings"
	"testing"
	"time"

	"sitsmart/internal/domain/reservation"
	"sitsmart/internal/domain/review"
	"sitsmart/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReviewBuilder)
	errIs  error
}

func TestReview(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.False(t, actual.CreatedAt().IsZero())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
		assert.Equal(t, 5, actual.Rating().Value())
		assert.Equal(t, "Great study spot!", actual.Comment().String())
	})

	t.Run("rating validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "below minimum rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(0) },
				errIs:  review.ErrInvalidRating,
			},
			{
				name:   "minimum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(1) },
			},
			{
				name:   "maximum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(5) },
			},
			{
				name:   "above maximum rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(6) },
				errIs:  review.ErrInvalidRating,
			},
		})
	})

	t.Run("comment validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "minimum length comment",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment("a") },
			},
			{
				name: "maximum length comment",
				mutate: func(b *builder.ReviewBuilder) {
					b.WithComment(strings.Repeat("a", review.MaxCommentLength))
				},
			},
			{
				name:   "empty comment",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment("") },
				errIs:  review.ErrEmptyComment,
			},
			{
				name:   "whitespace only comment",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment("   ") },
				errIs:  review.ErrEmptyComment,
			},
			{
				name: "comment exceeds maximum length",
				mutate: func(b *builder.ReviewBuilder) {
					b.WithComment(strings.Repeat("a", review.MaxCommentLength+1))
				},
				errIs: review.ErrCommentTooLong,
			},
		})
	})

	t.Run("comment trimming", func(t *testing.T) {
		actual, err := builder.NewReviewBuilder().WithComment("  Trimmed comment  ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "Trimmed comment", actual.Comment().String())
	})
}

func TestCheck(t *testing.T) {
	userID := uuid.New()
	roomID := uuid.New()
	end := time.Date(2025, 4, 14, 15, 0, 0, 0, time.UTC)
	slot := reservation.ReconstructTimeSlot(end.Add(-time.Hour), end)

	ended := func(status reservation.Status) *reservation.Reservation {
		return reservation.ReconstructReservation(
			uuid.New(), roomID, userID, slot, status,
			reservation.Note{}, end.Add(-2*time.Hour), end.Add(-2*time.Hour),
		)
	}

	base := func() review.Eligibility {
		return review.Eligibility{
			Reservation: ended(reservation.StatusConfirmed),
			UserID:      userID,
			RoomID:      roomID,
			Now:         end.Add(time.Minute),
		}
	}

	t.Run("confirmed and ended reservation is eligible", func(t *testing.T) {
		require.NoError(t, review.Check(base()))
	})

	t.Run("one minute before the end is not eligible", func(t *testing.T) {
		e := base()
		e.Now = end.Add(-time.Minute)
		assert.ErrorIs(t, review.Check(e), review.ErrNotEligible)
	})

	t.Run("someone else's reservation is not eligible", func(t *testing.T) {
		e := base()
		e.UserID = uuid.New()
		assert.ErrorIs(t, review.Check(e), review.ErrNotEligible)
	})

	t.Run("reservation for another room is not eligible", func(t *testing.T) {
		e := base()
		e.RoomID = uuid.New()
		assert.ErrorIs(t, review.Check(e), review.ErrNotEligible)
	})

	t.Run("unconfirmed reservation is not eligible", func(t *testing.T) {
		e := base()
		e.Reservation = ended(reservation.StatusPendingConfirmation)
		assert.ErrorIs(t, review.Check(e), review.ErrNotEligible)
	})

	t.Run("second review for the same room is rejected", func(t *testing.T) {
		e := base()
		e.AlreadyReviewed = true
		assert.ErrorIs(t, review.Check(e), review.ErrAlreadyExists)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewReviewBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
