package commands

import (
	"context"

	domreview "sitsmart/internal/domain/review"
	"sitsmart/internal/infra"
	"sitsmart/internal/pkg/clock"
	"sitsmart/internal/pkg/errs"
	"sitsmart/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReviewNotEligible = errs.New("reservation not eligible for review")
	ErrAlreadyReviewed   = errs.New("room already reviewed by user")
)

type CreateReviewRequest struct {
	RoomID        uuid.UUID
	ReservationID uuid.UUID
	Rating        int
	Comment       string
}

type CreateReviewResult struct {
	ReviewID uuid.UUID
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, req CreateReviewRequest, userID uuid.UUID) (*CreateReviewResult, error)
}

type reviewCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewCommands(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{uow: uow, clock: clk}
}

// CreateReview checks eligibility, inserts the review and recalculates the
// room aggregate, all in one transaction.
func (uc *reviewCommandsImpl) CreateReview(ctx context.Context, req CreateReviewRequest, userID uuid.UUID) (*CreateReviewResult, error) {
	rev, err := domreview.NewReview(userID, req.RoomID, req.ReservationID, req.Rating, req.Comment, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, terr := tx.Reservations().FindByID(ctx, req.ReservationID)
		if terr != nil {
			if infra.IsKind(terr, infra.KindNotFound) {
				return ErrReviewNotEligible
			}
			return errs.Mark(terr, ErrDatabaseOperationFailed)
		}

		reviewed, terr := tx.Reviews().ExistsByUserAndRoom(ctx, userID, req.RoomID)
		if terr != nil {
			return errs.Mark(terr, ErrDatabaseOperationFailed)
		}

		eligibility := domreview.Eligibility{
			Reservation:     res,
			UserID:          userID,
			RoomID:          req.RoomID,
			AlreadyReviewed: reviewed,
			Now:             uc.clock.Now(),
		}
		if terr := domreview.Check(eligibility); terr != nil {
			switch terr {
			case domreview.ErrAlreadyExists:
				return ErrAlreadyReviewed
			default:
				return ErrReviewNotEligible
			}
		}

		id, terr := tx.Reviews().Create(ctx, rev)
		if terr != nil {
			// The unique index catches the race two eligibility checks miss.
			if infra.IsKind(terr, infra.KindDuplicateKey) {
				return ErrAlreadyReviewed
			}
			return errs.Mark(terr, ErrDatabaseOperationFailed)
		}
		createdID = id

		return tx.Rooms().RecalcRating(ctx, req.RoomID)
	})
	if err != nil {
		return nil, err
	}

	return &CreateReviewResult{ReviewID: createdID}, nil
}
