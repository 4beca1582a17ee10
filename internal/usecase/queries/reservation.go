package queries

import (
	"context"
	"time"

	"sitsmart/internal/infra"
	"sitsmart/internal/pkg/calendar"
	"sitsmart/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrReservationAccess   = errs.New("reservation access denied")
	ErrInvalidCalendarSpan = errs.New("invalid calendar span")
)

// CalendarView is one week or month of the user's reservations, with the
// window bounds the client pages by.
type CalendarView struct {
	Span         string             `json:"span"`
	WindowStart  time.Time          `json:"window_start"`
	WindowEnd    time.Time          `json:"window_end"`
	Reservations []*ReservationView `json:"reservations"`
}

type ReservationQueries interface {
	GetByID(ctx context.Context, actorID, id uuid.UUID) (*ReservationView, error)
	// GetByIDSystem skips the ownership check for internal read-after-write.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
	ListByUserOnDay(ctx context.Context, userID uuid.UUID, day time.Time) ([]*ReservationView, error)
	Calendar(ctx context.Context, userID uuid.UUID, pivot time.Time, span string) (*CalendarView, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
	ListByUserInWindow(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	readStore ReservationReadStore
}

func NewReservationQueries(readStore ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{readStore: readStore}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actorID, id uuid.UUID) (*ReservationView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.UserID != actorID {
		return nil, ErrReservationAccess
	}
	return view, nil
}

func (q *reservationQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error) {
	return q.readStore.ListByUser(ctx, userID)
}

// ListByUserOnDay filters to the single calendar day containing the given
// timestamp.
func (q *reservationQueriesImpl) ListByUserOnDay(ctx context.Context, userID uuid.UUID, day time.Time) ([]*ReservationView, error) {
	start := calendar.StartOfDay(day)
	return q.readStore.ListByUserInWindow(ctx, userID, start, start.AddDate(0, 0, 1))
}

func (q *reservationQueriesImpl) Calendar(ctx context.Context, userID uuid.UUID, pivot time.Time, span string) (*CalendarView, error) {
	window, err := calendar.WindowFor(pivot, calendar.Span(span))
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCalendarSpan)
	}

	rows, err := q.readStore.ListByUserInWindow(ctx, userID, window.Start, window.End)
	if err != nil {
		return nil, err
	}

	return &CalendarView{
		Span:         span,
		WindowStart:  window.Start,
		WindowEnd:    window.End,
		Reservations: rows,
	}, nil
}
