package reservations

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tabledesk/tabledesk-backend/pkg/db/models"
	"github.com/tabledesk/tabledesk-backend/pkg/enums"
	pkgerrors "github.com/tabledesk/tabledesk-backend/pkg/errors"
)

const defaultPartySize = 2

// conflictWindowHours is compared against the whole-hour truncated gap
// between an existing and a requested reservation, so a 1h59m gap
// collides while a 2h01m gap does not.
const conflictWindowHours = 2

// Service defines the reservation-scheduler behavior needed by the controllers.
type Service interface {
	List(ctx context.Context, customerID uint, role enums.Role) (*ListResult, error)
	Create(ctx context.Context, customerID uint, req CreateRequest) error
	Cancel(ctx context.Context, tableID uint, customerID uint, role enums.Role) error
}

type repository interface {
	ListReserved(ctx context.Context) ([]models.Table, error)
	ListReservedByCustomer(ctx context.Context, customerID uint) ([]models.Table, error)
	FindSmallestAvailable(ctx context.Context, partySize int) (*models.Table, error)
	FindReservationTime(ctx context.Context, tableID uint) (*time.Time, error)
	Book(ctx context.Context, tableID uint, customerID uint, customerName string, at time.Time) error
	Cancel(ctx context.Context, tableID uint, ownerID *uint) (int64, error)
}

type service struct {
	repo repository
	now  func() time.Time
}

// ServiceParams bundles the dependencies required to build a reservations service.
type ServiceParams struct {
	Repo repository
	Now  func() time.Time
}

// NewService constructs a reservation-scheduler service.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("reservations repository is required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{repo: params.Repo, now: now}, nil
}

func (s *service) List(ctx context.Context, customerID uint, role enums.Role) (*ListResult, error) {
	// Customers see only their own bookings; staff see all of them.
	if role == enums.RoleCustomer {
		rows, err := s.repo.ListReservedByCustomer(ctx, customerID)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list own reservations")
		}
		own := make([]OwnReservationDTO, 0, len(rows))
		for _, row := range rows {
			own = append(own, OwnReservationDTO{
				ID:              row.ID,
				TableNumber:     row.TableNumber,
				Capacity:        row.Capacity,
				Type:            row.Type,
				ReservationTime: row.ReservationTime,
			})
		}
		return &ListResult{Own: own}, nil
	}

	rows, err := s.repo.ListReserved(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list reservations")
	}
	all := make([]ReservationDTO, 0, len(rows))
	for _, row := range rows {
		all = append(all, ReservationDTO{
			ID:                  row.ID,
			TableNumber:         row.TableNumber,
			Capacity:            row.Capacity,
			Type:                row.Type,
			CurrentCustomerName: row.CurrentCustomerName,
			ReservationTime:     row.ReservationTime,
			CurrentCustomerID:   row.CurrentCustomerID,
		})
	}
	return &ListResult{All: all}, nil
}

func (s *service) Create(ctx context.Context, customerID uint, req CreateRequest) error {
	name := strings.TrimSpace(req.CustomerName)
	if name == "" || req.ReservationTime == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "Customer name and reservation time required")
	}

	at := *req.ReservationTime
	if !at.After(s.now()) {
		return pkgerrors.New(pkgerrors.CodeValidation, "Reservation must be in the future")
	}

	targetID := uint(0)
	if req.TableID != nil {
		targetID = *req.TableID
	} else {
		partySize := req.Capacity
		if partySize <= 0 {
			partySize = defaultPartySize
		}
		table, err := s.repo.FindSmallestAvailable(ctx, partySize)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "find table")
		}
		if table == nil {
			return pkgerrors.New(pkgerrors.CodeValidation, "No available tables for reservation")
		}
		targetID = table.ID
	}

	existing, err := s.repo.FindReservationTime(ctx, targetID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check reservation conflict")
	}
	if existing != nil && hourGap(*existing, at) < conflictWindowHours {
		return pkgerrors.New(pkgerrors.CodeValidation, "Table already reserved at that time")
	}

	if err := s.repo.Book(ctx, targetID, customerID, name, at); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "book table")
	}
	return nil
}

func (s *service) Cancel(ctx context.Context, tableID uint, customerID uint, role enums.Role) error {
	var owner *uint
	if role == enums.RoleCustomer {
		owner = &customerID
	}

	affected, err := s.repo.Cancel(ctx, tableID, owner)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "cancel reservation")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "Reservation not found or access denied")
	}
	return nil
}

// hourGap truncates the absolute gap between two times to whole hours.
func hourGap(a, b time.Time) int {
	diff := a.Sub(b)
	if diff < 0 {
		diff = -diff
	}
	return int(diff.Hours())
}
