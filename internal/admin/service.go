package admin

import (
	"context"
	"fmt"

	"github.com/tabledesk/tabledesk-backend/internal/users"
	"github.com/tabledesk/tabledesk-backend/pkg/db/models"
	pkgerrors "github.com/tabledesk/tabledesk-backend/pkg/errors"
)

// Service defines the back-office operations reserved for admins.
type Service interface {
	ListUsers(ctx context.Context) ([]users.UserDTO, error)
	DeleteUser(ctx context.Context, actorID, targetID uint) error
	Analytics(ctx context.Context) (*AnalyticsDTO, error)
	ListReservations(ctx context.Context) ([]ReservationRowDTO, error)
	ListQueue(ctx context.Context) ([]QueueRowDTO, error)
}

type userRepository interface {
	List(ctx context.Context) ([]models.User, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type reportRepository interface {
	CountUsersByRole(ctx context.Context) ([]RoleCountDTO, error)
	TableStats(ctx context.Context) (*TableStatsDTO, error)
	QueueCount(ctx context.Context) (int64, error)
	ReservationCount(ctx context.Context) (int64, error)
	RecentActivity(ctx context.Context) ([]ActivityDTO, error)
	ListReservationsWithCustomers(ctx context.Context) ([]ReservationRowDTO, error)
	ListQueueWithCustomers(ctx context.Context) ([]QueueRowDTO, error)
}

type service struct {
	userRepo userRepository
	reports  reportRepository
}

// ServiceParams bundles the dependencies required to build an admin service.
type ServiceParams struct {
	UserRepo userRepository
	Reports  reportRepository
}

// NewService constructs the admin back-office service.
func NewService(params ServiceParams) (Service, error) {
	if params.UserRepo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	if params.Reports == nil {
		return nil, fmt.Errorf("report repository is required")
	}
	return &service{userRepo: params.UserRepo, reports: params.Reports}, nil
}

func (s *service) ListUsers(ctx context.Context) ([]users.UserDTO, error) {
	rows, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list users")
	}
	out := make([]users.UserDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *users.FromModel(&rows[i]))
	}
	return out, nil
}

func (s *service) DeleteUser(ctx context.Context, actorID, targetID uint) error {
	if actorID == targetID {
		return pkgerrors.New(pkgerrors.CodeValidation, "Cannot delete your own account")
	}

	affected, err := s.userRepo.Delete(ctx, targetID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete user")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "User not found")
	}
	return nil
}

func (s *service) Analytics(ctx context.Context) (*AnalyticsDTO, error) {
	roleCounts, err := s.reports.CountUsersByRole(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count users by role")
	}
	tableStats, err := s.reports.TableStats(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "aggregate table stats")
	}
	queueCount, err := s.reports.QueueCount(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count queue")
	}
	reservationCount, err := s.reports.ReservationCount(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count reservations")
	}
	activity, err := s.reports.RecentActivity(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load recent activity")
	}

	return &AnalyticsDTO{
		Users:          roleCounts,
		Tables:         *tableStats,
		Queue:          QueueStatsDTO{QueueCount: queueCount},
		Reservations:   ReservationStatsDTO{ReservationCount: reservationCount},
		RecentActivity: activity,
	}, nil
}

func (s *service) ListReservations(ctx context.Context) ([]ReservationRowDTO, error) {
	rows, err := s.reports.ListReservationsWithCustomers(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list reservations")
	}
	return rows, nil
}

func (s *service) ListQueue(ctx context.Context) ([]QueueRowDTO, error) {
	rows, err := s.reports.ListQueueWithCustomers(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list queue")
	}
	return rows, nil
}
