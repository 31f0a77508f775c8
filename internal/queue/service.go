package queue

import (
	"context"
	"fmt"
	"strings"

	"github.com/tabledesk/tabledesk-backend/pkg/db/models"
	pkgerrors "github.com/tabledesk/tabledesk-backend/pkg/errors"
)

const defaultPartySize = 2

// Service defines the queue-assignment behavior needed by the controllers.
type Service interface {
	List(ctx context.Context) ([]EntryDTO, error)
	Join(ctx context.Context, customerID uint, req JoinRequest) (*JoinResponse, error)
	Position(ctx context.Context, customerID uint) (*PositionDTO, error)
	Leave(ctx context.Context, customerID uint) error
}

type repository interface {
	ListQueued(ctx context.Context) ([]models.Table, error)
	NextPosition(ctx context.Context) (int, error)
	ClaimTable(ctx context.Context, tableID uint, position int, customerID uint, customerName string) (int64, error)
	FindSmallestAvailable(ctx context.Context, partySize int) (*models.Table, error)
	AssignPosition(ctx context.Context, tableID uint, position int, customerID uint, customerName string) error
	FindByCustomer(ctx context.Context, customerID uint) (*models.Table, error)
	Release(ctx context.Context, customerID uint) error
}

type service struct {
	repo repository
}

// ServiceParams bundles the dependencies required to build a queue service.
type ServiceParams struct {
	Repo repository
}

// NewService constructs a queue-assignment service.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("queue repository is required")
	}
	return &service{repo: params.Repo}, nil
}

func (s *service) List(ctx context.Context) ([]EntryDTO, error) {
	rows, err := s.repo.ListQueued(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list queue")
	}
	out := make([]EntryDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, EntryDTO{
			ID:                  row.ID,
			TableNumber:         row.TableNumber,
			Capacity:            row.Capacity,
			Type:                row.Type,
			CurrentCustomerName: row.CurrentCustomerName,
			QueuePosition:       row.QueuePosition,
		})
	}
	return out, nil
}

// Join assigns the next global queue position. The position read and the
// claiming update run as separate statements with no transaction, so two
// concurrent joins for the same table can both succeed; this mirrors the
// behavior the rest of the system is built around.
func (s *service) Join(ctx context.Context, customerID uint, req JoinRequest) (*JoinResponse, error) {
	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Customer name required")
	}

	position, err := s.repo.NextPosition(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "read queue position")
	}

	if req.TableID != nil {
		// Specific-table join: conditional update, zero rows is silently OK.
		if _, err := s.repo.ClaimTable(ctx, *req.TableID, position, customerID, name); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "claim table")
		}
		return &JoinResponse{Position: position}, nil
	}

	partySize := req.Capacity
	if partySize <= 0 {
		partySize = defaultPartySize
	}

	table, err := s.repo.FindSmallestAvailable(ctx, partySize)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "find table")
	}
	if table == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "No available tables for requested capacity")
	}

	if err := s.repo.AssignPosition(ctx, table.ID, position, customerID, name); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "assign queue position")
	}
	return &JoinResponse{Position: position}, nil
}

func (s *service) Position(ctx context.Context, customerID uint) (*PositionDTO, error) {
	table, err := s.repo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "find queue slot")
	}
	if table == nil {
		return nil, nil
	}
	return &PositionDTO{
		ID:            table.ID,
		TableNumber:   table.TableNumber,
		Capacity:      table.Capacity,
		QueuePosition: table.QueuePosition,
		Type:          table.Type,
	}, nil
}

func (s *service) Leave(ctx context.Context, customerID uint) error {
	if err := s.repo.Release(ctx, customerID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "leave queue")
	}
	return nil
}
