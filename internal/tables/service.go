package tables

import (
	"context"
	"fmt"
	"strings"

	"github.com/tabledesk/tabledesk-backend/pkg/db/models"
	"github.com/tabledesk/tabledesk-backend/pkg/enums"
	pkgerrors "github.com/tabledesk/tabledesk-backend/pkg/errors"
)

// Service defines the table-registry behavior needed by the controllers.
type Service interface {
	List(ctx context.Context) ([]TableDTO, error)
	ListAvailable(ctx context.Context) ([]AvailableTableDTO, error)
	Create(ctx context.Context, req CreateTableRequest) (*CreateTableResponse, error)
	Update(ctx context.Context, id uint, req UpdateTableRequest) error
	Delete(ctx context.Context, id uint) error
	Seat(ctx context.Context, id uint, actorID uint, req SeatRequest) error
	Vacate(ctx context.Context, id uint) error
}

type repository interface {
	List(ctx context.Context) ([]models.Table, error)
	ListAvailable(ctx context.Context) ([]models.Table, error)
	Create(ctx context.Context, table *models.Table) (*models.Table, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]any) error
	Delete(ctx context.Context, id uint) error
	Seat(ctx context.Context, id uint, actorID uint, customerName string) error
	Vacate(ctx context.Context, id uint) error
}

type service struct {
	repo repository
}

// ServiceParams bundles the dependencies required to build a tables service.
type ServiceParams struct {
	Repo repository
}

// NewService constructs a table-registry service.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("tables repository is required")
	}
	return &service{repo: params.Repo}, nil
}

func (s *service) List(ctx context.Context) ([]TableDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list tables")
	}
	out := make([]TableDTO, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out, nil
}

func (s *service) ListAvailable(ctx context.Context) ([]AvailableTableDTO, error) {
	rows, err := s.repo.ListAvailable(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list available tables")
	}
	out := make([]AvailableTableDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, AvailableTableDTO{
			ID:          row.ID,
			TableNumber: row.TableNumber,
			Capacity:    row.Capacity,
			Type:        row.Type,
		})
	}
	return out, nil
}

func (s *service) Create(ctx context.Context, req CreateTableRequest) (*CreateTableResponse, error) {
	number := strings.TrimSpace(req.TableNumber)
	if number == "" || req.Capacity <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Table number and capacity required")
	}

	tableType := enums.TableTypeRegular
	if req.Type != "" {
		parsed, err := enums.ParseTableType(req.Type)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid table type")
		}
		tableType = parsed
	}

	table, err := s.repo.Create(ctx, &models.Table{
		TableNumber: number,
		Capacity:    req.Capacity,
		Type:        tableType,
		Status:      enums.TableStatusAvailable,
	})
	if err != nil {
		if pkgerrors.IsUniqueViolation(err) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "Table number already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create table")
	}

	return &CreateTableResponse{TableID: table.ID}, nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateTableRequest) error {
	fields := map[string]any{}

	if req.TableNumber != nil && strings.TrimSpace(*req.TableNumber) != "" {
		fields["table_number"] = strings.TrimSpace(*req.TableNumber)
	}
	if req.Capacity != nil && *req.Capacity > 0 {
		fields["capacity"] = *req.Capacity
	}
	if req.Type != nil && *req.Type != "" {
		parsed, err := enums.ParseTableType(*req.Type)
		if err != nil {
			return pkgerrors.New(pkgerrors.CodeValidation, "Invalid table type")
		}
		fields["type"] = parsed
	}
	if req.Status != nil && *req.Status != "" {
		parsed, err := enums.ParseTableStatus(*req.Status)
		if err != nil {
			return pkgerrors.New(pkgerrors.CodeValidation, "Invalid table status")
		}
		fields["status"] = parsed
	}

	if len(fields) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "No fields to update")
	}

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		if pkgerrors.IsUniqueViolation(err) {
			return pkgerrors.New(pkgerrors.CodeValidation, "Table number already exists")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update table")
	}
	return nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete table")
	}
	return nil
}

func (s *service) Seat(ctx context.Context, id uint, actorID uint, req SeatRequest) error {
	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "Customer name required")
	}
	if err := s.repo.Seat(ctx, id, actorID, name); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "seat customer")
	}
	return nil
}

func (s *service) Vacate(ctx context.Context, id uint) error {
	if err := s.repo.Vacate(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "vacate table")
	}
	return nil
}
