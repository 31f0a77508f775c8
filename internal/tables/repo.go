package tables

import (
	"context"

	"gorm.io/gorm"

	"github.com/tabledesk/tabledesk-backend/pkg/db/models"
	"github.com/tabledesk/tabledesk-backend/pkg/enums"
)

// numericOrder sorts table numbers as integers so "10" follows "9".
const numericOrder = "CAST(table_number AS INTEGER)"

// Repository exposes table-registry persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a tables repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns every table ordered by numeric table number.
func (r *Repository) List(ctx context.Context) ([]models.Table, error) {
	var out []models.Table
	if err := r.db.WithContext(ctx).Order(numericOrder).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// ListAvailable returns tables with status available, numerically ordered.
func (r *Repository) ListAvailable(ctx context.Context) ([]models.Table, error) {
	var out []models.Table
	if err := r.db.WithContext(ctx).
		Where("status = ?", enums.TableStatusAvailable).
		Order(numericOrder).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// FindByID loads a single table row.
func (r *Repository) FindByID(ctx context.Context, id uint) (*models.Table, error) {
	var table models.Table
	if err := r.db.WithContext(ctx).First(&table, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

// Create inserts a new table and returns the persisted model.
func (r *Repository) Create(ctx context.Context, table *models.Table) (*models.Table, error) {
	if err := r.db.WithContext(ctx).Create(table).Error; err != nil {
		return nil, err
	}
	return table, nil
}

// UpdateFields applies a partial column update.
func (r *Repository) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.Table{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// Delete removes a table row unconditionally.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Table{}, "id = ?", id).Error
}

// Seat marks the table occupied and clears any queue slot or reservation.
// No prior-state check: seating an occupied table overwrites the occupant.
func (r *Repository) Seat(ctx context.Context, id uint, actorID uint, customerName string) error {
	return r.db.WithContext(ctx).
		Model(&models.Table{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":                enums.TableStatusOccupied,
			"current_customer_id":   actorID,
			"current_customer_name": customerName,
			"queue_position":        nil,
			"reservation_time":      nil,
		}).Error
}

// Vacate resets the table to available, clearing all occupant fields.
func (r *Repository) Vacate(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Table{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":                enums.TableStatusAvailable,
			"current_customer_id":   nil,
			"current_customer_name": nil,
			"queue_position":        nil,
			"reservation_time":      nil,
		}).Error
}
