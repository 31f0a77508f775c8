package queue

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tabledesk/tabledesk-backend/pkg/db/models"
	"github.com/tabledesk/tabledesk-backend/pkg/enums"
)

// Repository exposes the queue-assignment persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a queue repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListQueued returns all tables holding a queue slot, ordered by position.
func (r *Repository) ListQueued(ctx context.Context) ([]models.Table, error) {
	var out []models.Table
	if err := r.db.WithContext(ctx).
		Where("queue_position IS NOT NULL").
		Order("queue_position ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// NextPosition reads the current global maximum and adds one. This is a
// plain read in its own statement, so two concurrent joins can observe the
// same maximum and claim the same position on different rows.
func (r *Repository) NextPosition(ctx context.Context) (int, error) {
	var maxPos int
	if err := r.db.WithContext(ctx).
		Model(&models.Table{}).
		Select("COALESCE(MAX(queue_position), 0)").
		Scan(&maxPos).Error; err != nil {
		return 0, err
	}
	return maxPos + 1, nil
}

// ClaimTable assigns a queue slot to a specific table only while it is
// still available. Zero rows affected means the table was taken; the
// caller treats that as success, matching the legacy behavior.
func (r *Repository) ClaimTable(ctx context.Context, tableID uint, position int, customerID uint, customerName string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Table{}).
		Where("id = ? AND status = ?", tableID, enums.TableStatusAvailable).
		Updates(map[string]any{
			"queue_position":        position,
			"current_customer_id":   customerID,
			"current_customer_name": customerName,
		})
	return res.RowsAffected, res.Error
}

// FindSmallestAvailable picks the available, unqueued table with the
// smallest capacity that still fits the party.
func (r *Repository) FindSmallestAvailable(ctx context.Context, partySize int) (*models.Table, error) {
	var table models.Table
	err := r.db.WithContext(ctx).
		Where("status = ? AND capacity >= ? AND queue_position IS NULL", enums.TableStatusAvailable, partySize).
		Order("capacity ASC").
		First(&table).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &table, nil
}

// AssignPosition writes the queue slot onto the chosen table without a
// status guard (the general-queue path already picked an available row).
func (r *Repository) AssignPosition(ctx context.Context, tableID uint, position int, customerID uint, customerName string) error {
	return r.db.WithContext(ctx).
		Model(&models.Table{}).
		Where("id = ?", tableID).
		Updates(map[string]any{
			"queue_position":        position,
			"current_customer_id":   customerID,
			"current_customer_name": customerName,
		}).Error
}

// FindByCustomer returns the caller's queued table, nil when not queued.
func (r *Repository) FindByCustomer(ctx context.Context, customerID uint) (*models.Table, error) {
	var table models.Table
	err := r.db.WithContext(ctx).
		Where("current_customer_id = ? AND queue_position IS NOT NULL", customerID).
		First(&table).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &table, nil
}

// Release clears the caller's queue slot; a no-op when none is held.
func (r *Repository) Release(ctx context.Context, customerID uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Table{}).
		Where("current_customer_id = ? AND queue_position IS NOT NULL", customerID).
		Updates(map[string]any{
			"queue_position":        nil,
			"current_customer_id":   nil,
			"current_customer_name": nil,
		}).Error
}
