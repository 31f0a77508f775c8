package reservations

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/tabledesk/tabledesk-backend/pkg/db/models"
	"github.com/tabledesk/tabledesk-backend/pkg/enums"
)

// Repository exposes the reservation-scheduler persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a reservations repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListReserved returns every table carrying a reservation, soonest first.
func (r *Repository) ListReserved(ctx context.Context) ([]models.Table, error) {
	var out []models.Table
	if err := r.db.WithContext(ctx).
		Where("reservation_time IS NOT NULL").
		Order("reservation_time ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// ListReservedByCustomer returns only the caller's reserved tables.
func (r *Repository) ListReservedByCustomer(ctx context.Context, customerID uint) ([]models.Table, error) {
	var out []models.Table
	if err := r.db.WithContext(ctx).
		Where("current_customer_id = ? AND reservation_time IS NOT NULL", customerID).
		Order("reservation_time ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// FindSmallestAvailable picks the available, unreserved table with the
// smallest capacity that still fits the party.
func (r *Repository) FindSmallestAvailable(ctx context.Context, partySize int) (*models.Table, error) {
	var table models.Table
	err := r.db.WithContext(ctx).
		Where("status = ? AND capacity >= ? AND reservation_time IS NULL", enums.TableStatusAvailable, partySize).
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

// FindReservationTime reads the target table's existing reservation time,
// nil when the table holds none.
func (r *Repository) FindReservationTime(ctx context.Context, tableID uint) (*time.Time, error) {
	var table models.Table
	err := r.db.WithContext(ctx).
		Select("reservation_time").
		First(&table, "id = ?", tableID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return table.ReservationTime, nil
}

// Book writes the reservation onto the table.
func (r *Repository) Book(ctx context.Context, tableID uint, customerID uint, customerName string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.Table{}).
		Where("id = ?", tableID).
		Updates(map[string]any{
			"status":                enums.TableStatusReserved,
			"current_customer_id":   customerID,
			"current_customer_name": customerName,
			"reservation_time":      at,
		}).Error
}

// Cancel resets the table to available. When ownerID is non-nil the update
// additionally requires the row to belong to that customer; zero rows
// affected signals "not found or not yours".
func (r *Repository) Cancel(ctx context.Context, tableID uint, ownerID *uint) (int64, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Table{}).
		Where("id = ?", tableID)
	if ownerID != nil {
		q = q.Where("current_customer_id = ?", *ownerID)
	}
	res := q.Updates(map[string]any{
		"status":                enums.TableStatusAvailable,
		"reservation_time":      nil,
		"current_customer_id":   nil,
		"current_customer_name": nil,
	})
	return res.RowsAffected, res.Error
}
