package admin

import (
	"context"

	"gorm.io/gorm"

	"github.com/tabledesk/tabledesk-backend/pkg/db/models"
	"github.com/tabledesk/tabledesk-backend/pkg/enums"
)

const recentActivityLimit = 10

// Repository exposes the reporting queries behind the admin dashboard.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an admin repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CountUsersByRole rolls the user base up per role.
func (r *Repository) CountUsersByRole(ctx context.Context) ([]RoleCountDTO, error) {
	var out []RoleCountDTO
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Select("role, COUNT(*) AS count").
		Group("role").
		Order("role ASC").
		Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// TableStats aggregates the floor inventory in a single scan.
func (r *Repository) TableStats(ctx context.Context) (*TableStatsDTO, error) {
	var stats TableStatsDTO
	if err := r.db.WithContext(ctx).
		Model(&models.Table{}).
		Select(
			"COUNT(*) AS total_tables, "+
				"COUNT(CASE WHEN status = ? THEN 1 END) AS available, "+
				"COUNT(CASE WHEN status = ? THEN 1 END) AS occupied, "+
				"COUNT(CASE WHEN status = ? THEN 1 END) AS reserved, "+
				"COUNT(CASE WHEN type = ? THEN 1 END) AS vip_tables, "+
				"COUNT(CASE WHEN type = ? THEN 1 END) AS regular_tables",
			enums.TableStatusAvailable, enums.TableStatusOccupied, enums.TableStatusReserved,
			enums.TableTypeVIP, enums.TableTypeRegular,
		).
		Scan(&stats).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

// QueueCount counts tables with a waiting customer attached.
func (r *Repository) QueueCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Table{}).
		Where("queue_position IS NOT NULL").
		Count(&count).Error
	return count, err
}

// ReservationCount counts tables holding a reservation.
func (r *Repository) ReservationCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Table{}).
		Where("reservation_time IS NOT NULL").
		Count(&count).Error
	return count, err
}

// RecentActivity returns the most recently touched tables.
func (r *Repository) RecentActivity(ctx context.Context) ([]ActivityDTO, error) {
	var out []ActivityDTO
	if err := r.db.WithContext(ctx).
		Model(&models.Table{}).
		Select("id, table_number, status, current_customer_name, updated_at").
		Order("updated_at DESC").
		Limit(recentActivityLimit).
		Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// ListReservationsWithCustomers joins reserved tables against the customer
// accounts behind them. The join is LEFT so walk-in names without an account
// still show up.
func (r *Repository) ListReservationsWithCustomers(ctx context.Context) ([]ReservationRowDTO, error) {
	var out []ReservationRowDTO
	if err := r.db.WithContext(ctx).
		Model(&models.Table{}).
		Select("restaurant_tables.id, restaurant_tables.table_number, restaurant_tables.capacity, "+
			"restaurant_tables.type, restaurant_tables.reservation_time, "+
			"users.name AS customer_name, users.email AS customer_email, users.contact_info").
		Joins("LEFT JOIN users ON users.id = restaurant_tables.current_customer_id").
		Where("restaurant_tables.reservation_time IS NOT NULL").
		Order("restaurant_tables.reservation_time ASC").
		Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// ListQueueWithCustomers joins queued tables against the customer accounts.
func (r *Repository) ListQueueWithCustomers(ctx context.Context) ([]QueueRowDTO, error) {
	var out []QueueRowDTO
	if err := r.db.WithContext(ctx).
		Model(&models.Table{}).
		Select("restaurant_tables.id, restaurant_tables.table_number, restaurant_tables.capacity, "+
			"restaurant_tables.type, restaurant_tables.queue_position, "+
			"users.name AS customer_name, users.email AS customer_email, users.contact_info").
		Joins("LEFT JOIN users ON users.id = restaurant_tables.current_customer_id").
		Where("restaurant_tables.queue_position IS NOT NULL").
		Order("restaurant_tables.queue_position ASC").
		Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
