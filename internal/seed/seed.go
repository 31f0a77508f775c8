// Package seed loads a small demo dataset for local development.
package seed

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/tabledesk/tabledesk-backend/pkg/config"
	"github.com/tabledesk/tabledesk-backend/pkg/db/models"
	"github.com/tabledesk/tabledesk-backend/pkg/enums"
	"github.com/tabledesk/tabledesk-backend/pkg/logger"
	"github.com/tabledesk/tabledesk-backend/pkg/security"
)

const demoPassword = "password123"

// Seeder writes the demo users and floor plan.
type Seeder struct {
	db       *gorm.DB
	password config.PasswordConfig
	logg     *logger.Logger
}

// New builds a seeder bound to the given database connection.
func New(db *gorm.DB, password config.PasswordConfig, logg *logger.Logger) *Seeder {
	return &Seeder{db: db, password: password, logg: logg}
}

// Run seeds demo data once. It is a no-op when any table rows already exist,
// so restarting a dev server never duplicates the floor plan.
func (s *Seeder) Run(ctx context.Context) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Table{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count tables: %w", err)
	}
	if count > 0 {
		s.logg.Info(s.logg.WithField(ctx, "existing_tables", count), "seed.skip")
		return nil
	}

	hash, err := security.HashPassword(demoPassword, s.password)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	customers, err := s.seedUsers(ctx, hash)
	if err != nil {
		return err
	}
	if err := s.seedTables(ctx, customers); err != nil {
		return err
	}

	s.logg.Info(s.logg.WithField(ctx, "accounts", "customer@test.com, manager@test.com, admin@test.com / "+demoPassword), "seed.complete")
	return nil
}

func (s *Seeder) seedUsers(ctx context.Context, hash string) ([]models.User, error) {
	contact := func(v string) *string { return &v }
	accounts := []models.User{
		{Name: "John Doe", Email: "customer@test.com", Password: hash, Role: enums.RoleCustomer, ContactInfo: contact("+1234567890")},
		{Name: "Jane Smith", Email: "customer2@test.com", Password: hash, Role: enums.RoleCustomer, ContactInfo: contact("+1234567891")},
		{Name: "Bob Johnson", Email: "customer3@test.com", Password: hash, Role: enums.RoleCustomer, ContactInfo: contact("+1234567892")},
		{Name: "Restaurant Manager", Email: "manager@test.com", Password: hash, Role: enums.RoleManager, ContactInfo: contact("+1987654321")},
		{Name: "Site Admin", Email: "admin@test.com", Password: hash, Role: enums.RoleAdmin, ContactInfo: contact("+1987654322")},
	}
	for i := range accounts {
		if err := s.db.WithContext(ctx).Create(&accounts[i]).Error; err != nil {
			return nil, fmt.Errorf("seed user %s: %w", accounts[i].Email, err)
		}
	}
	return accounts, nil
}

func (s *Seeder) seedTables(ctx context.Context, customers []models.User) error {
	type floorSpot struct {
		number   string
		capacity int
		kind     enums.TableType
		status   enums.TableStatus
	}
	floor := []floorSpot{
		{"1", 2, enums.TableTypeRegular, enums.TableStatusAvailable},
		{"2", 4, enums.TableTypeRegular, enums.TableStatusOccupied},
		{"3", 4, enums.TableTypeRegular, enums.TableStatusAvailable},
		{"4", 6, enums.TableTypeVIP, enums.TableStatusReserved},
		{"5", 2, enums.TableTypeRegular, enums.TableStatusAvailable},
		{"6", 4, enums.TableTypeRegular, enums.TableStatusAvailable},
		{"7", 6, enums.TableTypeVIP, enums.TableStatusAvailable},
		{"8", 8, enums.TableTypeVIP, enums.TableStatusOccupied},
		{"9", 2, enums.TableTypeRegular, enums.TableStatusAvailable},
		{"10", 4, enums.TableTypeRegular, enums.TableStatusAvailable},
	}
	for _, spot := range floor {
		table := models.Table{TableNumber: spot.number, Capacity: spot.capacity, Type: spot.kind, Status: spot.status}
		if err := s.db.WithContext(ctx).Create(&table).Error; err != nil {
			return fmt.Errorf("seed table %s: %w", spot.number, err)
		}
	}

	setName := func(number, name string, extra map[string]any) error {
		updates := map[string]any{"current_customer_name": name}
		for k, v := range extra {
			updates[k] = v
		}
		return s.db.WithContext(ctx).
			Model(&models.Table{}).
			Where("table_number = ?", number).
			Updates(updates).Error
	}

	if err := setName("2", "Alice Brown", nil); err != nil {
		return fmt.Errorf("seed occupant: %w", err)
	}
	if err := setName("8", "Charlie Wilson", nil); err != nil {
		return fmt.Errorf("seed occupant: %w", err)
	}

	// Tomorrow at 19:00 local time.
	tomorrow := time.Now().AddDate(0, 0, 1)
	dinner := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 19, 0, 0, 0, tomorrow.Location())
	if err := setName("4", "Emma Davis", map[string]any{
		"reservation_time":    dinner,
		"current_customer_id": customers[0].ID,
	}); err != nil {
		return fmt.Errorf("seed reservation: %w", err)
	}

	if err := setName("5", "Michael Lee", map[string]any{
		"queue_position":      1,
		"current_customer_id": customers[1].ID,
	}); err != nil {
		return fmt.Errorf("seed queue: %w", err)
	}
	if err := setName("6", "Sarah Martinez", map[string]any{
		"queue_position":      2,
		"current_customer_id": customers[2].ID,
	}); err != nil {
		return fmt.Errorf("seed queue: %w", err)
	}
	return nil
}
