package seed

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tabledesk/tabledesk-backend/pkg/config"
	"github.com/tabledesk/tabledesk-backend/pkg/db/models"
	"github.com/tabledesk/tabledesk-backend/pkg/enums"
	"github.com/tabledesk/tabledesk-backend/pkg/logger"
	"github.com/tabledesk/tabledesk-backend/pkg/security"
)

func testPasswordConfig() config.PasswordConfig {
	return config.PasswordConfig{ArgonMemoryKB: 8192, ArgonTime: 1, ArgonParallelism: 1, ArgonSaltLen: 16, ArgonKeyLen: 32}
}

func newTestSeeder(t *testing.T) (*Seeder, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&models.User{}, &models.Table{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	logg := logger.New(logger.Options{ServiceName: "seed-test", Level: zerolog.ErrorLevel, Output: io.Discard})
	return New(conn, testPasswordConfig(), logg), conn
}

func TestRunSeedsDemoData(t *testing.T) {
	seeder, db := newTestSeeder(t)
	ctx := context.Background()

	if err := seeder.Run(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var userCount, tableCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if err := db.Model(&models.Table{}).Count(&tableCount).Error; err != nil {
		t.Fatalf("count tables: %v", err)
	}
	if userCount != 5 {
		t.Fatalf("expected 5 users, got %d", userCount)
	}
	if tableCount != 10 {
		t.Fatalf("expected 10 tables, got %d", tableCount)
	}

	var manager models.User
	if err := db.Where("email = ?", "manager@test.com").First(&manager).Error; err != nil {
		t.Fatalf("load manager: %v", err)
	}
	if manager.Role != enums.RoleManager {
		t.Fatalf("expected manager role, got %s", manager.Role)
	}
	ok, err := security.VerifyPassword(demoPassword, manager.Password)
	if err != nil || !ok {
		t.Fatalf("demo password should verify: ok=%v err=%v", ok, err)
	}

	var reserved models.Table
	if err := db.Where("table_number = ?", "4").First(&reserved).Error; err != nil {
		t.Fatalf("load table 4: %v", err)
	}
	if reserved.Status != enums.TableStatusReserved || reserved.ReservationTime == nil {
		t.Fatalf("expected reserved table 4, got %+v", reserved)
	}
	if reserved.CurrentCustomerName == nil || *reserved.CurrentCustomerName != "Emma Davis" {
		t.Fatalf("expected Emma Davis on table 4")
	}

	var queued []models.Table
	if err := db.Where("queue_position IS NOT NULL").Order("queue_position ASC").Find(&queued).Error; err != nil {
		t.Fatalf("load queue: %v", err)
	}
	if len(queued) != 2 || queued[0].TableNumber != "5" || queued[1].TableNumber != "6" {
		t.Fatalf("unexpected queue rows: %+v", queued)
	}
}

func TestRunSkipsWhenTablesExist(t *testing.T) {
	seeder, db := newTestSeeder(t)
	ctx := context.Background()

	existing := models.Table{TableNumber: "99", Capacity: 2, Type: enums.TableTypeRegular, Status: enums.TableStatusAvailable}
	if err := db.Create(&existing).Error; err != nil {
		t.Fatalf("seed existing: %v", err)
	}

	if err := seeder.Run(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if userCount != 0 {
		t.Fatalf("expected no users seeded, got %d", userCount)
	}
}
