package queue

import (
	"context"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tabledesk/tabledesk-backend/pkg/db/models"
	"github.com/tabledesk/tabledesk-backend/pkg/enums"
	pkgerrors "github.com/tabledesk/tabledesk-backend/pkg/errors"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&models.User{}, &models.Table{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return conn
}

func newTestService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc, err := NewService(ServiceParams{Repo: NewRepository(db)})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc, db
}

func seedCustomer(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{Name: "Customer", Email: email, Password: "x", Role: enums.RoleCustomer}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedTable(t *testing.T, db *gorm.DB, number string, capacity int, status enums.TableStatus) *models.Table {
	t.Helper()
	table := &models.Table{TableNumber: number, Capacity: capacity, Type: enums.TableTypeRegular, Status: status}
	if err := db.Create(table).Error; err != nil {
		t.Fatalf("seed table: %v", err)
	}
	return table
}

func TestJoinGeneralPicksSmallestFit(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	customer := seedCustomer(t, db, "c1@test.com")

	seedTable(t, db, "1", 8, enums.TableStatusAvailable)
	small := seedTable(t, db, "2", 4, enums.TableStatusAvailable)
	seedTable(t, db, "3", 2, enums.TableStatusAvailable)

	resp, err := svc.Join(ctx, customer.ID, JoinRequest{CustomerName: "John", Capacity: 3})
	if err != nil {
		t.Fatalf("join: %v", err)
	}
	if resp.Position != 1 {
		t.Fatalf("expected position 1, got %d", resp.Position)
	}

	var got models.Table
	if err := db.First(&got, small.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.QueuePosition == nil || *got.QueuePosition != 1 {
		t.Fatalf("expected capacity-4 table queued, got %+v", got)
	}
}

func TestJoinGeneralNoCapacity(t *testing.T) {
	svc, db := newTestService(t)
	customer := seedCustomer(t, db, "c1@test.com")
	seedTable(t, db, "1", 2, enums.TableStatusAvailable)

	_, err := svc.Join(context.Background(), customer.ID, JoinRequest{CustomerName: "John", Capacity: 6})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Message() != "No available tables for requested capacity" {
		t.Fatalf("expected no-capacity error, got %v", err)
	}
}

func TestJoinPositionsShareGlobalSequence(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	first := seedCustomer(t, db, "c1@test.com")
	second := seedCustomer(t, db, "c2@test.com")

	seedTable(t, db, "1", 2, enums.TableStatusAvailable)
	seedTable(t, db, "2", 2, enums.TableStatusAvailable)

	resp1, err := svc.Join(ctx, first.ID, JoinRequest{CustomerName: "One"})
	if err != nil {
		t.Fatalf("first join: %v", err)
	}
	resp2, err := svc.Join(ctx, second.ID, JoinRequest{CustomerName: "Two"})
	if err != nil {
		t.Fatalf("second join: %v", err)
	}

	// Positions count across all tables, not per table.
	if resp1.Position != 1 || resp2.Position != 2 {
		t.Fatalf("expected global positions 1 and 2, got %d and %d", resp1.Position, resp2.Position)
	}
}

func TestJoinSpecificUnavailableTableIsSilentNoop(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	customer := seedCustomer(t, db, "c1@test.com")
	occupied := seedTable(t, db, "1", 4, enums.TableStatusOccupied)

	resp, err := svc.Join(ctx, customer.ID, JoinRequest{TableID: &occupied.ID, CustomerName: "John"})
	if err != nil {
		t.Fatalf("join should not error: %v", err)
	}
	if resp.Position != 1 {
		t.Fatalf("expected position 1 returned anyway, got %d", resp.Position)
	}

	var got models.Table
	if err := db.First(&got, occupied.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.QueuePosition != nil {
		t.Fatal("occupied table must not gain a queue slot")
	}
}

func TestPositionAndLeave(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	customer := seedCustomer(t, db, "c1@test.com")
	table := seedTable(t, db, "1", 2, enums.TableStatusAvailable)

	if _, err := svc.Join(ctx, customer.ID, JoinRequest{TableID: &table.ID, CustomerName: "John"}); err != nil {
		t.Fatalf("join: %v", err)
	}

	pos, err := svc.Position(ctx, customer.ID)
	if err != nil {
		t.Fatalf("position: %v", err)
	}
	if pos == nil || pos.QueuePosition == nil || *pos.QueuePosition != 1 {
		t.Fatalf("unexpected position %+v", pos)
	}

	if err := svc.Leave(ctx, customer.ID); err != nil {
		t.Fatalf("leave: %v", err)
	}

	pos, err = svc.Position(ctx, customer.ID)
	if err != nil {
		t.Fatalf("position after leave: %v", err)
	}
	if pos != nil {
		t.Fatalf("expected nil position after leave, got %+v", pos)
	}
}

func TestLeaveWithoutSlotIsNoop(t *testing.T) {
	svc, db := newTestService(t)
	customer := seedCustomer(t, db, "c1@test.com")

	if err := svc.Leave(context.Background(), customer.ID); err != nil {
		t.Fatalf("leave with no slot should be a no-op: %v", err)
	}
}

func TestPositionsAreNeverCompacted(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	first := seedCustomer(t, db, "c1@test.com")
	second := seedCustomer(t, db, "c2@test.com")

	seedTable(t, db, "1", 2, enums.TableStatusAvailable)
	seedTable(t, db, "2", 2, enums.TableStatusAvailable)

	if _, err := svc.Join(ctx, first.ID, JoinRequest{CustomerName: "One"}); err != nil {
		t.Fatalf("first join: %v", err)
	}
	if _, err := svc.Join(ctx, second.ID, JoinRequest{CustomerName: "Two"}); err != nil {
		t.Fatalf("second join: %v", err)
	}
	if err := svc.Leave(ctx, first.ID); err != nil {
		t.Fatalf("leave: %v", err)
	}

	// The vacated slot leaves a gap; the sequence keeps growing from the max.
	third := seedCustomer(t, db, "c3@test.com")
	resp, err := svc.Join(ctx, third.ID, JoinRequest{CustomerName: "Three"})
	if err != nil {
		t.Fatalf("third join: %v", err)
	}
	if resp.Position != 3 {
		t.Fatalf("expected position 3 after gap, got %d", resp.Position)
	}
}
