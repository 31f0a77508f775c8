package admin

import (
	"context"
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tabledesk/tabledesk-backend/internal/users"
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
	svc, err := NewService(ServiceParams{
		UserRepo: users.NewRepository(db),
		Reports:  NewRepository(db),
	})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc, db
}

func seedUser(t *testing.T, db *gorm.DB, email string, role enums.Role) *models.User {
	t.Helper()
	user := &models.User{Name: "User " + email, Email: email, Password: "x", Role: role}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestListUsersOmitsPasswordHash(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	seedUser(t, db, "a@test.com", enums.RoleCustomer)
	seedUser(t, db, "b@test.com", enums.RoleAdmin)

	got, err := svc.ListUsers(ctx)
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 users, got %d", len(got))
	}
	for _, u := range got {
		if u.Email == "" || u.Role == "" {
			t.Fatalf("incomplete projection: %+v", u)
		}
	}
}

func TestDeleteUserSelfGuard(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	admin := seedUser(t, db, "admin@test.com", enums.RoleAdmin)

	err := svc.DeleteUser(ctx, admin.ID, admin.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if typed.Message() != "Cannot delete your own account" {
		t.Fatalf("unexpected message %q", typed.Message())
	}
}

func TestDeleteUserNotFound(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	admin := seedUser(t, db, "admin@test.com", enums.RoleAdmin)

	err := svc.DeleteUser(ctx, admin.ID, 999)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteUserRemovesRow(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	admin := seedUser(t, db, "admin@test.com", enums.RoleAdmin)
	target := seedUser(t, db, "gone@test.com", enums.RoleCustomer)

	if err := svc.DeleteUser(ctx, admin.ID, target.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	var count int64
	if err := db.Model(&models.User{}).Where("id = ?", target.ID).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected user removed")
	}
}

func TestAnalyticsRollups(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	customer := seedUser(t, db, "c@test.com", enums.RoleCustomer)
	seedUser(t, db, "m@test.com", enums.RoleManager)
	seedUser(t, db, "a@test.com", enums.RoleAdmin)

	pos := 1
	at := time.Now().Add(3 * time.Hour)
	tables := []models.Table{
		{TableNumber: "1", Capacity: 2, Type: enums.TableTypeRegular, Status: enums.TableStatusAvailable},
		{TableNumber: "2", Capacity: 4, Type: enums.TableTypeVIP, Status: enums.TableStatusOccupied, CurrentCustomerID: &customer.ID},
		{TableNumber: "3", Capacity: 4, Type: enums.TableTypeRegular, Status: enums.TableStatusReserved, ReservationTime: &at},
		{TableNumber: "4", Capacity: 6, Type: enums.TableTypeRegular, Status: enums.TableStatusAvailable, QueuePosition: &pos},
	}
	for i := range tables {
		if err := db.Create(&tables[i]).Error; err != nil {
			t.Fatalf("seed table: %v", err)
		}
	}

	got, err := svc.Analytics(ctx)
	if err != nil {
		t.Fatalf("analytics: %v", err)
	}

	roleCounts := map[enums.Role]int64{}
	for _, rc := range got.Users {
		roleCounts[rc.Role] = rc.Count
	}
	if roleCounts[enums.RoleCustomer] != 1 || roleCounts[enums.RoleManager] != 1 || roleCounts[enums.RoleAdmin] != 1 {
		t.Fatalf("unexpected role counts: %+v", got.Users)
	}

	if got.Tables.TotalTables != 4 || got.Tables.Available != 2 || got.Tables.Occupied != 1 || got.Tables.Reserved != 1 {
		t.Fatalf("unexpected table stats: %+v", got.Tables)
	}
	if got.Tables.VIPTables != 1 || got.Tables.RegularTables != 3 {
		t.Fatalf("unexpected type stats: %+v", got.Tables)
	}
	if got.Queue.QueueCount != 1 {
		t.Fatalf("expected 1 queued, got %d", got.Queue.QueueCount)
	}
	if got.Reservations.ReservationCount != 1 {
		t.Fatalf("expected 1 reservation, got %d", got.Reservations.ReservationCount)
	}
	if len(got.RecentActivity) != 4 {
		t.Fatalf("expected 4 activity rows, got %d", len(got.RecentActivity))
	}
}

func TestListReservationsJoinsCustomerAccount(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	customer := seedUser(t, db, "dana@test.com", enums.RoleCustomer)
	at := time.Now().Add(3 * time.Hour)
	name := "Dana"
	withAccount := models.Table{
		TableNumber: "1", Capacity: 4, Type: enums.TableTypeRegular,
		Status: enums.TableStatusReserved, ReservationTime: &at,
		CurrentCustomerID: &customer.ID, CurrentCustomerName: &name,
	}
	walkInAt := at.Add(4 * time.Hour)
	walkIn := models.Table{
		TableNumber: "2", Capacity: 2, Type: enums.TableTypeRegular,
		Status: enums.TableStatusReserved, ReservationTime: &walkInAt,
	}
	for _, table := range []*models.Table{&withAccount, &walkIn} {
		if err := db.Create(table).Error; err != nil {
			t.Fatalf("seed table: %v", err)
		}
	}

	rows, err := svc.ListReservations(ctx)
	if err != nil {
		t.Fatalf("list reservations: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].CustomerEmail == nil || *rows[0].CustomerEmail != customer.Email {
		t.Fatalf("expected joined email, got %+v", rows[0])
	}
	if rows[1].CustomerEmail != nil {
		t.Fatalf("walk-in row should carry no account email: %+v", rows[1])
	}
}

func TestListQueueOrdersByPosition(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	customer := seedUser(t, db, "dana@test.com", enums.RoleCustomer)
	second, first := 2, 1
	tables := []models.Table{
		{TableNumber: "1", Capacity: 2, Type: enums.TableTypeRegular, Status: enums.TableStatusAvailable, QueuePosition: &second, CurrentCustomerID: &customer.ID},
		{TableNumber: "2", Capacity: 4, Type: enums.TableTypeRegular, Status: enums.TableStatusAvailable, QueuePosition: &first},
	}
	for i := range tables {
		if err := db.Create(&tables[i]).Error; err != nil {
			t.Fatalf("seed table: %v", err)
		}
	}

	rows, err := svc.ListQueue(ctx)
	if err != nil {
		t.Fatalf("list queue: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].QueuePosition == nil || *rows[0].QueuePosition != 1 {
		t.Fatalf("expected position 1 first, got %+v", rows[0])
	}
}
