package admin

import (
	"time"

	"github.com/tabledesk/tabledesk-backend/pkg/enums"
)

// RoleCountDTO is one row of the users-per-role rollup.
type RoleCountDTO struct {
	Role  enums.Role `json:"role"`
	Count int64      `json:"count"`
}

// TableStatsDTO aggregates the floor inventory by status and type.
type TableStatsDTO struct {
	TotalTables   int64 `json:"total_tables"`
	Available     int64 `json:"available"`
	Occupied      int64 `json:"occupied"`
	Reserved      int64 `json:"reserved"`
	VIPTables     int64 `json:"vip_tables" gorm:"column:vip_tables"`
	RegularTables int64 `json:"regular_tables"`
}

// QueueStatsDTO counts customers currently waiting.
type QueueStatsDTO struct {
	QueueCount int64 `json:"queue_count"`
}

// ReservationStatsDTO counts tables holding a reservation.
type ReservationStatsDTO struct {
	ReservationCount int64 `json:"reservation_count"`
}

// ActivityDTO is one row of the recent table-activity feed.
type ActivityDTO struct {
	ID                  uint              `json:"id"`
	TableNumber         string            `json:"table_number"`
	Status              enums.TableStatus `json:"status"`
	CurrentCustomerName *string           `json:"current_customer_name,omitempty"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

// AnalyticsDTO is the full dashboard payload.
type AnalyticsDTO struct {
	Users          []RoleCountDTO      `json:"users"`
	Tables         TableStatsDTO       `json:"tables"`
	Queue          QueueStatsDTO       `json:"queue"`
	Reservations   ReservationStatsDTO `json:"reservations"`
	RecentActivity []ActivityDTO       `json:"recent_activity"`
}

// ReservationRowDTO joins a reserved table with its customer's account details.
type ReservationRowDTO struct {
	ID              uint            `json:"id"`
	TableNumber     string          `json:"table_number"`
	Capacity        int             `json:"capacity"`
	Type            enums.TableType `json:"type"`
	ReservationTime *time.Time      `json:"reservation_time"`
	CustomerName    *string         `json:"customer_name,omitempty"`
	CustomerEmail   *string         `json:"customer_email,omitempty"`
	ContactInfo     *string         `json:"contact_info,omitempty"`
}

// QueueRowDTO joins a queued table with its customer's account details.
type QueueRowDTO struct {
	ID            uint            `json:"id"`
	TableNumber   string          `json:"table_number"`
	Capacity      int             `json:"capacity"`
	Type          enums.TableType `json:"type"`
	QueuePosition *int            `json:"queue_position"`
	CustomerName  *string         `json:"customer_name,omitempty"`
	CustomerEmail *string         `json:"customer_email,omitempty"`
	ContactInfo   *string         `json:"contact_info,omitempty"`
}
