package reservations

import (
	"time"

	"github.com/tabledesk/tabledesk-backend/pkg/enums"
)

// ReservationDTO is the staff-facing projection of a reserved table.
type ReservationDTO struct {
	ID                  uint            `json:"id"`
	TableNumber         string          `json:"table_number"`
	Capacity            int             `json:"capacity"`
	Type                enums.TableType `json:"type"`
	CurrentCustomerName *string         `json:"current_customer_name,omitempty"`
	ReservationTime     *time.Time      `json:"reservation_time"`
	CurrentCustomerID   *uint           `json:"current_customer_id,omitempty"`
}

// OwnReservationDTO is the reduced projection customers see of their own bookings.
type OwnReservationDTO struct {
	ID              uint            `json:"id"`
	TableNumber     string          `json:"table_number"`
	Capacity        int             `json:"capacity"`
	Type            enums.TableType `json:"type"`
	ReservationTime *time.Time      `json:"reservation_time"`
}

// CreateRequest is the payload for booking a table.
type CreateRequest struct {
	TableID         *uint      `json:"table_id,omitempty"`
	CustomerName    string     `json:"customer_name"`
	ReservationTime *time.Time `json:"reservation_time"`
	Capacity        int        `json:"capacity,omitempty"`
}

// ListResult carries one of the two role-dependent projections.
type ListResult struct {
	All []ReservationDTO
	Own []OwnReservationDTO
}
