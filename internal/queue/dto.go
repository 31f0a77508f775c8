package queue

import "github.com/tabledesk/tabledesk-backend/pkg/enums"

// EntryDTO is one queued table as shown in the waiting-line listing.
type EntryDTO struct {
	ID                  uint            `json:"id"`
	TableNumber         string          `json:"table_number"`
	Capacity            int             `json:"capacity"`
	Type                enums.TableType `json:"type"`
	CurrentCustomerName *string         `json:"current_customer_name"`
	QueuePosition       *int            `json:"queue_position"`
}

// JoinRequest names the customer and optionally the specific table to wait for.
type JoinRequest struct {
	TableID      *uint  `json:"table_id,omitempty"`
	CustomerName string `json:"customer_name"`
	Capacity     int    `json:"capacity,omitempty"`
}

// JoinResponse returns the assigned global queue position.
type JoinResponse struct {
	Position int `json:"position"`
}

// PositionDTO is the caller's own queue slot, nil when not queued.
type PositionDTO struct {
	ID            uint            `json:"id"`
	TableNumber   string          `json:"table_number"`
	Capacity      int             `json:"capacity"`
	QueuePosition *int            `json:"queue_position"`
	Type          enums.TableType `json:"type"`
}
