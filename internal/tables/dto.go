package tables

import (
	"time"

	"github.com/tabledesk/tabledesk-backend/pkg/db/models"
	"github.com/tabledesk/tabledesk-backend/pkg/enums"
)

// TableDTO is the full listing projection of a table.
type TableDTO struct {
	ID                  uint              `json:"id"`
	TableNumber         string            `json:"table_number"`
	Capacity            int               `json:"capacity"`
	Type                enums.TableType   `json:"type"`
	Status              enums.TableStatus `json:"status"`
	CurrentCustomerName *string           `json:"current_customer_name"`
	ReservationTime     *time.Time        `json:"reservation_time"`
	QueuePosition       *int              `json:"queue_position"`
}

// AvailableTableDTO is the reduced projection returned by /tables/available.
type AvailableTableDTO struct {
	ID          uint            `json:"id"`
	TableNumber string          `json:"table_number"`
	Capacity    int             `json:"capacity"`
	Type        enums.TableType `json:"type"`
}

// CreateTableRequest is the payload for adding a table to the registry.
type CreateTableRequest struct {
	TableNumber string `json:"table_number"`
	Capacity    int    `json:"capacity"`
	Type        string `json:"type,omitempty"`
}

// CreateTableResponse carries the id of the new table.
type CreateTableResponse struct {
	TableID uint `json:"table_id"`
}

// UpdateTableRequest holds the optional partial-update fields.
type UpdateTableRequest struct {
	TableNumber *string `json:"table_number,omitempty"`
	Capacity    *int    `json:"capacity,omitempty"`
	Type        *string `json:"type,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// SeatRequest names the walk-in customer a manager is seating.
type SeatRequest struct {
	CustomerName string `json:"customer_name"`
}

func FromModel(t *models.Table) TableDTO {
	return TableDTO{
		ID:                  t.ID,
		TableNumber:         t.TableNumber,
		Capacity:            t.Capacity,
		Type:                t.Type,
		Status:              t.Status,
		CurrentCustomerName: t.CurrentCustomerName,
		ReservationTime:     t.ReservationTime,
		QueuePosition:       t.QueuePosition,
	}
}
