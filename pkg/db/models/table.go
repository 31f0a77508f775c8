package models

import (
	"time"

	"github.com/tabledesk/tabledesk-backend/pkg/enums"
)

// Table is a single restaurant table. The current_* columns carry the
// occupant or next-in-queue customer; queue_position orders waiting
// customers globally and reservation_time marks a pending booking.
type Table struct {
	ID                  uint              `gorm:"primaryKey;autoIncrement"`
	TableNumber         string            `gorm:"column:table_number;type:text;not null;uniqueIndex:idx_tables_number"`
	Capacity            int               `gorm:"not null"`
	Type                enums.TableType   `gorm:"type:text;not null;default:regular"`
	Status              enums.TableStatus `gorm:"type:text;not null;default:available"`
	CurrentCustomerID   *uint             `gorm:"column:current_customer_id"`
	CurrentCustomerName *string           `gorm:"column:current_customer_name"`
	QueuePosition       *int              `gorm:"column:queue_position"`
	ReservationTime     *time.Time        `gorm:"column:reservation_time"`
	CreatedAt           time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time         `gorm:"column:updated_at;autoUpdateTime"`

	CurrentCustomer *User `gorm:"foreignKey:CurrentCustomerID;constraint:OnDelete:SET NULL"`
}

// TableName pins the table name GORM uses.
func (Table) TableName() string {
	return "restaurant_tables"
}
