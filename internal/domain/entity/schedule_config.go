package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleConfig holds the per-tenant automation schedule: when to open the
// register, when to close it, and on which weekdays automation may run.
// Weekdays use 1=Monday .. 7=Sunday.
type ScheduleConfig struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	TenantID         uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null" json:"tenant_id"`
	AutoOpenEnabled  bool           `gorm:"default:false" json:"auto_open_enabled"`
	AutoCloseEnabled bool           `gorm:"default:false" json:"auto_close_enabled"`
	OpenHour         int            `gorm:"not null;default:9" json:"open_hour"`
	OpenMinute       int            `gorm:"not null;default:0" json:"open_minute"`
	CloseHour        int            `gorm:"not null;default:18" json:"close_hour"`
	CloseMinute      int            `gorm:"not null;default:0" json:"close_minute"`
	ActiveDays       []int          `gorm:"type:jsonb;serializer:json" json:"active_days"`
	Timezone         string         `gorm:"size:64;not null;default:'UTC'" json:"timezone"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Tenant Tenant `gorm:"foreignKey:TenantID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new schedule config
func (c *ScheduleConfig) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ScheduleConfig model
func (ScheduleConfig) TableName() string {
	return "schedule_configs"
}

// OpenMinutesOfDay returns the configured opening time as minutes since midnight.
func (c *ScheduleConfig) OpenMinutesOfDay() int {
	return c.OpenHour*60 + c.OpenMinute
}

// CloseMinutesOfDay returns the configured closing time as minutes since midnight.
func (c *ScheduleConfig) CloseMinutesOfDay() int {
	return c.CloseHour*60 + c.CloseMinute
}

// IsDayActive reports whether the given ISO weekday (1=Monday..7=Sunday)
// is in the active-day set.
func (c *ScheduleConfig) IsDayActive(weekday int) bool {
	for _, d := range c.ActiveDays {
		if d == weekday {
			return true
		}
	}
	return false
}

// CrossesMidnight reports whether the close belongs to the day after the
// matching open: a register opened at 09:00 and closed at 02:00 wraps past
// midnight, so its close time is clock-earlier than (or equal to) its open time.
func (c *ScheduleConfig) CrossesMidnight() bool {
	return c.CloseMinutesOfDay() <= c.OpenMinutesOfDay()
}
