package entity

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilitySlot represents a doctor-declared working window on a given
// date. Slots are advertised windows, not consumable units; the appointment
// uniqueness constraint is what prevents double-booking a time.
type AvailabilitySlot struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID  uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	SlotDate  time.Time `gorm:"type:date;not null;index" json:"slot_date"`
	StartTime string    `gorm:"type:time;not null" json:"start_time"`
	EndTime   string    `gorm:"type:time;not null" json:"end_time"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Doctor Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (AvailabilitySlot) TableName() string {
	return "availability_slots"
}

// Covers reports whether the given HH:MM time falls inside the slot window.
// Start is inclusive, end is exclusive.
func (s *AvailabilitySlot) Covers(hhmm string) bool {
	return s.StartTime <= hhmm && hhmm < s.EndTime
}
