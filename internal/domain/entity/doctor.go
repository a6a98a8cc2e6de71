package entity

import (
	"time"

	"github.com/google/uuid"
)

// VerificationStatus represents the admin verification state of a doctor
type VerificationStatus string

const (
	VerificationStatusPending  VerificationStatus = "pending"
	VerificationStatusVerified VerificationStatus = "verified"
)

// Doctor represents a registered doctor. A doctor stays invisible to all
// search and booking paths until an admin flips Status to verified.
type Doctor struct {
	ID             uuid.UUID          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Username       string             `gorm:"type:varchar(255);not null" json:"username"`
	Email          string             `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password       string             `gorm:"type:text;not null" json:"-"`
	LicenseNo      string             `gorm:"type:varchar(50)" json:"license_no,omitempty"`
	Specialization string             `gorm:"type:varchar(100);not null;index" json:"specialization"`
	Experience     int                `gorm:"default:0" json:"experience"`
	Hospital       string             `gorm:"type:varchar(255)" json:"hospital,omitempty"`
	Address        string             `gorm:"type:text" json:"address,omitempty"`
	Location       string             `gorm:"type:varchar(100);not null;index" json:"location"`
	ProfilePicture string             `gorm:"type:text" json:"profile_picture,omitempty"`
	Status         VerificationStatus `gorm:"type:verification_status;not null;default:'pending';index" json:"status"`
	CreatedAt      time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time          `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Slots        []AvailabilitySlot `gorm:"foreignKey:DoctorID" json:"slots,omitempty"`
	Appointments []Appointment      `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// IsVerified checks if the doctor passed the verification gate
func (d *Doctor) IsVerified() bool {
	return d.Status == VerificationStatusVerified
}

// Verify marks the doctor as verified. One-way transition, idempotent.
func (d *Doctor) Verify() {
	d.Status = VerificationStatusVerified
}
