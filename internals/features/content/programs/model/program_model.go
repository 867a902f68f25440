package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Program pendidikan/kegiatan pesantren yang tampil di landing page.
type ProgramModel struct {
	ProgramID uuid.UUID `gorm:"column:program_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"program_id"`

	ProgramName        string  `gorm:"column:program_name;type:varchar(150);not null" json:"program_name"`
	ProgramDescription string  `gorm:"column:program_description;type:text;not null" json:"program_description"`
	ProgramSchedule    *string `gorm:"column:program_schedule;type:varchar(200)" json:"program_schedule,omitempty"`

	ProgramIsActive bool `gorm:"column:program_is_active;not null;default:true;index" json:"program_is_active"`

	ProgramCreatedAt time.Time      `gorm:"column:program_created_at;type:timestamptz;not null;default:now()" json:"program_created_at"`
	ProgramUpdatedAt time.Time      `gorm:"column:program_updated_at;type:timestamptz;not null;default:now()" json:"program_updated_at"`
	ProgramDeletedAt gorm.DeletedAt `gorm:"column:program_deleted_at;type:timestamptz;index" json:"-"`
}

func (ProgramModel) TableName() string { return "programs" }

func (m *ProgramModel) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.ProgramCreatedAt.IsZero() {
		m.ProgramCreatedAt = now
	}
	m.ProgramUpdatedAt = now
	return nil
}

func (m *ProgramModel) BeforeUpdate(tx *gorm.DB) (err error) {
	m.ProgramUpdatedAt = time.Now()
	return nil
}
