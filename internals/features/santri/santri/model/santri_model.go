package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================================
   MODEL — data santri + relasi ke wali (users)
============================================== */

type SantriModel struct {
	// PK
	SantriID uuid.UUID `gorm:"column:santri_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"santri_id"`

	// FK → users(user_id). Satu wali bisa punya banyak santri.
	SantriWaliUserID uuid.UUID `gorm:"column:santri_wali_user_id;type:uuid;not null;index" json:"santri_wali_user_id"`

	SantriName string `gorm:"column:santri_name;type:varchar(100);not null" json:"santri_name"`

	// NIS internal pesantren, opsional tapi unik kalau diisi
	SantriNIS *string `gorm:"column:santri_nis;type:varchar(30);uniqueIndex" json:"santri_nis,omitempty"`

	SantriClass  *string    `gorm:"column:santri_class;type:varchar(50)" json:"santri_class,omitempty"`
	SantriGender *string    `gorm:"column:santri_gender;type:varchar(10)" json:"santri_gender,omitempty"`
	SantriBirth  *time.Time `gorm:"column:santri_birth_date;type:date" json:"santri_birth_date,omitempty"`

	// Santri nonaktif tidak ikut generate tagihan syahriah
	SantriIsActive bool `gorm:"column:santri_is_active;not null;default:true;index" json:"santri_is_active"`

	// Audit
	SantriCreatedAt time.Time      `gorm:"column:santri_created_at;type:timestamptz;not null;default:now()" json:"santri_created_at"`
	SantriUpdatedAt time.Time      `gorm:"column:santri_updated_at;type:timestamptz;not null;default:now()" json:"santri_updated_at"`
	SantriDeletedAt gorm.DeletedAt `gorm:"column:santri_deleted_at;type:timestamptz;index" json:"-"`
}

func (SantriModel) TableName() string { return "santri" }

func (m *SantriModel) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.SantriCreatedAt.IsZero() {
		m.SantriCreatedAt = now
	}
	m.SantriUpdatedAt = now
	return nil
}

func (m *SantriModel) BeforeUpdate(tx *gorm.DB) (err error) {
	m.SantriUpdatedAt = time.Now()
	return nil
}
