package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AnnouncementModel struct {
	AnnouncementID uuid.UUID `gorm:"column:announcement_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"announcement_id"`

	AnnouncementTitle   string `gorm:"column:announcement_title;type:varchar(200);not null" json:"announcement_title"`
	AnnouncementContent string `gorm:"column:announcement_content;type:text;not null" json:"announcement_content"`

	// Hanya yang published tampil di portal publik/wali
	AnnouncementIsPublished bool `gorm:"column:announcement_is_published;not null;default:false;index" json:"announcement_is_published"`

	AnnouncementCreatedBy *uuid.UUID `gorm:"column:announcement_created_by;type:uuid" json:"announcement_created_by,omitempty"`

	AnnouncementCreatedAt time.Time      `gorm:"column:announcement_created_at;type:timestamptz;not null;default:now()" json:"announcement_created_at"`
	AnnouncementUpdatedAt time.Time      `gorm:"column:announcement_updated_at;type:timestamptz;not null;default:now()" json:"announcement_updated_at"`
	AnnouncementDeletedAt gorm.DeletedAt `gorm:"column:announcement_deleted_at;type:timestamptz;index" json:"-"`
}

func (AnnouncementModel) TableName() string { return "announcements" }

func (m *AnnouncementModel) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.AnnouncementCreatedAt.IsZero() {
		m.AnnouncementCreatedAt = now
	}
	m.AnnouncementUpdatedAt = now
	return nil
}

func (m *AnnouncementModel) BeforeUpdate(tx *gorm.DB) (err error) {
	m.AnnouncementUpdatedAt = time.Now()
	return nil
}
