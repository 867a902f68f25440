package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Testimoni wali/alumni. Masuk sebagai draft, admin yang menayangkan.
type TestimonialModel struct {
	TestimonialID uuid.UUID `gorm:"column:testimonial_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"testimonial_id"`

	TestimonialAuthorName string  `gorm:"column:testimonial_author_name;type:varchar(100);not null" json:"testimonial_author_name"`
	TestimonialAuthorRole *string `gorm:"column:testimonial_author_role;type:varchar(50)" json:"testimonial_author_role,omitempty"`
	TestimonialMessage    string  `gorm:"column:testimonial_message;type:text;not null" json:"testimonial_message"`

	TestimonialIsPublished bool `gorm:"column:testimonial_is_published;not null;default:false;index" json:"testimonial_is_published"`

	// Terisi kalau testimoni dikirim wali yang sedang login
	TestimonialUserID *uuid.UUID `gorm:"column:testimonial_user_id;type:uuid" json:"testimonial_user_id,omitempty"`

	TestimonialCreatedAt time.Time      `gorm:"column:testimonial_created_at;type:timestamptz;not null;default:now()" json:"testimonial_created_at"`
	TestimonialUpdatedAt time.Time      `gorm:"column:testimonial_updated_at;type:timestamptz;not null;default:now()" json:"testimonial_updated_at"`
	TestimonialDeletedAt gorm.DeletedAt `gorm:"column:testimonial_deleted_at;type:timestamptz;index" json:"-"`
}

func (TestimonialModel) TableName() string { return "testimonials" }

func (m *TestimonialModel) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.TestimonialCreatedAt.IsZero() {
		m.TestimonialCreatedAt = now
	}
	m.TestimonialUpdatedAt = now
	return nil
}

func (m *TestimonialModel) BeforeUpdate(tx *gorm.DB) (err error) {
	m.TestimonialUpdatedAt = time.Now()
	return nil
}
