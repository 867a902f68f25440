package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

/* ==============================================
   MODEL — akun portal (admin pesantren / wali)
============================================== */

type UserModel struct {
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`

	UserName  string `gorm:"column:user_name;type:varchar(100);not null" json:"user_name"`
	UserEmail string `gorm:"column:user_email;type:varchar(255);not null;uniqueIndex" json:"user_email"`

	// Hash bcrypt, tidak pernah ikut response
	UserPassword string `gorm:"column:user_password;type:varchar(255);not null" json:"-"`

	// admin | wali
	UserRole string `gorm:"column:user_role;type:varchar(20);not null;default:'wali';index" json:"user_role"`

	UserPhone *string `gorm:"column:user_phone;type:varchar(30)" json:"user_phone,omitempty"`

	UserIsActive bool `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;type:timestamptz;not null;default:now()" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;type:timestamptz;not null;default:now()" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;type:timestamptz;index" json:"-"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.UserCreatedAt.IsZero() {
		m.UserCreatedAt = now
	}
	m.UserUpdatedAt = now
	return nil
}

func (m *UserModel) BeforeUpdate(tx *gorm.DB) (err error) {
	m.UserUpdatedAt = time.Now()
	return nil
}

// SetPassword menyimpan hash bcrypt dari password plaintext
func (m *UserModel) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	m.UserPassword = string(hash)
	return nil
}

// CheckPassword membandingkan plaintext dengan hash tersimpan
func (m *UserModel) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(m.UserPassword), []byte(plain)) == nil
}
