package seeds

import (
	"log"

	"gorm.io/gorm"

	"pesantrenku_backend/internals/configs"
	"pesantrenku_backend/internals/constants"
	"pesantrenku_backend/internals/features/users/user/model"
)

// RunSeeds memastikan akun admin pertama ada.
// Email & password dari env; tidak menimpa akun yang sudah ada.
func RunSeeds(db *gorm.DB) {
	seedAdminUser(db)
}

func seedAdminUser(db *gorm.DB) {
	email := configs.GetEnv("SEED_ADMIN_EMAIL")
	password := configs.GetEnv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("⚠️ SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD belum diset, lewati seeding admin")
		return
	}

	var count int64
	if err := db.Model(&model.UserModel{}).
		Where("user_role = ?", constants.RoleAdmin).
		Count(&count).Error; err != nil {
		log.Printf("[ERROR] Seeding: gagal cek admin: %v", err)
		return
	}
	if count > 0 {
		return
	}

	admin := model.UserModel{
		UserName:     configs.GetEnv("SEED_ADMIN_NAME", "Admin Pesantren"),
		UserEmail:    email,
		UserRole:     constants.RoleAdmin,
		UserIsActive: true,
	}
	if err := admin.SetPassword(password); err != nil {
		log.Printf("[ERROR] Seeding: gagal hash password admin: %v", err)
		return
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("[ERROR] Seeding: gagal membuat admin: %v", err)
		return
	}
	log.Printf("✅ Akun admin awal dibuat: %s", email)
}
