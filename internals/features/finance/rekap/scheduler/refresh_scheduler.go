package scheduler

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/finance/rekap/service"
)

// StartRekapRefreshScheduler menjalankan refresh rekap di background.
// Saat start semua periode di-refresh sekali, setelah itu cukup periode
// berjalan tiap interval (default 15 menit, override REKAP_REFRESH_MINUTES).
func StartRekapRefreshScheduler(db *gorm.DB) {
	go func() {
		intervalMin := 15
		if val := os.Getenv("REKAP_REFRESH_MINUTES"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				intervalMin = parsed
			}
		}

		log.Println("[REKAP] Refresh awal semua periode...")
		if err := refreshWithTimeout(db, true); err != nil {
			log.Printf("[REKAP ERROR] Refresh awal gagal: %v", err)
		}

		for {
			time.Sleep(time.Duration(intervalMin) * time.Minute)

			if err := refreshWithTimeout(db, false); err != nil {
				log.Printf("[REKAP ERROR] Refresh periode berjalan gagal: %v", err)
			} else {
				log.Println("[REKAP] Rekap periode berjalan diperbarui")
			}
		}
	}()
}

func refreshWithTimeout(db *gorm.DB, all bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if all {
		return service.RefreshAll(ctx, db)
	}
	return service.RefreshCurrent(ctx, db)
}
