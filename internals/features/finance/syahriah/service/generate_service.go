package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	ledger "pesantrenku_backend/internals/features/finance/ledger/service"
)

// GenerateForPeriod membuat tagihan syahriah untuk semua santri aktif yang
// belum punya tagihan di periode tersebut. Unique index (santri, periode)
// menjaga supaya generate ulang tidak menggandakan tagihan.
func GenerateForPeriod(ctx context.Context, db *gorm.DB, period string, amountIDR int64) (int64, error) {
	p, err := ledger.ParsePeriod(period)
	if err != nil {
		return 0, fmt.Errorf("periode tidak valid: %w", err)
	}
	if amountIDR <= 0 {
		return 0, fmt.Errorf("nominal syahriah harus lebih dari 0")
	}

	tx := db.WithContext(ctx).Exec(`
		INSERT INTO syahriah (
			syahriah_id, syahriah_santri_id, syahriah_period,
			syahriah_amount_idr, syahriah_status,
			syahriah_created_at, syahriah_updated_at
		)
		SELECT gen_random_uuid(), s.santri_id, ?, ?, 'unpaid', now(), now()
		FROM santri s
		WHERE s.santri_deleted_at IS NULL
		  AND s.santri_is_active = TRUE
		  AND NOT EXISTS (
			SELECT 1 FROM syahriah t
			WHERE t.syahriah_santri_id = s.santri_id
			  AND t.syahriah_period = ?
			  AND t.syahriah_deleted_at IS NULL
		  )
	`, string(p), amountIDR, string(p))
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}
