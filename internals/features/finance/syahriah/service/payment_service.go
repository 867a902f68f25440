package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	rekapService "pesantrenku_backend/internals/features/finance/rekap/service"
	"pesantrenku_backend/internals/features/finance/syahriah/model"
)

var ErrChargeNotFound = errors.New("syahriah: tagihan tidak ditemukan")

/* ==============================================
   STORE — akses tagihan untuk workflow bayar.
   Dipisah sebagai interface supaya transisi CAS
   bisa diuji tanpa database.
============================================== */

type ChargeStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (model.SyahriahModel, error)

	// MarkPaidIfUnpaid = conditional update: hanya berhasil kalau status
	// masih unpaid. Return false kalau tidak ada baris yang berubah
	// (tagihan sudah paid, atau tidak ada).
	MarkPaidIfUnpaid(ctx context.Context, id uuid.UUID, paidAt time.Time, method string) (bool, error)
}

type GormChargeStore struct{ DB *gorm.DB }

func (s GormChargeStore) FindByID(ctx context.Context, id uuid.UUID) (model.SyahriahModel, error) {
	var m model.SyahriahModel
	err := s.DB.WithContext(ctx).
		Where("syahriah_id = ?", id).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.SyahriahModel{}, ErrChargeNotFound
		}
		return model.SyahriahModel{}, err
	}
	return m, nil
}

func (s GormChargeStore) MarkPaidIfUnpaid(ctx context.Context, id uuid.UUID, paidAt time.Time, method string) (bool, error) {
	// CAS di level row: WHERE status='unpaid' memastikan transisi terjadi
	// paling banyak sekali walau request datang berkali-kali.
	tx := s.DB.WithContext(ctx).
		Model(&model.SyahriahModel{}).
		Where("syahriah_id = ? AND syahriah_status = ?", id, model.SyahriahStatusUnpaid).
		Updates(map[string]any{
			"syahriah_status":         model.SyahriahStatusPaid,
			"syahriah_paid_at":        paidAt,
			"syahriah_payment_method": method,
			"syahriah_updated_at":     time.Now(),
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

/* ==============================================
   WORKFLOW — unpaid → paid, idempotent
============================================== */

type PaymentService struct {
	Store ChargeStore

	// AfterPaid dipanggil sekali tiap transisi unpaid→paid yang sukses
	// (tidak pernah pada submit duplikat). Dipakai untuk refresh rekap
	// periode tagihan: pelunasan telat mendarat di periode lama yang
	// tidak disentuh scheduler periode berjalan.
	AfterPaid func(period string)
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{
		Store: GormChargeStore{DB: db},
		AfterPaid: func(period string) {
			rekapService.RefreshPeriodAsync(db, period)
		},
	}
}

// MarkPaid mentransisikan tagihan ke paid. Submit ulang pada tagihan yang
// sudah paid = sukses no-op (wali bisa double-submit konfirmasi di koneksi
// jelek), dan total agregasi tidak pernah double-count karena transisinya
// conditional update, bukan blind write.
func (s *PaymentService) MarkPaid(ctx context.Context, chargeID uuid.UUID, paidAt time.Time, method string) (model.SyahriahModel, error) {
	if paidAt.IsZero() {
		paidAt = time.Now()
	}

	updated, err := s.Store.MarkPaidIfUnpaid(ctx, chargeID, paidAt, method)
	if err != nil {
		return model.SyahriahModel{}, err
	}

	ch, err := s.Store.FindByID(ctx, chargeID)
	if err != nil {
		return model.SyahriahModel{}, err
	}

	if !updated && ch.SyahriahStatus != model.SyahriahStatusPaid {
		// CAS gagal padahal tagihan ada dan belum paid — tidak terduga
		return model.SyahriahModel{}, fmt.Errorf("syahriah: gagal memperbarui status tagihan %s", chargeID)
	}

	if updated && s.AfterPaid != nil {
		s.AfterPaid(ch.SyahriahPeriod)
	}
	return ch, nil
}
