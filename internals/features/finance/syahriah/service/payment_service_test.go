package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"pesantrenku_backend/internals/features/finance/syahriah/model"
)

/* ==============================================
   MEMORY STORE — CAS semantics sama dengan
   implementasi GORM
============================================== */

type memChargeStore struct {
	charges map[uuid.UUID]*model.SyahriahModel
	casCall int
}

func newMemStore(charges ...*model.SyahriahModel) *memChargeStore {
	m := &memChargeStore{charges: make(map[uuid.UUID]*model.SyahriahModel)}
	for _, ch := range charges {
		m.charges[ch.SyahriahID] = ch
	}
	return m
}

func (m *memChargeStore) FindByID(ctx context.Context, id uuid.UUID) (model.SyahriahModel, error) {
	ch, ok := m.charges[id]
	if !ok {
		return model.SyahriahModel{}, ErrChargeNotFound
	}
	return *ch, nil
}

func (m *memChargeStore) MarkPaidIfUnpaid(ctx context.Context, id uuid.UUID, paidAt time.Time, method string) (bool, error) {
	m.casCall++
	ch, ok := m.charges[id]
	if !ok || ch.SyahriahStatus != model.SyahriahStatusUnpaid {
		return false, nil
	}
	ch.SyahriahStatus = model.SyahriahStatusPaid
	ch.SyahriahPaidAt = &paidAt
	ch.SyahriahPaymentMethod = &method
	return true, nil
}

func unpaidCharge(amount int64, period string) *model.SyahriahModel {
	return &model.SyahriahModel{
		SyahriahID:        uuid.New(),
		SyahriahSantriID:  uuid.New(),
		SyahriahPeriod:    period,
		SyahriahAmountIDR: amount,
		SyahriahStatus:    model.SyahriahStatusUnpaid,
	}
}

func TestMarkPaid_Transition(t *testing.T) {
	ch := unpaidCharge(50000, "2024-03")
	store := newMemStore(ch)
	svc := &PaymentService{Store: store}

	paidAt := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	got, err := svc.MarkPaid(context.Background(), ch.SyahriahID, paidAt, "cash")
	if err != nil {
		t.Fatalf("MarkPaid() err: %v", err)
	}
	if got.SyahriahStatus != model.SyahriahStatusPaid {
		t.Errorf("status = %s, want paid", got.SyahriahStatus)
	}
	if got.SyahriahPaidAt == nil || !got.SyahriahPaidAt.Equal(paidAt) {
		t.Errorf("paid_at = %v, want %v (waktu bayar, bukan waktu buat)", got.SyahriahPaidAt, paidAt)
	}
}

// Skenario: markPaid kedua pada tagihan yang sudah paid = sukses no-op,
// bukan error dan bukan kredit kedua.
func TestMarkPaid_Idempotent(t *testing.T) {
	ch := unpaidCharge(50000, "2024-03")
	store := newMemStore(ch)
	svc := &PaymentService{Store: store}

	firstPaidAt := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	first, err := svc.MarkPaid(context.Background(), ch.SyahriahID, firstPaidAt, "cash")
	if err != nil {
		t.Fatalf("MarkPaid() pertama err: %v", err)
	}

	// submit ulang dengan paid_at berbeda
	second, err := svc.MarkPaid(context.Background(), ch.SyahriahID, firstPaidAt.Add(2*time.Hour), "cash")
	if err != nil {
		t.Fatalf("MarkPaid() kedua harus sukses no-op, err: %v", err)
	}
	if second.SyahriahStatus != model.SyahriahStatusPaid {
		t.Errorf("status = %s, want paid", second.SyahriahStatus)
	}
	if !second.SyahriahPaidAt.Equal(*first.SyahriahPaidAt) {
		t.Error("paid_at tidak boleh berubah di submit kedua")
	}
	if store.casCall != 2 {
		t.Errorf("casCall = %d, want 2 (dua-duanya lewat conditional update)", store.casCall)
	}
}

// Transisi sukses harus memicu AfterPaid (refresh rekap periode tagihan)
// tepat satu kali; submit duplikat tidak boleh memicu lagi.
func TestMarkPaid_AfterPaidFiresOncePerTransition(t *testing.T) {
	ch := unpaidCharge(50000, "2024-01")
	var refreshed []string
	svc := &PaymentService{
		Store:     newMemStore(ch),
		AfterPaid: func(period string) { refreshed = append(refreshed, period) },
	}

	paidAt := time.Date(2024, 2, 10, 10, 0, 0, 0, time.UTC) // bayar telat, periode lama
	if _, err := svc.MarkPaid(context.Background(), ch.SyahriahID, paidAt, "cash"); err != nil {
		t.Fatalf("MarkPaid() err: %v", err)
	}
	if _, err := svc.MarkPaid(context.Background(), ch.SyahriahID, paidAt, "cash"); err != nil {
		t.Fatalf("MarkPaid() kedua err: %v", err)
	}

	if len(refreshed) != 1 {
		t.Fatalf("AfterPaid terpanggil %d kali, want 1", len(refreshed))
	}
	if refreshed[0] != "2024-01" {
		t.Errorf("AfterPaid periode = %s, want 2024-01 (periode tagihan, bukan bulan bayar)", refreshed[0])
	}
}

func TestMarkPaid_NotFound(t *testing.T) {
	svc := &PaymentService{Store: newMemStore()}

	_, err := svc.MarkPaid(context.Background(), uuid.New(), time.Now(), "cash")
	if !errors.Is(err, ErrChargeNotFound) {
		t.Fatalf("err = %v, want ErrChargeNotFound", err)
	}
}

func TestMarkPaid_DefaultsPaidAt(t *testing.T) {
	ch := unpaidCharge(50000, "2024-04")
	svc := &PaymentService{Store: newMemStore(ch)}

	got, err := svc.MarkPaid(context.Background(), ch.SyahriahID, time.Time{}, "midtrans")
	if err != nil {
		t.Fatalf("MarkPaid() err: %v", err)
	}
	if got.SyahriahPaidAt == nil || got.SyahriahPaidAt.IsZero() {
		t.Error("paid_at kosong harus diisi waktu sekarang")
	}
}
