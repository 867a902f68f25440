package service

import "errors"

var (
	// ErrInvalidTimestamp: satu record tidak bisa di-bucket ke periode.
	// Di jalur agregasi record seperti ini di-skip + dihitung, bukan abort.
	ErrInvalidTimestamp = errors.New("ledger: timestamp tidak valid")

	// ErrSourceUnavailable: satu sumber transaksi gagal dibaca total.
	// Agregasi dibatalkan — total dari dua sumber saja akan menyesatkan.
	ErrSourceUnavailable = errors.New("ledger: sumber transaksi tidak bisa dibaca")

	// ErrSnapshotNotFound: baris rekap (period, category) belum ada.
	ErrSnapshotNotFound = errors.New("ledger: rekap tidak ditemukan")

	// ErrSnapshotMismatch: rekap periode tertutup berbeda dengan hitung ulang.
	ErrSnapshotMismatch = errors.New("ledger: rekap tidak konsisten dengan agregasi")
)
