package dto

import (
	ledger "pesantrenku_backend/internals/features/finance/ledger/service"
)

/* ===================== RESPONSES ===================== */

// WaliDashboardResponse: angka live untuk dashboard wali.
// Wali butuh angka pasti (cek tagihan outstanding), jadi selalu live.
type WaliDashboardResponse struct {
	Period    string        `json:"period"`
	Freshness string        `json:"freshness"` // selalu "live"
	Summary   ledger.Result `json:"summary"`
}

// AdminDashboardResponse: live + rekap + freshness untuk dashboard admin.
type AdminDashboardResponse struct {
	Period    string           `json:"period"`
	Freshness ledger.Freshness `json:"freshness"`
	Live      ledger.Result    `json:"live"`
	Rekap     *ledger.Snapshot `json:"rekap,omitempty"`
	Mismatch  bool             `json:"mismatch"`
	Warning   string           `json:"warning,omitempty"`
}

func NewWaliDashboardResponse(period ledger.Period, res ledger.Result) WaliDashboardResponse {
	return WaliDashboardResponse{
		Period:    string(period),
		Freshness: string(ledger.FreshnessLive),
		Summary:   res,
	}
}

func NewAdminDashboardResponse(rep ledger.ReconcileReport) AdminDashboardResponse {
	out := AdminDashboardResponse{
		Period:    string(rep.Period),
		Freshness: rep.Freshness,
		Live:      rep.Live,
		Rekap:     rep.Snapshot,
		Mismatch:  rep.Mismatch,
	}
	if rep.Mismatch {
		out.Warning = "Rekap periode tertutup berbeda dengan hitung ulang. Periksa data transaksi."
	}
	return out
}
