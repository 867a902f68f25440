package service

import (
	"context"

	"github.com/google/uuid"
)

/* ==============================================
   FAKE SOURCES — in-memory, dipakai semua test
   di package ini
============================================== */

type fakeDues struct {
	rows []DuesCharge
	err  error
}

func (f *fakeDues) ListCharges(ctx context.Context, santriIDs []uuid.UUID) ([]DuesCharge, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(santriIDs) == 0 {
		return f.rows, nil
	}
	allowed := make(map[uuid.UUID]struct{}, len(santriIDs))
	for _, id := range santriIDs {
		allowed[id] = struct{}{}
	}
	var out []DuesCharge
	for _, r := range f.rows {
		if _, ok := allowed[r.SantriID]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeDonations struct {
	rows []Donation
	err  error
}

func (f *fakeDonations) ListSettled(ctx context.Context) ([]Donation, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

type fakeExpenditures struct {
	rows []Expenditure
	err  error
}

func (f *fakeExpenditures) ListAll(ctx context.Context) ([]Expenditure, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

type fakeSnapshots struct {
	rows map[string]Snapshot // key: period|category
	err  error
}

func snapKey(p Period, c Category) string { return string(p) + "|" + string(c) }

func (f *fakeSnapshots) GetSnapshot(ctx context.Context, period Period, category Category) (Snapshot, error) {
	if f.err != nil {
		return Snapshot{}, f.err
	}
	s, ok := f.rows[snapKey(period, category)]
	if !ok {
		return Snapshot{}, ErrSnapshotNotFound
	}
	return s, nil
}

func newTestAggregator(dues []DuesCharge, donations []Donation, expenditures []Expenditure) *Aggregator {
	return &Aggregator{
		Dues:         &fakeDues{rows: dues},
		Donations:    &fakeDonations{rows: donations},
		Expenditures: &fakeExpenditures{rows: expenditures},
	}
}
