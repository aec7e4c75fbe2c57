package service

import (
	"context"
	"database/sql"

	"github.com/fairbuddy/go-fairbuddy/checklist"
	"github.com/fairbuddy/go-fairbuddy/company"
	"github.com/fairbuddy/go-fairbuddy/fair"
	"github.com/fairbuddy/go-fairbuddy/image"
	"github.com/fairbuddy/go-fairbuddy/pkg/types"
	"github.com/uptrace/bun"
)

// ReconcileReport counts the orphaned rows removed by a Reconcile pass.
type ReconcileReport struct {
	ChecklistItems int64 `json:"checklist_items"`
	Companies      int64 `json:"companies"`
	Images         int64 `json:"images"`
}

// Total returns the number of rows removed across all collections.
func (r ReconcileReport) Total() int64 {
	return r.ChecklistItems + r.Companies + r.Images
}

// Reconcile removes rows whose parent no longer exists: checklist items and
// companies pointing at a missing fair, and images pointing at a missing
// company. Cascade deletes make orphans unreachable under normal operation,
// but a crash between writes from older data files can leave them behind.
// The sweep runs in a single transaction ordered parent-first so images
// belonging to an orphaned company are collected in the same pass.
func (s *Service) Reconcile(ctx context.Context) (ReconcileReport, error) {
	if !s.ready.Load() {
		return ReconcileReport{}, types.ErrNotInitialized
	}

	var report ReconcileReport
	err := s.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		fairIDs := tx.NewSelect().Model((*fair.Record)(nil)).Column("id")

		res, err := tx.NewDelete().
			Model((*checklist.Record)(nil)).
			Where("career_fair_id NOT IN (?)", fairIDs).
			Exec(ctx)
		if err != nil {
			return err
		}
		report.ChecklistItems, _ = res.RowsAffected()

		res, err = tx.NewDelete().
			Model((*company.Record)(nil)).
			Where("career_fair_id NOT IN (?)", fairIDs).
			Exec(ctx)
		if err != nil {
			return err
		}
		report.Companies, _ = res.RowsAffected()

		companyIDs := tx.NewSelect().Model((*company.Record)(nil)).Column("id")

		res, err = tx.NewDelete().
			Model((*image.Record)(nil)).
			Where("company_id NOT IN (?)", companyIDs).
			Exec(ctx)
		if err != nil {
			return err
		}
		report.Images, _ = res.RowsAffected()

		return nil
	})
	if err != nil {
		return ReconcileReport{}, err
	}

	if report.Total() > 0 && s.cfg.Logger != nil {
		s.cfg.Logger.Info("reconcile removed orphaned rows",
			"checklist_items", report.ChecklistItems,
			"companies", report.Companies,
			"images", report.Images,
		)
	}

	return report, nil
}
