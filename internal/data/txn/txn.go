// Package txn provides the shared transaction boundary primitive. Every
// multi-row write acquires its scope here; rollback is guaranteed on every
// error exit path.
package txn

import (
	"context"

	"gorm.io/gorm"

	"github.com/handylink/handylink-backend/internal/domain/fault"
	"github.com/handylink/handylink-backend/internal/pkg/dbctx"
)

type TxRunner interface {
	InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error
}

type gormTxRunner struct {
	db *gorm.DB
}

// NewGormTxRunner returns a transaction runner backed by GORM transactions.
func NewGormTxRunner(db *gorm.DB) TxRunner {
	return &gormTxRunner{db: db}
}

func (r *gormTxRunner) InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	if fn == nil {
		return nil
	}
	if r == nil || r.db == nil {
		return fault.New(fault.CodeInternal, "txn", "transaction runner has nil db")
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(dbctx.Context{Ctx: ctx, Tx: tx})
	})
}
