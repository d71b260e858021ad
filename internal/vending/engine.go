// internal/vending/engine.go
//
// Engine 負責單次購買：驗證選擇 → 檢查庫存與餘額 → 扣款 → 減庫存 → 保存庫存 → 寫交易日誌。
// Engine 本身不做任何重試或輸入迴圈，只回報結果；重新詢問由 console 層負責。

package vending

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"vending/internal/storage"
)

// QuitSelection 為結束購買的選擇序號；由 console 層處理，不會傳入 Engine。
const QuitSelection = 0

// Saver 整份覆寫持久化的庫存。
type Saver interface {
	Save(items []storage.PersistItem) error
}

// Appender 追加一筆交易紀錄。
type Appender interface {
	Append(rec Record) error
}

// PurchaseRecorder 為可選能力：若 Saver 同時實作此介面，成功的購買會額外寫入一份。
type PurchaseRecorder interface {
	RecordPurchase(p storage.PersistPurchase) error
}

// Engine 為購買流程的協調者。
// - store：每次成功購買後整份保存庫存。
// - txlog：交易日誌；可為 nil。
type Engine struct {
	store  Saver
	txlog  Appender
	now    func() time.Time
	logger *zap.Logger
}

// Option 調整 Engine 的可選設定。
type Option func(*Engine)

// WithClock 指定時間來源（測試用）。
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithLogger 指定營運日誌。
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// NewEngine 建立購買引擎。store 與 txlog 皆可為 nil（僅記憶體模式）。
func NewEngine(store Saver, txlog Appender, opts ...Option) *Engine {
	e := &Engine{store: store, txlog: txlog, now: time.Now, logger: zap.NewNop()}
	for _, o := range opts {
		o(e)
	}
	return e
}

// AttemptPurchase 嘗試購買第 selection 個商品（1-based）。
//
// 驗證失敗（ErrInvalidSelection、ErrOutOfStock、ErrInsufficientFunds）時不改變任何狀態。
// 驗證通過後依序：記錄扣款前餘額 → 扣款 → 庫存減一 → 記錄扣款後餘額 → 保存庫存 → 寫交易日誌。
//
// 保存失敗時回滾記憶體中的扣款與庫存，回傳包裝 ErrPersist 的錯誤。
// 寫日誌失敗時購買仍成立（庫存已保存），回傳紀錄以及包裝 ErrLogAppend 的錯誤。
func (e *Engine) AttemptPurchase(inv *Inventory, ledger *Ledger, selection int) (Record, error) {
	item, err := inv.At(selection)
	if err != nil {
		e.logger.Debug("purchase rejected", zap.Int("selection", selection), zap.Error(err))
		return Record{}, err
	}
	if item.Stock <= 0 {
		e.logger.Debug("purchase rejected", zap.String("item", item.Name), zap.Error(ErrOutOfStock))
		return Record{}, fmt.Errorf("%w: %s", ErrOutOfStock, item.Name)
	}

	before := ledger.Balance()
	if err := ledger.Debit(item.Price); err != nil {
		e.logger.Debug("purchase rejected",
			zap.String("item", item.Name),
			zap.Stringer("price", item.Price),
			zap.Stringer("balance", before),
			zap.Error(err))
		return Record{}, fmt.Errorf("%w: %s costs %s, balance %s", err, item.Name, item.Price.StringFixed(2), before.StringFixed(2))
	}
	remaining := inv.take(selection)

	rec := Record{
		ID:             uuid.New(),
		Time:           e.now(),
		ItemName:       item.Name,
		Price:          item.Price,
		BalanceBefore:  before,
		BalanceAfter:   ledger.Balance(),
		RemainingStock: remaining,
	}

	if e.store != nil {
		if err := e.store.Save(inv.Records()); err != nil {
			inv.putBack(selection)
			ledger.refund(item.Price)
			e.logger.Error("inventory save failed, purchase rolled back",
				zap.Stringer("txn_id", rec.ID),
				zap.String("item", item.Name),
				zap.Error(err))
			return Record{}, fmt.Errorf("%w: %w", ErrPersist, err)
		}
	}

	var logErr error
	if e.txlog != nil {
		if err := e.txlog.Append(rec); err != nil {
			e.logger.Error("transaction log append failed",
				zap.Stringer("txn_id", rec.ID),
				zap.Error(err))
			logErr = fmt.Errorf("%w: %w", ErrLogAppend, err)
		}
	}

	if rr, ok := e.store.(PurchaseRecorder); ok {
		if err := rr.RecordPurchase(rec.persist()); err != nil {
			e.logger.Warn("purchase mirror failed", zap.Stringer("txn_id", rec.ID), zap.Error(err))
		}
	}

	e.logger.Info("purchase completed",
		zap.Stringer("txn_id", rec.ID),
		zap.String("item", rec.ItemName),
		zap.Stringer("price", rec.Price),
		zap.Stringer("balance_before", rec.BalanceBefore),
		zap.Stringer("balance_after", rec.BalanceAfter),
		zap.Int("stock", rec.RemainingStock))
	return rec, logErr
}
