package vending

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"vending/internal/storage"
)

// Record 為一筆成功購買的不可變紀錄。
type Record struct {
	ID             uuid.UUID
	Time           time.Time
	ItemName       string
	Price          decimal.Decimal
	BalanceBefore  decimal.Decimal
	BalanceAfter   decimal.Decimal
	RemainingStock int
}

// persist 轉為儲存層格式。
func (r Record) persist() storage.PersistPurchase {
	return storage.PersistPurchase{
		ID:             r.ID.String(),
		CreatedAt:      r.Time,
		ItemName:       r.ItemName,
		Price:          r.Price,
		BalanceBefore:  r.BalanceBefore,
		BalanceAfter:   r.BalanceAfter,
		RemainingStock: r.RemainingStock,
	}
}
