// internal/vending/ledger.go

package vending

import "github.com/shopspring/decimal"

// Ledger 保存當次工作階段的投幣餘額；只存在記憶體中，每次執行皆由 0 開始。
// 金額以 decimal 儲存，避免浮點誤差（例如 2.00 - 1.50 必須精確為 0.50）。
type Ledger struct {
	balance decimal.Decimal
}

// NewLedger 建立餘額為 0 的帳本。
func NewLedger() *Ledger {
	return &Ledger{balance: decimal.Zero}
}

// Deposit 投幣：金額需 > 0，否則回傳 ErrInvalidAmount 且餘額不變。無上限。
func (l *Ledger) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	l.balance = l.balance.Add(amount)
	return nil
}

// Balance 回傳目前餘額。
func (l *Ledger) Balance() decimal.Decimal { return l.balance }

// Debit 扣款：金額不得超過餘額，失敗時餘額不變。
func (l *Ledger) Debit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}
	if l.balance.LessThan(amount) {
		return ErrInsufficientFunds
	}
	l.balance = l.balance.Sub(amount)
	return nil
}

// refund 撤銷一次 Debit，僅供購買回滾使用。
func (l *Ledger) refund(amount decimal.Decimal) {
	l.balance = l.balance.Add(amount)
}
