// internal/console/output.go
//
// 本檔負責統一主控台輸出格式：金額一律兩位小數並加上貨幣符號，
// 並集中管理錯誤到提示訊息的對應，讓各流程不必各自拼字串。

package console

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"vending/internal/vending"
)

const (
	msgWelcome        = "Welcome to the Vending Machine!"
	msgGoodbye        = "Thank you for using the vending machine!"
	msgNotANumber     = "Invalid input. Please enter a number."
	msgInvalidAmount  = "Please insert a valid amount of money."
	msgInvalidItem    = "Invalid item number. Please choose a valid item number."
	msgPersistFailed  = "Purchase aborted: the inventory could not be saved. Your balance was not charged."
	msgLogFailed      = "Warning: this purchase could not be written to the transaction log."
	promptContinue    = "Would you like to purchase another item? (y/n): "
	promptSelection   = "\nEnter the number of the item you'd like to purchase or '0' to quit: "
	promptDepositBase = "Insert money (enter the amount in dollars): "
)

// money 格式化金額，例如 $1.50。
func (s *Session) money(d decimal.Decimal) string {
	return s.currency + d.StringFixed(2)
}

// println 輸出一行；寫入失敗於主控台情境下無從回報，直接忽略。
func (s *Session) println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Session) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

// displayItems 列出商品：序號、名稱、價格與目前庫存。
func (s *Session) displayItems() {
	s.println("Items available:")
	for i, it := range s.inv.Items() {
		s.printf("%d. %s: %s (Stock: %d)\n", i+1, it.Name, s.money(it.Price), it.Stock)
	}
}

// messageFor 將購買失敗轉為提示訊息；ErrInsufficientFunds 由呼叫端另行處理。
func (s *Session) messageFor(err error, item vending.Item) string {
	switch {
	case errors.Is(err, vending.ErrInvalidSelection):
		return msgInvalidItem
	case errors.Is(err, vending.ErrOutOfStock):
		return fmt.Sprintf("Sorry, %s is out of stock.", item.Name)
	case errors.Is(err, vending.ErrInsufficientFunds):
		return fmt.Sprintf("Insufficient funds. %s costs %s. Please insert more money.", item.Name, s.money(item.Price))
	case errors.Is(err, vending.ErrPersist):
		return msgPersistFailed
	default:
		return "Error: " + err.Error()
	}
}
