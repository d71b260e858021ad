// internal/vending/errors.go
//
// 本檔集中定義「領域錯誤（domain errors）」。
// 除持久化相關錯誤外皆屬可恢復錯誤：由 console 層轉成提示訊息並重新詢問，
// 不會越過單次購買的範圍。

package vending

import "errors"

var (
	// ErrInvalidAmount 代表投入金額非法（<= 0）。
	ErrInvalidAmount = errors.New("amount must be > 0")

	// ErrInvalidSelection 代表選擇序號不在 [1, N] 範圍內。
	ErrInvalidSelection = errors.New("invalid item selection")

	// ErrNonNumericInput 代表輸入無法解析為數字。
	ErrNonNumericInput = errors.New("input is not a number")

	// ErrInsufficientFunds 代表餘額不足以支付商品價格。
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrOutOfStock 代表所選商品已售完。
	ErrOutOfStock = errors.New("item out of stock")

	// ErrInvalidItem 代表載入的庫存資料違反商品規則（空名稱、重複名稱、負價格或負庫存）。
	ErrInvalidItem = errors.New("invalid inventory item")

	// ErrPersist 代表購買後保存庫存失敗；此時記憶體狀態已回滾。
	ErrPersist = errors.New("failed to persist inventory")

	// ErrLogAppend 代表交易已完成且已保存，但寫入交易日誌失敗。
	ErrLogAppend = errors.New("failed to append transaction log")
)
