// internal/storage/model.go
//
// 定義「資料持久化層 (storage layer)」的結構模型。
// 庫存檔為 JSON 陣列，每筆紀錄包含 name、price、stock 三個欄位，
// 與舊版 inventory.json 格式相容，可直接沿用既有檔案。
package storage

import (
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"
)

// ErrInventoryMissing 代表找不到持久化的庫存資料。
// 屬於啟動期致命錯誤：上層不得以空庫存或假資料繼續執行。
var ErrInventoryMissing = errors.New("inventory storage not found")

// PersistItem 為商品在儲存層的序列化格式。
// 僅保存資料狀態，不含任何商業規則。
type PersistItem struct {
	Name  string          // 商品名稱
	Price decimal.Decimal // 單價
	Stock int             // 剩餘庫存
}

// wireItem 為 JSON 線上格式；price 以數字（非字串）輸出。
type wireItem struct {
	Name  string      `json:"name"`
	Price json.Number `json:"price"`
	Stock int         `json:"stock"`
}

// MarshalJSON 以 JSON 數字輸出價格，避免 decimal 預設的字串格式。
func (p PersistItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireItem{
		Name:  p.Name,
		Price: json.Number(p.Price.String()),
		Stock: p.Stock,
	})
}

// UnmarshalJSON 以十進位精確解析價格，不經過 float64。
func (p *PersistItem) UnmarshalJSON(data []byte) error {
	var w wireItem
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	price := decimal.Zero
	if w.Price != "" {
		d, err := decimal.NewFromString(string(w.Price))
		if err != nil {
			return err
		}
		price = d
	}
	*p = PersistItem{Name: w.Name, Price: price, Stock: w.Stock}
	return nil
}
