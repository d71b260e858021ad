// Package vending 定義販賣機的核心領域模型與業務規則：
// 商品與庫存、當次投幣餘額 (Ledger)，以及購買流程 (Engine)。
// 不含任何主控台或檔案格式細節。
package vending

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"vending/internal/storage"
)

// Item represents a purchasable product.
type Item struct {
	Name  string
	Price decimal.Decimal
	Stock int
}

// Inventory 為有序的商品清單；插入順序 = 顯示順序 = 選擇序號順序（從 1 起算）。
// 價格於整個工作階段內固定，只有庫存會隨購買遞減。
type Inventory struct {
	items []Item
}

// NewInventory 驗證並建立庫存：名稱非空且唯一、價格與庫存皆不得為負。
func NewInventory(items []Item) (*Inventory, error) {
	seen := make(map[string]struct{}, len(items))
	inv := &Inventory{items: make([]Item, len(items))}
	for i, it := range items {
		// 名稱原樣保存；去除空白只用於空值與重複檢查，避免保存時改寫資料。
		name := strings.TrimSpace(it.Name)
		switch {
		case name == "":
			return nil, fmt.Errorf("%w: item %d has empty name", ErrInvalidItem, i+1)
		case it.Price.IsNegative():
			return nil, fmt.Errorf("%w: %q has negative price %s", ErrInvalidItem, name, it.Price)
		case it.Stock < 0:
			return nil, fmt.Errorf("%w: %q has negative stock %d", ErrInvalidItem, name, it.Stock)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidItem, name)
		}
		seen[name] = struct{}{}
		inv.items[i] = it
	}
	return inv, nil
}

// FromRecords 由儲存層資料建立庫存。
func FromRecords(recs []storage.PersistItem) (*Inventory, error) {
	items := make([]Item, len(recs))
	for i, r := range recs {
		items[i] = Item{Name: r.Name, Price: r.Price, Stock: r.Stock}
	}
	return NewInventory(items)
}

// Records 匯出完整庫存快照，供 Store.Save 使用。
func (inv *Inventory) Records() []storage.PersistItem {
	out := make([]storage.PersistItem, len(inv.items))
	for i, it := range inv.items {
		out[i] = storage.PersistItem{Name: it.Name, Price: it.Price, Stock: it.Stock}
	}
	return out
}

// Len 回傳商品數量。
func (inv *Inventory) Len() int { return len(inv.items) }

// Items 回傳商品清單的值拷貝，避免外部直接改寫庫存。
func (inv *Inventory) Items() []Item {
	out := make([]Item, len(inv.items))
	copy(out, inv.items)
	return out
}

// At 依 1-based 選擇序號取得商品拷貝；超出範圍回傳 ErrInvalidSelection。
func (inv *Inventory) At(selection int) (Item, error) {
	if selection < 1 || selection > len(inv.items) {
		return Item{}, fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidSelection, selection, len(inv.items))
	}
	return inv.items[selection-1], nil
}

// take 將指定商品庫存減一並回傳剩餘數量；呼叫端須先確認序號與庫存有效。
func (inv *Inventory) take(selection int) int {
	it := &inv.items[selection-1]
	it.Stock--
	return it.Stock
}

// putBack 撤銷 take。
func (inv *Inventory) putBack(selection int) {
	inv.items[selection-1].Stock++
}
