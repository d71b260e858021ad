// internal/storage/store.go
//
// Store 抽象化庫存的持久化後端；上層只依賴此介面，不關心實際是 JSON 或 SQLite。
package storage

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

const (
	DriverJSON   = "json"
	DriverSQLite = "sqlite"
)

// Store 為庫存持久化介面。
type Store interface {
	// Load 讀出完整庫存（依顯示順序）。
	Load() ([]PersistItem, error)
	// Save 以傳入的快照整份取代既有資料。
	Save(items []PersistItem) error
	// Path 回傳後端所在路徑，供錯誤訊息使用。
	Path() string
	Close() error
}

// Open 依 driver 建立對應的 Store。
func Open(driver, path string, logger *zap.Logger) (Store, error) {
	switch driver {
	case DriverJSON, "":
		return NewJSONStore(path, logger), nil
	case DriverSQLite:
		return OpenSQLStore(path, logger)
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", driver)
	}
}

// Seed 在 dst 尚無庫存時，以 src 的內容初始化 dst；dst 已有資料則不動。
// 典型用途：以既有的 inventory.json 建立 SQLite 庫存。
func Seed(dst, src Store) (bool, error) {
	if _, err := dst.Load(); err == nil {
		return false, nil
	} else if !errors.Is(err, ErrInventoryMissing) {
		return false, err
	}
	items, err := src.Load()
	if err != nil {
		return false, fmt.Errorf("seed from %s: %w", src.Path(), err)
	}
	if err := dst.Save(items); err != nil {
		return false, err
	}
	return true, nil
}
