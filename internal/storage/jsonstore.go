// internal/storage/jsonstore.go
//
// 提供庫存 JSON 檔的讀取與寫入。
// 寫入採「原子寫入」策略：先寫入 .tmp 檔，再以 rename() 取代原檔，
// 中途失敗時原檔不會被截斷；每次保存皆為整份覆寫，不做追加。
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"
)

// LoadInventory 讀取指定路徑的 JSON 庫存檔。
// 檔案不存在時回傳 ErrInventoryMissing；格式錯誤則回傳解碼錯誤。
func LoadInventory(path string) ([]PersistItem, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrInventoryMissing)
		}
		return nil, err
	}
	defer f.Close()

	var items []PersistItem
	if err := json.NewDecoder(f).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return items, nil
}

// SaveInventory 將完整庫存寫入 path。
// 流程：
//  1. 寫入 path+".tmp" 暫存檔。
//  2. 寫入完成後使用 os.Rename() 取代正式檔案。
func SaveInventory(path string, items []PersistItem) error {
	if items == nil {
		items = []PersistItem{}
	}
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	// 使用縮排格式輸出，方便人工檢視與補貨時手動編輯
	enc := json.NewEncoder(f)
	enc.SetIndent("", "    ")
	if err := enc.Encode(items); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	// 原子替換
	return os.Rename(tmp, path)
}

// JSONStore 以單一 JSON 檔作為庫存資料庫。
type JSONStore struct {
	path   string
	logger *zap.Logger
}

// NewJSONStore 建立 JSON 檔案儲存；logger 可為 nil。
func NewJSONStore(path string, logger *zap.Logger) *JSONStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JSONStore{path: path, logger: logger}
}

// Path 回傳庫存檔路徑。
func (s *JSONStore) Path() string { return s.path }

func (s *JSONStore) Load() ([]PersistItem, error) {
	items, err := LoadInventory(s.path)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("inventory loaded", zap.String("path", s.path), zap.Int("items", len(items)))
	return items, nil
}

func (s *JSONStore) Save(items []PersistItem) error {
	if err := SaveInventory(s.path, items); err != nil {
		return fmt.Errorf("save %s: %w", s.path, err)
	}
	s.logger.Debug("inventory saved", zap.String("path", s.path), zap.Int("items", len(items)))
	return nil
}

// Close 無需釋放任何資源。
func (s *JSONStore) Close() error { return nil }
