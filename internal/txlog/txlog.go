// Package txlog 實作只追加的交易日誌檔。
// 檔案第一行為固定標題（僅在檔案不存在時寫入），其後每行為一筆購買紀錄。
package txlog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"vending/internal/vending"
)

// DefaultHeader 為新日誌檔的第一行。
const DefaultHeader = "Vending Machine Transaction Log"

// TimeLayout 為紀錄的時間格式（YYYY-MM-DD HH:MM:SS）。
const TimeLayout = "2006-01-02 15:04:05"

// FileLog 為以檔案為後端的交易日誌；每次 Append 開檔、寫入一行後關檔。
type FileLog struct {
	path     string
	currency string
}

// Open 準備日誌檔：檔案不存在時建立並寫入標題，已存在則不動。
func Open(path, header, currency string) (*FileLog, error) {
	if header == "" {
		header = DefaultHeader
	}
	if currency == "" {
		currency = "$"
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	switch {
	case err == nil:
		_, werr := fmt.Fprintln(f, header)
		cerr := f.Close()
		if werr != nil {
			return nil, werr
		}
		if cerr != nil {
			return nil, cerr
		}
	case errors.Is(err, fs.ErrExist):
	default:
		return nil, fmt.Errorf("open transaction log %s: %w", path, err)
	}
	return &FileLog{path: path, currency: currency}, nil
}

// Path 回傳日誌檔路徑。
func (l *FileLog) Path() string { return l.path }

// Append 追加一筆紀錄。
func (l *FileLog) Append(rec vending.Record) error {
	f, err := os.OpenFile(l.path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(f, Format(rec, l.currency)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Format 將紀錄轉成單行文字，金額固定兩位小數。
func Format(rec vending.Record, currency string) string {
	return fmt.Sprintf("%s - Purchased %s for %s%s. Balance before: %s%s, Balance after: %s%s. Remaining stock: %d",
		rec.Time.Format(TimeLayout),
		rec.ItemName,
		currency, rec.Price.StringFixed(2),
		currency, rec.BalanceBefore.StringFixed(2),
		currency, rec.BalanceAfter.StringFixed(2),
		rec.RemainingStock)
}
