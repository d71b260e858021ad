// internal/storage/sqlstore.go
//
// SQLite 版本的庫存儲存，以 GORM 操作。
// 與 JSONStore 行為一致：Load 依顯示順序讀出全部商品，Save 於單一交易內整份替換。
// 另提供 purchases 資料表，作為交易紀錄的查詢副本。
package storage

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// itemRow 對應 inventory_items 資料表；position 即選單序號（從 1 起算）。
type itemRow struct {
	Position int             `gorm:"primaryKey;autoIncrement:false"`
	Name     string          `gorm:"uniqueIndex;not null"`
	Price    decimal.Decimal `gorm:"type:text;not null"`
	Stock    int             `gorm:"not null"`
}

func (itemRow) TableName() string { return "inventory_items" }

// metaRow 標記庫存曾被保存過，用來區分「尚未建立」與「保存了空庫存」。
type metaRow struct {
	ID      int       `gorm:"primaryKey;autoIncrement:false"`
	SavedAt time.Time `gorm:"not null"`
}

func (metaRow) TableName() string { return "inventory_meta" }

const metaID = 1

// PersistPurchase 為一筆成功購買在儲存層的格式。
type PersistPurchase struct {
	ID             string          `gorm:"primaryKey"`
	CreatedAt      time.Time       `gorm:"not null"`
	ItemName       string          `gorm:"index;not null"`
	Price          decimal.Decimal `gorm:"type:text;not null"`
	BalanceBefore  decimal.Decimal `gorm:"type:text;not null"`
	BalanceAfter   decimal.Decimal `gorm:"type:text;not null"`
	RemainingStock int             `gorm:"not null"`
}

func (PersistPurchase) TableName() string { return "purchases" }

// SQLStore 以 SQLite 檔案保存庫存。
type SQLStore struct {
	db     *gorm.DB
	path   string
	logger *zap.Logger
}

// OpenSQLStore 開啟（必要時建立）SQLite 檔案並建立資料表。
func OpenSQLStore(path string, log *zap.Logger) (*SQLStore, error) {
	if log == nil {
		log = zap.NewNop()
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	if err := db.AutoMigrate(&itemRow{}, &metaRow{}, &PersistPurchase{}); err != nil {
		return nil, fmt.Errorf("migrate sqlite %s: %w", path, err)
	}
	return &SQLStore{db: db, path: path, logger: log}, nil
}

// Path 回傳資料庫檔案路徑。
func (s *SQLStore) Path() string { return s.path }

// Load 依 position 排序讀出全部商品；從未保存過的資料庫視同庫存不存在。
func (s *SQLStore) Load() ([]PersistItem, error) {
	var rows []itemRow
	if err := s.db.Order("position").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load %s: %w", s.path, err)
	}
	if len(rows) == 0 {
		var saved int64
		if err := s.db.Model(&metaRow{}).Where("id = ?", metaID).Count(&saved).Error; err != nil {
			return nil, fmt.Errorf("load %s: %w", s.path, err)
		}
		if saved == 0 {
			return nil, fmt.Errorf("%s: %w", s.path, ErrInventoryMissing)
		}
	}
	items := make([]PersistItem, len(rows))
	for i, r := range rows {
		items[i] = PersistItem{Name: r.Name, Price: r.Price, Stock: r.Stock}
	}
	s.logger.Debug("inventory loaded", zap.String("path", s.path), zap.Int("items", len(items)))
	return items, nil
}

// Save 於同一交易內刪除舊資料並寫入完整快照（可為空），同時更新 inventory_meta；任一步失敗即整筆回滾。
func (s *SQLStore) Save(items []PersistItem) error {
	rows := make([]itemRow, len(items))
	for i, it := range items {
		rows[i] = itemRow{Position: i + 1, Name: it.Name, Price: it.Price, Stock: it.Stock}
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&itemRow{}).Error; err != nil {
			return err
		}
		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		return tx.Save(&metaRow{ID: metaID, SavedAt: time.Now()}).Error
	})
	if err != nil {
		return fmt.Errorf("save %s: %w", s.path, err)
	}
	s.logger.Debug("inventory saved", zap.String("path", s.path), zap.Int("items", len(items)))
	return nil
}

// RecordPurchase 寫入一筆購買紀錄。
func (s *SQLStore) RecordPurchase(p PersistPurchase) error {
	if err := s.db.Create(&p).Error; err != nil {
		return fmt.Errorf("record purchase %s: %w", p.ID, err)
	}
	return nil
}

// Purchases 依時間順序列出所有購買紀錄。
func (s *SQLStore) Purchases() ([]PersistPurchase, error) {
	var out []PersistPurchase
	if err := s.db.Order("created_at, id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Close 關閉底層連線。
func (s *SQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
