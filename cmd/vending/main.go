// cmd/vending/main.go

// 互動式販賣機模擬程式。
// 此檔案負責初始化模組（config, storage, vending, txlog, console），
// 啟動時載入庫存（不存在即終止），並在標準輸入輸出上執行互動流程。

package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"go.uber.org/zap"

	"vending/internal/config"
	"vending/internal/console"
	"vending/internal/storage"
	"vending/internal/txlog"
	"vending/internal/vending"
)

func main() {
	cfgPath := ""
	if len(os.Args) > 1 {
		cfgPath = os.Args[1]
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// ---- Logger ----
	var logger *zap.Logger
	var logErr error
	if cfg.Log.Debug {
		logger, logErr = zap.NewDevelopment()
	} else {
		// 營運日誌輸出至 stderr；預設只留 warn 以上，避免干擾主控台畫面
		zc := zap.NewProductionConfig()
		zc.Level, logErr = zap.ParseAtomicLevel(cfg.Log.Level)
		if logErr == nil {
			logger, logErr = zc.Build()
		}
	}
	if logErr != nil {
		log.Fatalf("logger: %v", logErr)
	}

	os.Exit(run(cfg, logger, os.Stdin, os.Stdout, os.Stderr))
}

// run 回傳程序結束碼；拆出此函式讓 defer 能在 os.Exit 前執行。
func run(cfg *config.Config, logger *zap.Logger, stdin io.Reader, stdout, stderr io.Writer) int {
	defer logger.Sync()

	// ---- Inventory ----
	store, err := storage.Open(cfg.Inventory.Driver, cfg.Inventory.Path, logger)
	if err != nil {
		logger.Error("open inventory storage", zap.Error(err))
		return 1
	}
	defer store.Close()

	if cfg.Inventory.SeedFrom != "" {
		seeded, err := storage.Seed(store, storage.NewJSONStore(cfg.Inventory.SeedFrom, logger))
		if err != nil && !errors.Is(err, storage.ErrInventoryMissing) {
			logger.Error("seed inventory", zap.String("from", cfg.Inventory.SeedFrom), zap.Error(err))
			return 1
		}
		if seeded {
			logger.Info("inventory seeded", zap.String("from", cfg.Inventory.SeedFrom), zap.String("to", store.Path()))
		}
	}

	recs, err := store.Load()
	if errors.Is(err, storage.ErrInventoryMissing) {
		fmt.Fprintf(stderr, "Error: %s not found! Please make sure the inventory file exists.\n", store.Path())
		return 1
	}
	if err != nil {
		logger.Error("load inventory", zap.Error(err))
		return 1
	}
	inv, err := vending.FromRecords(recs)
	if err != nil {
		logger.Error("invalid inventory", zap.String("path", store.Path()), zap.Error(err))
		return 1
	}
	logger.Info("inventory loaded",
		zap.String("driver", cfg.Inventory.Driver),
		zap.String("path", store.Path()),
		zap.Int("items", inv.Len()))

	// ---- Transaction log ----
	tl, err := txlog.Open(cfg.TxLog.Path, cfg.TxLog.Header, cfg.Machine.Currency)
	if err != nil {
		logger.Error("open transaction log", zap.Error(err))
		return 1
	}

	// ---- Session ----
	engine := vending.NewEngine(store, tl, vending.WithLogger(logger))
	sess := console.NewSession(engine, inv, vending.NewLedger(), stdin, stdout,
		console.WithCurrency(cfg.Machine.Currency),
		console.WithLogger(logger))
	if err := sess.Run(); err != nil {
		logger.Error("session ended with error", zap.Error(err))
		return 1
	}
	return 0
}
