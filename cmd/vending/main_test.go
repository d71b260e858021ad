// cmd/vending/main_test.go
//
// 驗證啟動流程的結束碼：庫存缺失、未知 driver、不合法商品皆在開啟交易日誌前終止。
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vending/internal/config"
	"vending/internal/storage"
)

func testConfig(dir string) *config.Config {
	return &config.Config{
		Inventory: config.InventoryConfig{Driver: storage.DriverJSON, Path: filepath.Join(dir, "inventory.json")},
		TxLog:     config.TxLogConfig{Path: filepath.Join(dir, "vending_machine_log.txt"), Header: "Vending Machine Transaction Log"},
		Machine:   config.MachineConfig{Currency: "$"},
		Log:       config.LogConfig{Level: "warn"},
	}
}

func TestRunMissingInventory(t *testing.T) {
	cfg := testConfig(t.TempDir())
	var stdout, stderr bytes.Buffer

	code := run(cfg, zap.NewNop(), strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Equal(t, "Error: "+cfg.Inventory.Path+" not found! Please make sure the inventory file exists.\n", stderr.String())
	assert.Empty(t, stdout.String())
	assert.NoFileExists(t, cfg.TxLog.Path)
}

func TestRunStartupFailures(t *testing.T) {
	cases := []struct {
		name  string
		setup func(t *testing.T, cfg *config.Config)
	}{
		{"unknown driver", func(t *testing.T, cfg *config.Config) {
			cfg.Inventory.Driver = "postgres"
		}},
		{"malformed inventory", func(t *testing.T, cfg *config.Config) {
			require.NoError(t, os.WriteFile(cfg.Inventory.Path, []byte("{not json"), 0o644))
		}},
		{"negative stock", func(t *testing.T, cfg *config.Config) {
			require.NoError(t, storage.SaveInventory(cfg.Inventory.Path, []storage.PersistItem{
				{Name: "Soda", Price: decimal.RequireFromString("1.50"), Stock: -1},
			}))
		}},
		{"duplicate name", func(t *testing.T, cfg *config.Config) {
			require.NoError(t, storage.SaveInventory(cfg.Inventory.Path, []storage.PersistItem{
				{Name: "Soda", Price: decimal.RequireFromString("1.50"), Stock: 1},
				{Name: "Soda", Price: decimal.RequireFromString("2.00"), Stock: 1},
			}))
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig(t.TempDir())
			tc.setup(t, cfg)
			var stdout, stderr bytes.Buffer

			assert.Equal(t, 1, run(cfg, zap.NewNop(), strings.NewReader("2\n1\nn\n"), &stdout, &stderr))
			assert.Empty(t, stdout.String())
			assert.NoFileExists(t, cfg.TxLog.Path)
		})
	}
}

func TestRunPurchaseAndExit(t *testing.T) {
	cfg := testConfig(t.TempDir())
	require.NoError(t, storage.SaveInventory(cfg.Inventory.Path, []storage.PersistItem{
		{Name: "Soda", Price: decimal.RequireFromString("1.50"), Stock: 2},
	}))
	var stdout, stderr bytes.Buffer

	code := run(cfg, zap.NewNop(), strings.NewReader("2\n1\nn\n"), &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "Dispensing Soda... Enjoy! Remaining balance: $0.50")

	items, err := storage.LoadInventory(cfg.Inventory.Path)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Stock)

	logData, err := os.ReadFile(cfg.TxLog.Path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(logData)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Vending Machine Transaction Log", lines[0])
	assert.Contains(t, lines[1], "Purchased Soda for $1.50. Balance before: $2.00, Balance after: $0.50. Remaining stock: 1")
}

// TestRunSeedsSQLite 以 JSON 檔初始化空的 SQLite 庫存後完成一筆購買。
func TestRunSeedsSQLite(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	cfg.Inventory.SeedFrom = filepath.Join(dir, "seed.json")
	cfg.Inventory.Driver = storage.DriverSQLite
	cfg.Inventory.Path = filepath.Join(dir, "inventory.db")
	require.NoError(t, storage.SaveInventory(cfg.Inventory.SeedFrom, []storage.PersistItem{
		{Name: "Water", Price: decimal.RequireFromString("1.00"), Stock: 1},
	}))
	var stdout, stderr bytes.Buffer

	require.Equal(t, 0, run(cfg, zap.NewNop(), strings.NewReader("1\n1\nn\n"), &stdout, &stderr), stderr.String())

	st, err := storage.OpenSQLStore(cfg.Inventory.Path, nil)
	require.NoError(t, err)
	defer st.Close()
	items, err := st.Load()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 0, items[0].Stock)
	purchases, err := st.Purchases()
	require.NoError(t, err)
	assert.Len(t, purchases, 1)
}
