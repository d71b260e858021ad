package console

import (
	"strconv"

	"github.com/shopspring/decimal"

	"vending/internal/vending"
)

// 投幣金額的合理範圍：最多 8 位小數、整數部分最多 12 位。
// 超出範圍的指數（如 1e2000000000）會讓後續運算展開成巨大整數，必須在解析時擋下。
const (
	minAmountExponent  = -8
	maxAmountIntDigits = 12
)

// parseAmount 解析投幣金額；無法解析時回傳 ErrNonNumericInput，超出範圍回傳 ErrInvalidAmount。
// 正負檢查交給 Ledger。
func parseAmount(line string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(line)
	if err != nil {
		return decimal.Zero, vending.ErrNonNumericInput
	}
	exp := int(d.Exponent())
	if exp < minAmountExponent || exp > maxAmountIntDigits {
		return decimal.Zero, vending.ErrInvalidAmount
	}
	if d.NumDigits()+exp > maxAmountIntDigits {
		return decimal.Zero, vending.ErrInvalidAmount
	}
	return d, nil
}

// parseSelection 解析選擇序號；範圍檢查交給 Engine。
func parseSelection(line string) (int, error) {
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, vending.ErrNonNumericInput
	}
	return n, nil
}
