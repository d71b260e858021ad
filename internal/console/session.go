// internal/console/session.go
//
// Package console 為互動層：讀取操作員輸入、重新詢問無效輸入，並呼叫 vending 層執行購買。
// 核心引擎從不迴圈；所有「重試」都發生在這裡。
package console

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"go.uber.org/zap"

	"vending/internal/vending"
)

// Session 為一次互動工作階段。
// - engine / inv / ledger：由 main 注入的狀態物件，不使用全域變數。
// - in / out：輸入輸出來源，測試時以字串與 buffer 取代。
type Session struct {
	engine   *vending.Engine
	inv      *vending.Inventory
	ledger   *vending.Ledger
	in       *bufio.Reader
	out      io.Writer
	currency string
	logger   *zap.Logger
}

// Option 調整 Session 的可選設定。
type Option func(*Session)

// WithCurrency 指定貨幣符號（預設 "$"）。
func WithCurrency(symbol string) Option {
	return func(s *Session) {
		if symbol != "" {
			s.currency = symbol
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// NewSession 建立互動工作階段。
func NewSession(engine *vending.Engine, inv *vending.Inventory, ledger *vending.Ledger, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		engine:   engine,
		inv:      inv,
		ledger:   ledger,
		in:       bufio.NewReader(in),
		out:      out,
		currency: "$",
		logger:   zap.NewNop(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Run 執行完整流程：歡迎 → 投幣 → 購買迴圈。
// 操作員選擇結束、拒絕繼續或輸入結束（EOF）皆為正常結束，回傳 nil。
func (s *Session) Run() error {
	s.println(msgWelcome)
	err := s.insertMoney()
	if err == nil {
		err = s.purchaseLoop()
	}
	if errors.Is(err, io.EOF) {
		s.logger.Debug("input exhausted, ending session")
		return nil
	}
	return err
}

// prompt 輸出提示並讀取一行；輸入結束時回傳 io.EOF。
// 行長不設上限：過長的輸入一樣交給解析步驟判定為無效並重新詢問。
func (s *Session) prompt(text string) (string, error) {
	s.printf("%s", text)
	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if line == "" {
			s.println()
			return "", io.EOF
		}
	}
	return strings.TrimSpace(line), nil
}

// insertMoney 反覆詢問直到取得一筆正數金額並存入。
func (s *Session) insertMoney() error {
	for {
		line, err := s.prompt(promptDepositBase + s.currency)
		if err != nil {
			return err
		}
		amount, err := parseAmount(line)
		if errors.Is(err, vending.ErrInvalidAmount) {
			s.println(msgInvalidAmount)
			continue
		}
		if err != nil {
			s.println(msgNotANumber)
			continue
		}
		if err := s.ledger.Deposit(amount); err != nil {
			s.println(msgInvalidAmount)
			continue
		}
		s.logger.Debug("deposit accepted", zap.Stringer("amount", amount), zap.Stringer("balance", s.ledger.Balance()))
		s.printf("Current balance: %s\n", s.money(s.ledger.Balance()))
		return nil
	}
}

// purchaseLoop 顯示商品、讀取選擇並購買，每次嘗試後詢問是否繼續。
func (s *Session) purchaseLoop() error {
	for {
		s.displayItems()
		line, err := s.prompt(promptSelection)
		if err != nil {
			return err
		}

		sel, perr := parseSelection(line)
		switch {
		case perr != nil:
			s.println(msgNotANumber)
		case sel == vending.QuitSelection:
			s.println(msgGoodbye)
			return nil
		default:
			if err := s.purchase(sel); err != nil {
				return err
			}
		}

		answer, err := s.prompt(promptContinue)
		if err != nil {
			return err
		}
		if !strings.EqualFold(answer, "y") {
			s.println(msgGoodbye)
			return nil
		}
	}
}

// purchase 處理單次購買結果；只有讀取輸入失敗才回傳錯誤。
func (s *Session) purchase(sel int) error {
	rec, err := s.engine.AttemptPurchase(s.inv, s.ledger, sel)
	if err == nil || errors.Is(err, vending.ErrLogAppend) {
		s.printf("Dispensing %s... Enjoy! Remaining balance: %s\n", rec.ItemName, s.money(rec.BalanceAfter))
		if err != nil {
			s.println(msgLogFailed)
		}
		return nil
	}

	item, _ := s.inv.At(sel)
	s.println(s.messageFor(err, item))
	if errors.Is(err, vending.ErrInsufficientFunds) {
		return s.insertMoney()
	}
	return nil
}
