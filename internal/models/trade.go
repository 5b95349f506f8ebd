// Package models defines the data structures shared between the parser,
// the mapper and the output sinks.
package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency is the destination currency for every imported trade.
// TradeZella exports do not carry a per-trade currency column.
const Currency = "USD"

// TradeRecord represents a single row of a TradeZella CSV export.
// It uses struct tags for gocsv unmarshaling. The tags must match the
// vendor headers byte-for-byte, including the triple-space oddities in
// the "Did You Respect It?" columns. Unknown export columns are ignored.
type TradeRecord struct {
	OpenDate          string `csv:"Open Date"`
	EntryModel        string `csv:"Entry Model"`
	Status            string `csv:"Status"`
	NetPnL            string `csv:"Net P&L"`
	Emotions          string `csv:"Emotions"`
	EmotionsAffected  string `csv:"Did Emotions Affect Decisions?"`
	EmotionallyStable string `csv:"Was Emotionally Stable?"`
	ProfitTarget      string `csv:"Profit Target   Did You Respect It?"`
	StopLoss          string `csv:"Stop Loss   Did You Respect It?"`
	EntryLogic        string `csv:"Entry Logic Explanation"`
	TradeReview       string `csv:"How Did The Trade Play Out?"`
	CoachNotes        string `csv:"Notes For Coaches"`
}

// ImportRow represents one row of the STB bulk-import schema, in
// destination column order. Exactly one is produced per valid TradeRecord.
type ImportRow struct {
	TradingDate       string
	EntryModel        string
	OtherModel        string
	Currency          string
	ProfitLoss        decimal.Decimal
	Outcome           string
	Emotions          string
	EmotionsAffected  string
	EmotionallyStable string
	ProfitTarget      string
	StopLoss          string
	EntryLogic        string
	TradeReview       string
	CoachNotes        string
	ScreenshotURLs    string
}

// ImportHeaders lists the STB bulk-import column names in sheet order.
var ImportHeaders = []string{
	"Trading Date",
	"Entry Model",
	"<--Other (Specify)",
	"Currency",
	"Profit / Loss",
	"Outcome",
	"Emotions",
	"Did emotions affect decisions?",
	"Was emotionally stable?",
	"Profit target",
	"Stop loss",
	"Entry logic explanation",
	"How did trade play out?",
	"Notes for coaches",
	"Screenshot URLs",
}

// Values returns the positional slice both sinks consume.
// The result always has the same length and order as ImportHeaders,
// regardless of which source fields were missing.
func (r ImportRow) Values() []interface{} {
	return []interface{}{
		r.TradingDate,
		r.EntryModel,
		r.OtherModel,
		r.Currency,
		r.ProfitLoss.InexactFloat64(),
		r.Outcome,
		r.Emotions,
		r.EmotionsAffected,
		r.EmotionallyStable,
		r.ProfitTarget,
		r.StopLoss,
		r.EntryLogic,
		r.TradeReview,
		r.CoachNotes,
		r.ScreenshotURLs,
	}
}

// ParseAmount converts a raw P&L cell to a decimal value.
// Currency symbols, thousand separators and stray whitespace are stripped.
// Anything that still does not parse becomes zero, never an error.
func ParseAmount(amountStr string) decimal.Decimal {
	amount := strings.TrimSpace(amountStr)
	amount = strings.ReplaceAll(amount, " ", "")
	amount = strings.ReplaceAll(amount, "USD", "")
	amount = strings.ReplaceAll(amount, "$", "")
	// Thousand separators (US exports use commas, some brokers apostrophes)
	amount = strings.ReplaceAll(amount, ",", "")
	amount = strings.ReplaceAll(amount, "'", "")

	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero
	}
	return dec
}
