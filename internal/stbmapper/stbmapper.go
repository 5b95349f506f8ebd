// Package stbmapper converts TradeZella trade records into STB bulk-import
// rows. It is composed of small pure field transforms (entry-model
// classifier, outcome classifier, yes/no normalizer, scalar coercion) that
// MapRow applies in destination column order.
package stbmapper

import (
	"strings"

	"fjacquet/zella-stb/internal/dateutils"
	"fjacquet/zella-stb/internal/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// CatchAllModel is the STB entry model used when no specific category
// matches or when the export dumped its whole dropdown into the cell.
const CatchAllModel = "other (specify below)"

// NoOverflow is the placeholder written to the overflow column when a
// single (or no) entry model was selected.
const NoOverflow = "-"

// Outcome labels for the STB "Outcome" column.
const (
	OutcomeGreen     = "green"
	OutcomeRed       = "red"
	OutcomeBreakeven = "breakeven"
)

// validEntryModels is the closed set of STB entry-model dropdown values,
// lowercase for matching. CatchAllModel is part of the set but never
// counts as a real selection.
var validEntryModels = map[string]bool{
	"3x entry":                      true,
	"advanced structure entry":      true,
	"breakers":                      true,
	"catching the move of the day":  true,
	"catching the move of the week": true,
	"change of delivery":            true,
	"cisd":                          true,
	"displacement":                  true,
	"fail flip":                     true,
	"inversions":                    true,
	"fcr":                           true,
	"market structure shift":        true,
	"inverted fvg":                  true,
	"mmem":                          true,
	"ny fx entry":                   true,
	"smm entry":                     true,
	CatchAllModel:                   true,
	"time based entry model 2":      true,
	"time based entry model 1":      true,
}

// ClassifyEntryModel maps a raw Entry Model cell to an (entryModel,
// otherSpecify) pair. STB accepts a single model per trade; when several
// are tagged the first match becomes the entry model and the remainder is
// joined into the overflow column in original textual order. A cell that
// covers the entire non-catch-all vocabulary is a dropdown dump (nothing
// was actually selected) and classifies as the catch-all. The legacy
// "csid" typo from older exports is normalized to "cisd" before matching.
func ClassifyEntryModel(raw string) (entryModel, otherSpecify string) {
	if strings.TrimSpace(raw) == "" {
		return CatchAllModel, NoOverflow
	}

	normalized := strings.ReplaceAll(raw, "csid", "cisd")

	var matches []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(normalized, ",") {
		candidate := strings.ToLower(strings.TrimSpace(part))
		if candidate == CatchAllModel || !validEntryModels[candidate] {
			continue
		}
		matches = append(matches, candidate)
		seen[candidate] = true
	}

	// Full dropdown dump: every real model present means none was chosen.
	if len(seen) == len(validEntryModels)-1 {
		log.WithField("value", raw).Debug("Entry model cell is a full dropdown dump")
		return CatchAllModel, NoOverflow
	}

	if len(matches) == 0 {
		return CatchAllModel, NoOverflow
	}

	overflow := NoOverflow
	if len(matches) > 1 {
		overflow = strings.Join(matches[1:], ", ")
	}
	return matches[0], overflow
}

// ClassifyOutcome maps a status label plus the signed net P&L to the STB
// outcome. An explicit breakeven status or a zero P&L wins over the sign.
func ClassifyOutcome(status string, pnl decimal.Decimal) string {
	s := strings.ToLower(strings.TrimSpace(status))
	switch {
	case s == "breakeven" || pnl.IsZero():
		return OutcomeBreakeven
	case s == "win" || pnl.IsPositive():
		return OutcomeGreen
	case s == "loss" || pnl.IsNegative():
		return OutcomeRed
	}
	return ""
}

// NormalizeYesNo converts a TradeZella yes/no field to "yes" or "no".
// A cell containing both options is a dropdown dump, not a real answer,
// and normalizes to blank.
func NormalizeYesNo(raw string) string {
	v := strings.ToLower(strings.TrimSpace(raw))
	if strings.Contains(v, "yes") && strings.Contains(v, "no") {
		return ""
	}
	switch v {
	case "true", "yes", "1", "y":
		return "yes"
	case "false", "no", "0", "n":
		return "no"
	}
	return ""
}

// SafeString trims a raw cell value. The literal text "nan" (any case)
// is an export artifact for a missing cell and collapses to empty.
func SafeString(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.EqualFold(s, "nan") {
		return ""
	}
	return s
}

// DateStyle selects the date rendering convention of the target sink.
type DateStyle int

const (
	// DateStyleSheets renders dates as month/day/year text; Google Sheets
	// re-interprets them through USER_ENTERED semantics.
	DateStyleSheets DateStyle = iota
	// DateStyleXlsx renders dates as ISO year-month-day strings.
	DateStyleXlsx
)

// FormatOpenDate parses a raw open-date cell and renders it per the given
// sink style. Missing or unparseable dates render as empty.
func FormatOpenDate(raw string, style DateStyle) string {
	t, _, err := dateutils.ParseDate(SafeString(raw))
	if err != nil {
		return ""
	}
	if style == DateStyleSheets {
		return dateutils.ToSheetsDate(t)
	}
	return dateutils.ToISODate(t)
}

// MapRow maps a single TradeRecord to an STB ImportRow. It is a pure
// function of its inputs: mapping the same record twice yields identical
// rows. Currency is always USD and the screenshot column is always empty.
func MapRow(rec models.TradeRecord, style DateStyle) models.ImportRow {
	entryModel, otherSpecify := ClassifyEntryModel(rec.EntryModel)
	pnl := models.ParseAmount(rec.NetPnL)

	return models.ImportRow{
		TradingDate:       FormatOpenDate(rec.OpenDate, style),
		EntryModel:        entryModel,
		OtherModel:        otherSpecify,
		Currency:          models.Currency,
		ProfitLoss:        pnl,
		Outcome:           ClassifyOutcome(rec.Status, pnl),
		Emotions:          SafeString(rec.Emotions),
		EmotionsAffected:  NormalizeYesNo(rec.EmotionsAffected),
		EmotionallyStable: NormalizeYesNo(rec.EmotionallyStable),
		ProfitTarget:      SafeString(rec.ProfitTarget),
		StopLoss:          SafeString(rec.StopLoss),
		EntryLogic:        SafeString(rec.EntryLogic),
		TradeReview:       SafeString(rec.TradeReview),
		CoachNotes:        SafeString(rec.CoachNotes),
		ScreenshotURLs:    "",
	}
}

// MapAll maps every record 1:1 into the positional row slices the sinks
// consume.
func MapAll(recs []models.TradeRecord, style DateStyle) [][]interface{} {
	rows := make([][]interface{}, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, MapRow(rec, style).Values())
	}
	return rows
}
