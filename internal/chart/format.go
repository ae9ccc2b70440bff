package chart

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"PriceCompare/internal/model"
)

// num prints v with at most two decimals and no trailing zeros.
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}

// FormatPrice renders a close rounded to cents, trailing zeros dropped:
// "$123.4".
func FormatPrice(v float64) string {
	return "$" + decimal.NewFromFloat(v).Round(2).String()
}

// FormatDate renders the tooltip heading date.
func FormatDate(t time.Time) string { return t.Format("January 02, 2006") }

// TooltipRow renders one series line of the tooltip.
func TooltipRow(cp model.CursorPoint) string {
	if !cp.Found {
		return cp.Series + " · n/a"
	}
	return fmt.Sprintf("%s · %s", cp.Series, FormatPrice(cp.Point.Close))
}

// TooltipHeading is the date of the first matched point, or "" when no
// series matched.
func TooltipHeading(cur model.Cursor) string {
	for _, cp := range cur.Points {
		if cp.Found {
			return FormatDate(cp.Point.Date)
		}
	}
	return ""
}

// TooltipLines returns the heading followed by one row per series.
func TooltipLines(cur model.Cursor) []string {
	lines := make([]string, 0, len(cur.Points)+1)
	lines = append(lines, TooltipHeading(cur))
	for _, cp := range cur.Points {
		lines = append(lines, TooltipRow(cp))
	}
	return lines
}
