package view

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Placeholder is shown wherever a value is absent.
const Placeholder = "—"

// formatValue renders a raw JSON scalar the way a browser prints it: strings
// verbatim, numbers in their shortest form. Absent and null values render as
// Placeholder; anything else is shown as the text received.
func formatValue(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return Placeholder
	}

	switch c := raw[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	case c == '-' || (c >= '0' && c <= '9'):
		if f, err := strconv.ParseFloat(string(raw), 64); err == nil {
			return formatNumber(f)
		}
	}

	return string(raw)
}

// formatNumber matches the number to string conversion of JavaScript: plain
// decimals for magnitudes in [1e-6, 1e21), exponent notation outside.
func formatNumber(f float64) string {
	if f == 0 {
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	// Go pads the exponent to two digits and JavaScript does not
	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
	return mantissa + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
}
