package recipe

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// QuantityKind tags which variant a Quantity holds.
type QuantityKind uint8

const (
	// QuantityUnspecified is a line with no amount at all ("salt, to taste").
	QuantityUnspecified QuantityKind = iota
	// QuantityNumeric is a summable amount.
	QuantityNumeric
	// QuantityTextual holds at least one amount that is not a number.
	QuantityTextual
)

func (k QuantityKind) String() string {
	switch k {
	case QuantityNumeric:
		return "numeric"
	case QuantityTextual:
		return "textual"
	default:
		return "unspecified"
	}
}

// Quantity is an ingredient amount that is either numeric or textual.
//
// A numeric quantity keeps a running sum and, while only one line has
// contributed to it, the literal that line used, so "1/2" is reported as
// "1/2" and not "0.5". Every quantity also remembers the distinct raw amounts
// it was built from, in first-seen order. Once a textual amount is involved
// those raw amounts are the whole representation and no total is computed.
type Quantity struct {
	sum     float64
	parts   int
	literal string
	raws    []string
	textual bool
}

// Numeric returns a numeric quantity.
func Numeric(v float64) Quantity {
	s := formatNumber(v)
	return Quantity{sum: v, parts: 1, literal: s, raws: []string{s}}
}

// Textual returns a textual quantity holding raw.
func Textual(raw string) Quantity {
	return Quantity{raws: []string{raw}, textual: true}
}

// ParseQuantity classifies a raw amount. Integers, decimals, simple fractions
// ("1/2"), mixed numbers ("1 1/2") and Unicode vulgar fractions ("½", "1½")
// are numeric; any other non-blank text is textual.
func ParseQuantity(raw string) Quantity {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Quantity{}
	}
	if v, ok := parseNumber(s); ok {
		return Quantity{sum: v, parts: 1, literal: s, raws: []string{s}}
	}
	return Textual(s)
}

// Kind reports the variant.
func (q Quantity) Kind() QuantityKind {
	switch {
	case q.textual:
		return QuantityTextual
	case q.parts > 0:
		return QuantityNumeric
	default:
		return QuantityUnspecified
	}
}

// Value returns the numeric amount. ok is false unless the quantity is numeric.
func (q Quantity) Value() (v float64, ok bool) {
	if q.Kind() != QuantityNumeric {
		return 0, false
	}
	return q.sum, true
}

// Add merges two quantities, dispatching on the variant pair. Neither operand
// is modified.
func (q Quantity) Add(other Quantity) Quantity {
	switch k1, k2 := q.Kind(), other.Kind(); {
	case k2 == QuantityUnspecified:
		return q.clone()
	case k1 == QuantityUnspecified:
		return other.clone()
	case k1 == QuantityNumeric && k2 == QuantityNumeric:
		return q.addNumeric(other)
	default:
		return Quantity{
			raws:    appendDistinct(append([]string(nil), q.raws...), other.raws...),
			textual: true,
		}
	}
}

func (q Quantity) addNumeric(other Quantity) Quantity {
	return Quantity{
		sum:     q.sum + other.sum,
		parts:   q.parts + other.parts,
		literal: formatNumber(q.sum + other.sum),
		raws:    appendDistinct(append([]string(nil), q.raws...), other.raws...),
	}
}

// Amounts lists the representation of the quantity: one entry for a numeric
// quantity, the distinct original amounts in first-seen order for a textual
// one, and nothing when unspecified.
func (q Quantity) Amounts() []string {
	switch q.Kind() {
	case QuantityNumeric:
		return []string{q.literal}
	case QuantityTextual:
		return append([]string(nil), q.raws...)
	default:
		return nil
	}
}

func (q Quantity) String() string {
	return strings.Join(q.Amounts(), " + ")
}

// MarshalJSON encodes a numeric quantity as a string, a textual one as an
// array of strings and an unspecified one as "".
func (q Quantity) MarshalJSON() ([]byte, error) {
	if q.Kind() == QuantityTextual {
		return json.Marshal(q.Amounts())
	}
	return json.Marshal(q.String())
}

func (q Quantity) clone() Quantity {
	q.raws = append([]string(nil), q.raws...)
	return q
}

func appendDistinct(dst []string, values ...string) []string {
	for _, v := range values {
		seen := false
		for _, d := range dst {
			if d == v {
				seen = true
				break
			}
		}
		if !seen {
			dst = append(dst, v)
		}
	}
	return dst
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(math.Round(v*1e6)/1e6, 'f', -1, 64)
}

var vulgarFractions = map[rune]float64{
	'½': 1.0 / 2, '⅓': 1.0 / 3, '⅔': 2.0 / 3, '¼': 1.0 / 4, '¾': 3.0 / 4,
	'⅕': 1.0 / 5, '⅖': 2.0 / 5, '⅗': 3.0 / 5, '⅘': 4.0 / 5, '⅙': 1.0 / 6,
	'⅚': 5.0 / 6, '⅛': 1.0 / 8, '⅜': 3.0 / 8, '⅝': 5.0 / 8, '⅞': 7.0 / 8,
}

func parseNumber(s string) (float64, bool) {
	if r, size := utf8.DecodeLastRuneInString(s); size > 0 {
		if frac, ok := vulgarFractions[r]; ok {
			whole := strings.TrimSpace(s[:len(s)-size])
			if whole == "" {
				return frac, true
			}
			w, ok := parseDecimal(whole)
			if !ok || strings.Contains(whole, ".") {
				return 0, false
			}
			return w + frac, true
		}
	}

	fields := strings.Fields(s)
	switch len(fields) {
	case 1:
		if strings.Contains(s, "/") {
			return parseFraction(s)
		}
		return parseDecimal(s)
	case 2:
		whole, ok := parseDigits(fields[0])
		if !ok {
			return 0, false
		}
		frac, ok := parseFraction(fields[1])
		if !ok {
			return 0, false
		}
		return whole + frac, true
	default:
		return 0, false
	}
}

func parseFraction(s string) (float64, bool) {
	num, den, found := strings.Cut(s, "/")
	if !found {
		return 0, false
	}
	n, ok := parseDigits(num)
	if !ok {
		return 0, false
	}
	d, ok := parseDigits(den)
	if !ok || d == 0 {
		return 0, false
	}
	return n / d, true
}

// parseDecimal accepts digits with at most one decimal point. Signs,
// exponents and the NaN/Inf spellings that strconv allows are rejected.
func parseDecimal(s string) (float64, bool) {
	digits, dots := 0, 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			dots++
		default:
			return 0, false
		}
	}
	if digits == 0 || dots > 1 {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseDigits(s string) (float64, bool) {
	if s == "" || strings.Contains(s, ".") {
		return 0, false
	}
	return parseDecimal(s)
}
