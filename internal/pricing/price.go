package pricing

import (
	"encoding/json"
	"strconv"
	"strings"
	"unicode"
)

// Price is a tagged numeric-or-unparsed-string value. Price files have
// historically stored both JSON numbers and strings like "Rs. 1,050",
// so every call site goes through this one type instead of coercing ad
// hoc. A non-numeric price is kept verbatim for display and excluded
// from aggregation.
type Price struct {
	Amount  int
	Raw     string
	Numeric bool
}

// NumericPrice builds a Price from a known-good integer.
func NumericPrice(amount int) Price {
	return Price{Amount: amount, Numeric: true}
}

// CoercePrice is the single conversion used everywhere a price is read
// from untrusted data: attempt an integer parse, otherwise carry the
// raw text verbatim for display.
func CoercePrice(raw string) Price {
	trimmed := strings.TrimSpace(raw)
	if n, err := strconv.Atoi(trimmed); err == nil {
		return Price{Amount: n, Numeric: true}
	}
	return Price{Raw: trimmed}
}

// ExtractDigits strips everything that is not an ASCII digit, so
// "Rs. 1,050/-" becomes "1050".
func ExtractDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) && r < 128 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Display returns the user-facing form: the integer when numeric,
// otherwise the stored text verbatim.
func (p Price) Display() string {
	if p.Numeric {
		return strconv.Itoa(p.Amount)
	}
	return p.Raw
}

func (p Price) MarshalJSON() ([]byte, error) {
	if p.Numeric {
		return json.Marshal(p.Amount)
	}
	return json.Marshal(p.Raw)
}

func (p *Price) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*p = NumericPrice(n)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*p = NumericPrice(int(f))
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*p = CoercePrice(s)
	return nil
}
