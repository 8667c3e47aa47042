package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Cents is a fixed-point money amount. The backend speaks float dollars on
// the wire; all arithmetic in this codebase happens in integer cents so that
// repeated settlement computations never drift.
type Cents int64

// CentsFromDollars converts a float dollar amount to cents, rounding half
// away from zero.
func CentsFromDollars(dollars float64) Cents {
	return Cents(math.Round(dollars * 100))
}

// Dollars returns the amount as a float dollar value for display and for the
// wire format.
func (c Cents) Dollars() float64 {
	return float64(c) / 100
}

// String formats the amount as US currency, e.g. "$1,234.50".
func (c Cents) String() string {
	neg := c < 0
	abs := int64(c)
	if neg {
		abs = -abs
	}
	whole := abs / 100
	frac := abs % 100

	digits := strconv.FormatInt(whole, 10)
	var grouped []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, byte(d))
	}

	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%s$%s.%02d", sign, grouped, frac)
}

// MarshalJSON emits the wire representation: a plain dollar number.
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(c.Dollars(), 'f', 2, 64)), nil
}

// UnmarshalJSON accepts a JSON number of dollars. The backend serializes
// DECIMAL columns as numbers and leaves some optional fee fields null.
func (c *Cents) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = 0
		return nil
	}
	var dollars float64
	if err := json.Unmarshal(data, &dollars); err != nil {
		return fmt.Errorf("invalid money amount %s: %w", data, err)
	}
	*c = CentsFromDollars(dollars)
	return nil
}
