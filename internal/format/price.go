package format

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"
)

const (
	narrowNoBreakSpace = "\u202f"
	noBreakSpace       = "\u00a0"
)

// frenchGrouping is a go-humanize format: narrow no-break space between
// thousands, comma before exactly two decimals.
const frenchGrouping = "#" + narrowNoBreakSpace + "###,##"

// humanize.FormatFloat goes through int64; past this magnitude the cents
// no longer fit.
const maxFormatFloat = 1e15

// PriceEuro formats n the way fr-FR formats euros: 1234.5 -> "1 234,50 €".
func PriceEuro(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		n = 0
	}
	if math.Abs(n) >= maxFormatFloat {
		return bigPriceEuro(n)
	}
	return humanize.FormatFloat(frenchGrouping, math.Round(n*100)/100) + noBreakSpace + "€"
}

func bigPriceEuro(n float64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	whole := math.Trunc(n)
	cents := math.Round((n - whole) * 100)
	if cents >= 100 {
		whole++
		cents = 0
	}
	units, _ := new(big.Float).SetFloat64(whole).Int(nil)
	grouped := strings.ReplaceAll(humanize.BigComma(units), ",", narrowNoBreakSpace)
	return fmt.Sprintf("%s%s,%02d%s€", sign, grouped, int(cents), noBreakSpace)
}
