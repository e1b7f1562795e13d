package shop

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatRupiah renders an amount the way the storefront shows prices,
// e.g. "Rp 120.000".
func FormatRupiah(amount int64) string {
	p := message.NewPrinter(language.Indonesian)
	return "Rp " + p.Sprintf("%d", amount)
}
