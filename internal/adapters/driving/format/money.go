// Package format renders values for the terminal and MCP surfaces.
package format

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer returns a pt-BR printer: "." groups thousands and "," separates cents.
func printer() *message.Printer {
	return message.NewPrinter(language.BrazilianPortuguese)
}

// BRL formats an amount in Brazilian reais, e.g. "R$ 1.234,56".
// Negative amounts carry the sign before the symbol: "-R$ 42,10".
func BRL(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		value = 0
	}
	amount := math.Round(math.Abs(value)*100) / 100

	s := printer().Sprintf("R$ %.2f", amount)
	if value < 0 && amount > 0 {
		return "-" + s
	}
	return s
}

// Budget formats a budget range in whole reais, e.g. "R$ 500 ~ 1.200".
// A missing bound is left blank; no bounds at all yields "".
func Budget(minBudget, maxBudget *float64) string {
	if minBudget == nil && maxBudget == nil {
		return ""
	}
	p := printer()
	return "R$ " + wholeReais(p, minBudget) + " ~ " + wholeReais(p, maxBudget)
}

func wholeReais(p *message.Printer, v *float64) string {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return ""
	}
	return p.Sprintf("%d", int64(math.Round(*v)))
}
