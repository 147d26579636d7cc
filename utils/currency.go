package utils

import "github.com/shopspring/decimal"

// RoundWhole округляет сумму до целых единиц (половина — вверх, как Math.round).
func RoundWhole(v float64) int64 {
	return decimal.NewFromFloat(v).Round(0).IntPart()
}

// FormatRupees форматирует сумму для текста сводки: целые рупии без копеек.
func FormatRupees(v float64) string {
	return "₹" + decimal.NewFromFloat(v).Round(0).String()
}
