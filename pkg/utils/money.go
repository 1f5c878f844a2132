package utils

import "github.com/shopspring/decimal"

// FormatMoney formata um valor monetário com duas casas decimais. Os totais
// são acumulados com precisão total e só passam por aqui na exibição.
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// RoundMoney arredonda um valor para duas casas decimais. Usado apenas no
// momento da criação de uma venda (unidades × preço).
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
