package reporting

import (
	"strconv"

	"github.com/Atheer1324700/Atheer-Sales/internal/domain"
)

// Window define o recorte temporal aplicado sobre a coleção de vendas: os
// últimos N dias de calendário, ou o período inteiro quando Days é zero.
type Window struct {
	Days int
}

// WindowAll mantém todas as vendas.
var WindowAll = Window{}

// ParseWindow interpreta o valor enviado pelo frontend: "all" ou um número
// positivo de dias.
func ParseWindow(s string) (Window, error) {
	if s == "" || s == "all" {
		return WindowAll, nil
	}

	days, err := strconv.Atoi(s)
	if err != nil || days <= 0 {
		return Window{}, domain.NewValidationError("window", "deve ser \"all\" ou um número positivo de dias")
	}

	return Window{Days: days}, nil
}

func (w Window) IsAll() bool { return w.Days == 0 }

func (w Window) String() string {
	if w.IsAll() {
		return "all"
	}
	return strconv.Itoa(w.Days)
}

// ApplyWindow retorna o subconjunto de vendas cuja data está dentro da
// janela, contada a partir de today com granularidade de dia e limite
// inclusivo. A função é pura: não altera a entrada e preserva a ordem
// relativa dos registros.
func ApplyWindow(sales []domain.Sale, w Window, today domain.Date) []domain.Sale {
	if w.IsAll() {
		out := make([]domain.Sale, len(sales))
		copy(out, sales)
		return out
	}

	cutoff := today.AddDays(-w.Days)

	out := make([]domain.Sale, 0, len(sales))
	for _, sale := range sales {
		if !sale.Date.Before(cutoff) {
			out = append(out, sale)
		}
	}

	return out
}
