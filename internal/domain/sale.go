package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Customer identifica quem realizou a compra em uma venda.
type Customer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Sale é o registro canônico de uma venda. Depois de criado ele é imutável:
// mutações substituem a coleção inteira, nunca um registro isolado.
type Sale struct {
	ID        string          `json:"id"`
	Date      Date            `json:"date"`
	Product   string          `json:"product"`
	Category  string          `json:"category"`
	Region    string          `json:"region"`
	Revenue   decimal.Decimal `json:"revenue"`
	UnitsSold int             `json:"unitsSold"`
	Customer  Customer        `json:"customer"`
}

// SortSalesByDate ordena a coleção em ordem ascendente por data, que é a
// ordem canônica de persistência. A ordenação é estável para não reordenar
// vendas do mesmo dia a cada gravação.
func SortSalesByDate(sales []Sale) {
	sort.SliceStable(sales, func(i, j int) bool {
		return sales[i].Date.Before(sales[j].Date)
	})
}
