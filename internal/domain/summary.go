package domain

import "github.com/shopspring/decimal"

// Summary reúne os KPIs calculados sobre um subconjunto de vendas. Os
// valores monetários são acumulados com precisão total; o arredondamento
// para duas casas acontece apenas na formatação.
type Summary struct {
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	TotalUnits        int             `json:"totalUnits"`
	DistinctCustomers int             `json:"distinctCustomers"`
	AvgSaleValue      decimal.Decimal `json:"avgSaleValue"`
}

// RegionRevenue é a receita somada de uma região.
type RegionRevenue struct {
	Region  string          `json:"region"`
	Revenue decimal.Decimal `json:"revenue"`
}

// CategoryUnits é o total de unidades vendidas de uma categoria.
type CategoryUnits struct {
	Category string `json:"category"`
	Units    int    `json:"units"`
}

// RevenuePoint é um ponto da série temporal de receita, agrupado por dia de
// calendário. Label é um rótulo curto estável de exibição ("15 يناير").
type RevenuePoint struct {
	Date    Date            `json:"date"`
	Label   string          `json:"label"`
	Revenue decimal.Decimal `json:"revenue"`
}
