package storage

import (
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/Atheer1324700/Atheer-Sales/internal/domain"
)

// Catálogo usado para semear o conjunto inicial de vendas quando o slot
// ainda não existe ou não pôde ser lido.
type catalogItem struct {
	Product  string
	Category string
}

var productCatalog = []catalogItem{
	{Product: "لابتوب Pro", Category: "إلكترونيات"},
	{Product: "لابتوب Gamer", Category: "إلكترونيات"},
	{Product: "شاشة UltraWide", Category: "إلكترونيات"},
	{Product: "هاتف SmartX", Category: "هواتف"},
	{Product: "هاتف SmartX Plus", Category: "هواتف"},
	{Product: "سماعات SoundWave", Category: "صوتيات"},
	{Product: "سماعات Buds", Category: "صوتيات"},
	{Product: "ساعة Chrono", Category: "اكسسوارات"},
	{Product: "كاميرا Vision", Category: "كاميرات"},
}

var regions = []string{"الرياض", "جدة", "الدمام", "مكة", "المدينة"}

var seedCustomers = []domain.Customer{
	{ID: "c1", Name: "أحمد المحمد"},
	{ID: "c2", Name: "فاطمة العلي"},
	{ID: "c3", Name: "خالد الصالح"},
	{ID: "c4", Name: "نورة التركي"},
	{ID: "c5", Name: "سارة عبدالله"},
}

// GenerateSeedData sintetiza um conjunto de vendas aleatórias espalhadas
// pelo último ano, ordenado ascendentemente por data (ordem canônica de
// persistência). A contagem é determinística; o conteúdo, não.
func GenerateSeedData(count int) []domain.Sale {
	today := domain.Today()
	sales := make([]domain.Sale, 0, count)

	for i := 0; i < count; i++ {
		item := productCatalog[rand.Intn(len(productCatalog))]
		unitsSold := rand.Intn(10) + 1
		price := decimal.NewFromFloat(100 + rand.Float64()*1900)

		sales = append(sales, domain.Sale{
			ID:        fmt.Sprintf("sale_%d", i+1),
			Date:      today.AddDays(-rand.Intn(365)),
			Product:   item.Product,
			Category:  item.Category,
			Region:    regions[rand.Intn(len(regions))],
			Revenue:   price.Mul(decimal.NewFromInt(int64(unitsSold))).Round(2),
			UnitsSold: unitsSold,
			Customer:  seedCustomers[rand.Intn(len(seedCustomers))],
		})
	}

	domain.SortSalesByDate(sales)
	return sales
}
