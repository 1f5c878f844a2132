package reporting

import (
	"sort"
	"strings"

	"github.com/Atheer1324700/Atheer-Sales/internal/domain"
)

// PageSize é o tamanho fixo de página da tabela de vendas.
const PageSize = 5

// SortField identifica o campo pelo qual a tabela é ordenada. A tabela só
// expõe produto, cliente, região, data e receita, mas a primitiva também
// suporta categoria e unidades para reuso.
type SortField string

const (
	SortByProduct  SortField = "product"
	SortByCustomer SortField = "customer"
	SortByRegion   SortField = "region"
	SortByDate     SortField = "date"
	SortByRevenue  SortField = "revenue"
	SortByCategory SortField = "category"
	SortByUnits    SortField = "unitsSold"
)

// ParseSortField valida o campo de ordenação enviado pelo frontend.
func ParseSortField(s string) (SortField, error) {
	switch field := SortField(s); field {
	case SortByProduct, SortByCustomer, SortByRegion, SortByDate,
		SortByRevenue, SortByCategory, SortByUnits:
		return field, nil
	default:
		return "", domain.NewValidationError("field", "campo de ordenação desconhecido: "+s)
	}
}

// SortDirection é a direção de ordenação da tabela.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// SortSales retorna uma cópia das vendas ordenada pelo campo e direção. A
// ordenação é estável: registros com chaves iguais mantêm a ordem relativa
// anterior.
func SortSales(sales []domain.Sale, field SortField, direction SortDirection) []domain.Sale {
	out := make([]domain.Sale, len(sales))
	copy(out, sales)

	sort.SliceStable(out, func(i, j int) bool {
		cmp := compareSales(out[i], out[j], field)
		if direction == Descending {
			return cmp > 0
		}
		return cmp < 0
	})

	return out
}

func compareSales(a, b domain.Sale, field SortField) int {
	switch field {
	case SortByProduct:
		return strings.Compare(a.Product, b.Product)
	case SortByCustomer:
		return strings.Compare(a.Customer.Name, b.Customer.Name)
	case SortByRegion:
		return strings.Compare(a.Region, b.Region)
	case SortByCategory:
		return strings.Compare(a.Category, b.Category)
	case SortByRevenue:
		return a.Revenue.Cmp(b.Revenue)
	case SortByUnits:
		switch {
		case a.UnitsSold < b.UnitsSold:
			return -1
		case a.UnitsSold > b.UnitsSold:
			return 1
		default:
			return 0
		}
	default:
		return a.Date.Compare(b.Date)
	}
}

// Paginate recorta a sequência em páginas de tamanho fixo. O total de
// páginas exibido nunca é menor que 1, mesmo com a sequência vazia, e uma
// página fora dos limites é ajustada para a página válida mais próxima em
// vez de falhar.
func Paginate(sales []domain.Sale, pageSize, page int) ([]domain.Sale, int) {
	totalPages := (len(sales) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	if start > len(sales) {
		start = len(sales)
	}

	end := start + pageSize
	if end > len(sales) {
		end = len(sales)
	}

	return sales[start:end], totalPages
}

// SortState guarda a ordenação ativa da tabela. O padrão do dashboard é
// data descendente (vendas mais recentes primeiro).
type SortState struct {
	Field     SortField
	Direction SortDirection
}

// DefaultSortState retorna a ordenação inicial da tabela.
func DefaultSortState() SortState {
	return SortState{Field: SortByDate, Direction: Descending}
}

// Toggle aplica a semântica de clique no cabeçalho da tabela: clicar no
// mesmo campo alterna a direção; escolher um campo novo volta para
// ascendente.
func (s *SortState) Toggle(field SortField) {
	if s.Field == field {
		if s.Direction == Ascending {
			s.Direction = Descending
		} else {
			s.Direction = Ascending
		}
		return
	}

	s.Field = field
	s.Direction = Ascending
}
