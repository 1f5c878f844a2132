package reporting

import (
	"sync"

	"github.com/Atheer1324700/Atheer-Sales/internal/domain"
)

// RecordSource fornece a coleção atual de vendas. O serviço de reporting
// nunca é dono dos registros; ele só deriva visões a partir deles.
type RecordSource interface {
	All() []domain.Sale
}

// Service mantém o estado de visualização do dashboard (janela ativa,
// ordenação da tabela e página atual) e monta o snapshot consumido pelos
// componentes de exibição.
type Service struct {
	source RecordSource
	today  func() domain.Date

	mu        sync.Mutex
	window    Window
	sortState SortState
	page      int
}

func NewService(source RecordSource) *Service {
	return &Service{
		source:    source,
		today:     domain.Today,
		window:    WindowAll,
		sortState: DefaultSortState(),
		page:      1,
	}
}

// TablePage é a página da tabela de vendas, junto com o estado de ordenação
// que a produziu.
type TablePage struct {
	Sales      []domain.Sale `json:"sales"`
	Page       int           `json:"page"`
	TotalPages int           `json:"totalPages"`
	Field      SortField     `json:"field"`
	Direction  SortDirection `json:"direction"`
}

// Snapshot é tudo que a camada de apresentação precisa para renderizar o
// dashboard de uma vez.
type Snapshot struct {
	Window        string                 `json:"window"`
	FilteredCount int                    `json:"filteredCount"`
	Summary       domain.Summary         `json:"summary"`
	ByRegion      []domain.RegionRevenue `json:"byRegion"`
	ByCategory    []domain.CategoryUnits `json:"byCategory"`
	RevenueSeries []domain.RevenuePoint  `json:"revenueSeries"`
	Table         TablePage              `json:"table"`
}

// Snapshot aplica o pipeline filtro → agregação → ordenação/paginação sobre
// a coleção atual e devolve o resultado completo.
func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	window := s.window
	sortState := s.sortState
	page := s.page
	s.mu.Unlock()

	filtered := ApplyWindow(s.source.All(), window, s.today())

	sorted := SortSales(filtered, sortState.Field, sortState.Direction)
	pageSlice, totalPages := Paginate(sorted, PageSize, page)
	if page > totalPages {
		page = totalPages
	}

	return Snapshot{
		Window:        window.String(),
		FilteredCount: len(filtered),
		Summary:       Summarize(filtered),
		ByRegion:      RevenueByRegion(filtered),
		ByCategory:    UnitsByCategory(filtered),
		RevenueSeries: RevenueSeries(filtered),
		Table: TablePage{
			Sales:      pageSlice,
			Page:       page,
			TotalPages: totalPages,
			Field:      sortState.Field,
			Direction:  sortState.Direction,
		},
	}
}

// SetWindow troca o recorte temporal ativo e volta para a primeira página.
func (s *Service) SetWindow(w Window) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.window = w
	s.page = 1
}

// ToggleSort aplica o clique no cabeçalho da tabela e volta para a primeira
// página.
func (s *Service) ToggleSort(field SortField) SortState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sortState.Toggle(field)
	s.page = 1
	return s.sortState
}

// SetPage navega para a página pedida. Valores fora dos limites são
// ajustados no momento do Snapshot, nunca rejeitados.
func (s *Service) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if page < 1 {
		page = 1
	}
	s.page = page
}
