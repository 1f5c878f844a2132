package selling

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/Atheer1324700/Atheer-Sales/infrastructure/storage"
	"github.com/Atheer1324700/Atheer-Sales/internal/domain"
	"github.com/Atheer1324700/Atheer-Sales/pkg/log"
	"github.com/Atheer1324700/Atheer-Sales/pkg/utils"
)

// Delayer simula a latência de rede de uma mutação. A implementação real
// dorme; os testes injetam um Delayer imediato para não depender de tempo.
type Delayer func(ctx context.Context) error

// SleepDelayer retorna um Delayer que aguarda a duração configurada,
// respeitando o cancelamento do contexto.
func SleepDelayer(d time.Duration) Delayer {
	return func(ctx context.Context) error {
		if d <= 0 {
			return nil
		}

		timer := time.NewTimer(d)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			return nil
		}
	}
}

// SaleInput é a entrada bruta do formulário de nova venda.
type SaleInput struct {
	Category     string          `json:"category"`
	Product      string          `json:"product"`
	Region       string          `json:"region"`
	CustomerName string          `json:"customerName"`
	UnitsSold    int             `json:"unitsSold"`
	Price        decimal.Decimal `json:"price"`
	Date         domain.Date     `json:"date"`
}

// Service é o Record Store e o pipeline de mutação: valida e cria vendas,
// remove por identidade e mantém o slot persistido espelhando a coleção em
// memória. Toda gravação substitui a coleção inteira.
type Service struct {
	store     storage.Store
	delay     Delayer
	seedCount int

	mu    sync.RWMutex
	sales []domain.Sale

	pending atomic.Int32
}

func NewService(store storage.Store, seedCount int, delay Delayer) *Service {
	if delay == nil {
		delay = func(context.Context) error { return nil }
	}

	return &Service{
		store:     store,
		delay:     delay,
		seedCount: seedCount,
	}
}

// Load carrega a coleção do slot persistido. Quando o slot não existe, um
// conjunto inicial é sintetizado e persistido. Falha de leitura ou de parse
// nunca é fatal: cai para os dados sintetizados sem sobrescrever o slot.
func (s *Service) Load(ctx context.Context) error {
	logger := log.ForContext(ctx)

	sales, err := s.store.Load(ctx)
	if err != nil {
		logger.WithError(err).Warn("sales: falha ao carregar o slot, usando dados sintetizados")

		s.setSales(storage.GenerateSeedData(s.seedCount))
		return nil
	}

	if sales == nil {
		logger.WithField("seed_count", s.seedCount).Info("sales: slot vazio, semeando conjunto inicial")

		seeded := storage.GenerateSeedData(s.seedCount)
		if err := s.store.Save(ctx, seeded); err != nil {
			logger.WithError(err).Warn("sales: falha ao persistir o conjunto inicial")
		}

		s.setSales(seeded)
		return nil
	}

	logger.WithField("count", len(sales)).Info("sales: coleção carregada do slot")
	s.setSales(sales)
	return nil
}

func (s *Service) setSales(sales []domain.Sale) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sales = sales
}

// All retorna uma cópia da coleção atual.
func (s *Service) All() []domain.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Sale, len(s.sales))
	copy(out, s.sales)
	return out
}

// Pending informa quantas mutações estão em andamento, para que a UI possa
// desabilitar envios duplicados.
func (s *Service) Pending() int {
	return int(s.pending.Load())
}

// CreateSale valida a entrada, cria a venda com identidades novas e a
// acrescenta à coleção, reordenando por data antes de persistir. Em caso de
// rejeição nenhum estado muda.
func (s *Service) CreateSale(ctx context.Context, input SaleInput) (*domain.Sale, error) {
	sale, err := s.validateAndBuild(input)
	if err != nil {
		return nil, err
	}

	s.pending.Add(1)
	defer s.pending.Add(-1)

	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// A ordem de inserção não sobrevive entre sessões: a coleção é
	// reordenada por data a cada inclusão
	next := make([]domain.Sale, 0, len(s.sales)+1)
	next = append(next, s.sales...)
	next = append(next, *sale)
	domain.SortSalesByDate(next)

	if err := s.store.Save(ctx, next); err != nil {
		return nil, errors.Wrap(err, "erro ao persistir a coleção após inclusão")
	}

	s.sales = next

	log.ForContext(ctx).WithFields(log.Fields{
		"sale_id": sale.ID,
		"product": sale.Product,
		"count":   len(next),
	}).Info("sales: venda adicionada")

	return sale, nil
}

// DeleteSale remove a venda com o ID informado. Remover um ID inexistente é
// um no-op bem-sucedido, não um erro.
func (s *Service) DeleteSale(ctx context.Context, id string) error {
	s.pending.Add(1)
	defer s.pending.Add(-1)

	if err := s.delay(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]domain.Sale, 0, len(s.sales))
	for _, sale := range s.sales {
		if sale.ID != id {
			next = append(next, sale)
		}
	}

	if err := s.store.Save(ctx, next); err != nil {
		return errors.Wrap(err, "erro ao persistir a coleção após remoção")
	}

	removed := len(s.sales) - len(next)
	s.sales = next

	log.ForContext(ctx).WithFields(log.Fields{
		"sale_id": id,
		"removed": removed,
		"count":   len(next),
	}).Info("sales: remoção concluída")

	return nil
}

func (s *Service) validateAndBuild(input SaleInput) (*domain.Sale, error) {
	category := strings.TrimSpace(input.Category)
	product := strings.TrimSpace(input.Product)
	region := strings.TrimSpace(input.Region)
	customerName := strings.TrimSpace(input.CustomerName)

	switch {
	case category == "":
		return nil, domain.NewValidationError("category", "a categoria é obrigatória")
	case product == "":
		return nil, domain.NewValidationError("product", "o produto é obrigatório")
	case region == "":
		return nil, domain.NewValidationError("region", "a região é obrigatória")
	case customerName == "":
		return nil, domain.NewValidationError("customerName", "o nome do cliente é obrigatório")
	}

	if input.UnitsSold <= 0 {
		return nil, domain.NewValidationError("unitsSold", "as unidades vendidas devem ser maiores que zero")
	}

	if input.Price.IsNegative() {
		return nil, domain.NewValidationError("price", "o preço não pode ser negativo")
	}

	date := input.Date
	if date.IsZero() {
		date = domain.Today()
	}
	if date.After(domain.Today()) {
		return nil, domain.NewValidationError("date", "a data da venda não pode estar no futuro")
	}

	saleID, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar o ID da venda")
	}

	// Clientes criados manualmente nunca são deduplicados por nome: cada
	// venda manual ganha uma identidade de cliente nova
	customerID, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar o ID do cliente")
	}

	return &domain.Sale{
		ID:        "sale_" + saleID,
		Date:      date,
		Product:   product,
		Category:  category,
		Region:    region,
		Revenue:   utils.RoundMoney(input.Price.Mul(decimal.NewFromInt(int64(input.UnitsSold)))),
		UnitsSold: input.UnitsSold,
		Customer: domain.Customer{
			ID:   "cust_" + customerID,
			Name: customerName,
		},
	}, nil
}
