package selling

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Atheer1324700/Atheer-Sales/infrastructure/storage"
	"github.com/Atheer1324700/Atheer-Sales/infrastructure/storage/mocks"
	"github.com/Atheer1324700/Atheer-Sales/internal/domain"
)

func newTestService(t *testing.T) (*Service, *mocks.MockStore) {
	t.Helper()

	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)

	return NewService(store, 10, nil), store
}

func validInput() SaleInput {
	return SaleInput{
		Category:     "إلكترونيات",
		Product:      "لابتوب",
		Region:       "الرياض",
		CustomerName: "أحمد محمد",
		UnitsSold:    2,
		Price:        decimal.NewFromInt(500),
		Date:         domain.Today(),
	}
}

func TestService_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("slot vazio semeia e persiste o conjunto inicial", func(t *testing.T) {
		service, store := newTestService(t)

		store.EXPECT().Load(gomock.Any()).Return(nil, nil)
		store.EXPECT().Save(gomock.Any(), gomock.Len(10)).Return(nil)

		require.NoError(t, service.Load(ctx))
		assert.Len(t, service.All(), 10)
	})

	t.Run("slot corrompido cai para dados sintetizados sem persistir", func(t *testing.T) {
		service, store := newTestService(t)

		store.EXPECT().Load(gomock.Any()).Return(nil, errors.Wrap(storage.ErrCorrupted, "payload inválido"))
		// Nenhuma chamada a Save: o slot corrompido não é sobrescrito

		require.NoError(t, service.Load(ctx))
		assert.Len(t, service.All(), 10)
	})

	t.Run("slot existente é carregado como está", func(t *testing.T) {
		service, store := newTestService(t)

		saved := []domain.Sale{{ID: "sale_1", Date: domain.Today()}}
		store.EXPECT().Load(gomock.Any()).Return(saved, nil)

		require.NoError(t, service.Load(ctx))

		got := service.All()
		require.Len(t, got, 1)
		assert.Equal(t, "sale_1", got[0].ID)
	})

	t.Run("falha ao persistir o conjunto inicial não é fatal", func(t *testing.T) {
		service, store := newTestService(t)

		store.EXPECT().Load(gomock.Any()).Return(nil, nil)
		store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disco cheio"))

		require.NoError(t, service.Load(ctx))
		assert.Len(t, service.All(), 10)
	})
}

func TestService_CreateSale(t *testing.T) {
	ctx := context.Background()

	t.Run("venda válida é adicionada e persistida", func(t *testing.T) {
		service, store := newTestService(t)

		store.EXPECT().Load(gomock.Any()).Return([]domain.Sale{}, nil)
		require.NoError(t, service.Load(ctx))

		var persisted []domain.Sale
		store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, sales []domain.Sale) error {
				persisted = sales
				return nil
			},
		)

		sale, err := service.CreateSale(ctx, validInput())
		require.NoError(t, err)

		assert.True(t, len(sale.ID) > len("sale_"))
		assert.Contains(t, sale.ID, "sale_")
		assert.Contains(t, sale.Customer.ID, "cust_")
		assert.Equal(t, "أحمد محمد", sale.Customer.Name)
		assert.Equal(t, "1000.00", sale.Revenue.StringFixed(2))

		require.Len(t, persisted, 1)
		assert.Len(t, service.All(), 1)
	})

	t.Run("inclusões mantêm a coleção ordenada por data", func(t *testing.T) {
		service, store := newTestService(t)

		today := domain.Today()
		existing := []domain.Sale{
			{ID: "sale_old", Date: today.AddDays(-10)},
			{ID: "sale_new", Date: today},
		}
		store.EXPECT().Load(gomock.Any()).Return(existing, nil)
		require.NoError(t, service.Load(ctx))

		store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		input := validInput()
		input.Date = today.AddDays(-5)

		_, err := service.CreateSale(ctx, input)
		require.NoError(t, err)

		got := service.All()
		require.Len(t, got, 3)
		for i := 1; i < len(got); i++ {
			assert.False(t, got[i].Date.Before(got[i-1].Date))
		}
	})

	t.Run("falha de persistência não altera a coleção em memória", func(t *testing.T) {
		service, store := newTestService(t)

		store.EXPECT().Load(gomock.Any()).Return([]domain.Sale{}, nil)
		require.NoError(t, service.Load(ctx))

		store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disco cheio"))

		_, err := service.CreateSale(ctx, validInput())
		require.Error(t, err)
		assert.Empty(t, service.All())
	})

	t.Run("cancelamento do contexto durante a latência simulada aborta a mutação", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStore(ctrl)
		service := NewService(store, 10, SleepDelayer(time.Minute))

		store.EXPECT().Load(gomock.Any()).Return([]domain.Sale{}, nil)
		require.NoError(t, service.Load(ctx))

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := service.CreateSale(cancelled, validInput())
		require.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, service.All())
	})
}

func TestService_CreateSale_Validation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(input *SaleInput)
	}{
		{name: "categoria vazia", mutate: func(i *SaleInput) { i.Category = "  " }},
		{name: "produto vazio", mutate: func(i *SaleInput) { i.Product = "" }},
		{name: "região vazia", mutate: func(i *SaleInput) { i.Region = "" }},
		{name: "cliente vazio", mutate: func(i *SaleInput) { i.CustomerName = "" }},
		{name: "unidades zeradas", mutate: func(i *SaleInput) { i.UnitsSold = 0 }},
		{name: "unidades negativas", mutate: func(i *SaleInput) { i.UnitsSold = -1 }},
		{name: "preço negativo", mutate: func(i *SaleInput) { i.Price = decimal.NewFromInt(-1) }},
		{name: "data futura", mutate: func(i *SaleInput) { i.Date = domain.Today().AddDays(1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, store := newTestService(t)

			store.EXPECT().Load(gomock.Any()).Return([]domain.Sale{}, nil)
			require.NoError(t, service.Load(ctx))

			input := validInput()
			tt.mutate(&input)

			// A rejeição acontece antes da latência e da persistência
			sale, err := service.CreateSale(ctx, input)
			require.Error(t, err)
			assert.True(t, domain.IsValidationError(err))
			assert.Nil(t, sale)
			assert.Empty(t, service.All())
		})
	}
}

func TestService_DeleteSale(t *testing.T) {
	ctx := context.Background()
	today := domain.Today()

	seed := []domain.Sale{
		{ID: "sale_1", Date: today.AddDays(-2)},
		{ID: "sale_2", Date: today.AddDays(-1)},
		{ID: "sale_3", Date: today},
	}

	t.Run("remove a venda pelo ID", func(t *testing.T) {
		service, store := newTestService(t)

		store.EXPECT().Load(gomock.Any()).Return(seed, nil)
		require.NoError(t, service.Load(ctx))

		store.EXPECT().Save(gomock.Any(), gomock.Len(2)).Return(nil)

		require.NoError(t, service.DeleteSale(ctx, "sale_2"))

		got := service.All()
		require.Len(t, got, 2)
		assert.Equal(t, "sale_1", got[0].ID)
		assert.Equal(t, "sale_3", got[1].ID)
	})

	t.Run("remover um ID inexistente é um no-op bem-sucedido", func(t *testing.T) {
		service, store := newTestService(t)

		store.EXPECT().Load(gomock.Any()).Return(seed, nil)
		require.NoError(t, service.Load(ctx))

		store.EXPECT().Save(gomock.Any(), gomock.Len(3)).Return(nil)

		require.NoError(t, service.DeleteSale(ctx, "sale_999"))
		assert.Len(t, service.All(), 3)
	})
}
