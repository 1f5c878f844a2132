package storage

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Atheer1324700/Atheer-Sales/internal/domain"
)

//go:generate mockgen -source=storage.go -destination=mocks/storage.go -package=mocks

// ErrCorrupted indica que o slot existe mas o conteúdo não pôde ser
// interpretado. O chamador trata isso como recuperável: cai para os dados
// semeados sem sobrescrever o slot.
var ErrCorrupted = errors.New("conteúdo do slot de vendas é inválido")

// Store é o slot nomeado que guarda a coleção inteira de vendas
// serializada. Toda gravação substitui o conteúdo por completo; nunca há
// atualização parcial.
type Store interface {
	// Load lê a coleção persistida. Retorna (nil, nil) quando o slot ainda
	// não existe e ErrCorrupted quando existe mas não pôde ser interpretado.
	Load(ctx context.Context) ([]domain.Sale, error)

	// Save sobrescreve o slot com a coleção completa.
	Save(ctx context.Context, sales []domain.Sale) error
}
