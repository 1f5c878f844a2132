package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/Atheer1324700/Atheer-Sales/internal/domain"
)

// FileStore persiste o slot de vendas como um snapshot JSON no disco. É o
// backend padrão para uso local, equivalente ao slot de key-value do
// navegador.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(_ context.Context) ([]domain.Sale, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao ler o snapshot de vendas")
	}

	var sales []domain.Sale
	if err := json.Unmarshal(data, &sales); err != nil {
		return nil, errors.Wrap(ErrCorrupted, err.Error())
	}

	return sales, nil
}

func (s *FileStore) Save(_ context.Context, sales []domain.Sale) error {
	data, err := json.Marshal(sales)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar a coleção de vendas")
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "erro ao criar o diretório do snapshot")
		}
	}

	// Grava em arquivo temporário e renomeia para o slot nunca ficar com
	// uma escrita pela metade
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrap(err, "erro ao gravar o snapshot de vendas")
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return errors.Wrap(err, "erro ao substituir o snapshot de vendas")
	}

	return nil
}
