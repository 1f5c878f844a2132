package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/Atheer1324700/Atheer-Sales/infrastructure/database/postgres"
	"github.com/Atheer1324700/Atheer-Sales/internal/domain"
)

const salesSlotsTable = "sales_slots"

// PostgresStore persiste o slot de vendas em uma tabela de slot único: uma
// linha por slot nomeado, com a coleção inteira serializada em jsonb. A
// gravação é sempre um upsert do payload completo.
type PostgresStore struct {
	conn *postgres.Connection
	slot string
}

func NewPostgresStore(conn *postgres.Connection, slot string) *PostgresStore {
	return &PostgresStore{conn: conn, slot: slot}
}

func (s *PostgresStore) Load(ctx context.Context) ([]domain.Sale, error) {
	query, args, err := squirrel.
		Select("payload").
		From(salesSlotsTable).
		Where(squirrel.Eq{"slot": s.slot}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var payload []byte
	row := s.conn.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao ler o slot de vendas: %w", err)
	}

	var sales []domain.Sale
	if err := json.Unmarshal(payload, &sales); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupted, err)
	}

	return sales, nil
}

func (s *PostgresStore) Save(ctx context.Context, sales []domain.Sale) error {
	payload, err := json.Marshal(sales)
	if err != nil {
		return fmt.Errorf("erro ao serializar a coleção de vendas: %w", err)
	}

	query, args, err := squirrel.
		Insert(salesSlotsTable).
		Columns("slot", "payload", "updated_at").
		Values(s.slot, payload, time.Now().UTC()).
		Suffix("ON CONFLICT (slot) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := s.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao gravar o slot de vendas: %w", err)
	}

	return nil
}
