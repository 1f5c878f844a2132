package domain

import (
	"fmt"
	"time"
)

// Date representa uma data de calendário sem componente de hora. Todas as
// comparações do pipeline usam granularidade de dia, então o horário nunca
// pode vazar para dentro do tipo.
type Date struct {
	t time.Time
}

// NewDate cria uma Date a partir de ano, mês e dia.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf trunca um time.Time para a data de calendário correspondente.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// Today retorna a data de calendário atual.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate interpreta uma data no formato YYYY-MM-DD.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, fmt.Errorf("data inválida %q: %w", s, err)
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return d.t.Format(time.DateOnly)
}

// Time retorna a meia-noite UTC do dia.
func (d Date) Time() time.Time { return d.t }

func (d Date) IsZero() bool { return d.t.IsZero() }

func (d Date) Before(o Date) bool { return d.t.Before(o.t) }

func (d Date) After(o Date) bool { return d.t.After(o.t) }

func (d Date) Equal(o Date) bool { return d.t.Equal(o.t) }

// Compare retorna -1, 0 ou 1 na ordem cronológica.
func (d Date) Compare(o Date) int { return d.t.Compare(o.t) }

// AddDays retorna a data deslocada em n dias de calendário.
func (d Date) AddDays(n int) Date {
	return DateOf(d.t.AddDate(0, 0, n))
}

// Day retorna o dia do mês.
func (d Date) Day() int { return d.t.Day() }

// Month retorna o mês.
func (d Date) Month() time.Month { return d.t.Month() }

// MarshalJSON serializa a data como string YYYY-MM-DD, o mesmo formato usado
// no slot de persistência.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON aceita apenas strings YYYY-MM-DD.
func (d *Date) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("data deve ser uma string YYYY-MM-DD: %s", data)
	}

	parsed, err := ParseDate(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}
