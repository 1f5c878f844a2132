package insighting

import (
	"context"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/Atheer1324700/Atheer-Sales/infrastructure/integrator/gemini"
	"github.com/Atheer1324700/Atheer-Sales/internal/domain"
	"github.com/Atheer1324700/Atheer-Sales/pkg/log"
)

// Mensagens exibidas no painel quando o serviço externo falha. A falha do
// colaborador nunca derruba o resto do dashboard.
const (
	overviewFallbackMessage = "عذرًا، لم نتمكن من إنشاء التحليلات في الوقت الحالي."
	queryFailureMessage     = "عذرًا، لم نتمكن من معالجة سؤالك في الوقت الحالي."
)

// ErrStaleResponse indica que uma resposta chegou depois de uma requisição
// mais nova ter sido emitida. A resposta é descartada: vale sempre a última
// requisição emitida, não a última que resolveu.
var ErrStaleResponse = errors.New("resposta de insight obsoleta descartada")

// State é o estado visível do painel de insights.
type State struct {
	Overview   string               `json:"overview"`
	Transcript []domain.ChatMessage `json:"transcript"`
	Error      string               `json:"error,omitempty"`
	Busy       bool                 `json:"busy"`
}

// Service gera os insights de linguagem natural do dashboard a partir de um
// recorte resumido das vendas, mantendo a transcrição da conversa e o
// estado de erro do painel.
type Service struct {
	client gemini.Client

	mu         sync.Mutex
	seq        uint64
	inFlight   int
	overview   string
	errMsg     string
	transcript []domain.ChatMessage
}

func NewService(client gemini.Client) *Service {
	return &Service{client: client}
}

// Overview gera a análise inicial do painel. Uma atualização descarta a
// conversa anterior. Falha do modelo degrada para uma mensagem fixa e um
// estado de erro visível; nunca propaga a falha para o chamador.
func (s *Service) Overview(ctx context.Context, sales []domain.Sale) (string, error) {
	prompt, err := overviewPrompt(sales)
	if err != nil {
		return "", errors.Wrap(err, "erro ao montar o prompt de análise")
	}

	s.mu.Lock()
	s.seq++
	token := s.seq
	s.inFlight++
	s.errMsg = ""
	s.transcript = nil
	s.mu.Unlock()

	text, callErr := s.client.GenerateContent(ctx, prompt)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight--

	if token != s.seq {
		log.ForContext(ctx).WithField("token", token).Debug("insights: resposta obsoleta descartada")
		return "", ErrStaleResponse
	}

	if callErr != nil {
		log.ForContext(ctx).WithError(callErr).Error("insights: falha ao gerar a análise")

		s.overview = overviewFallbackMessage
		s.errMsg = overviewFallbackMessage
		return s.overview, nil
	}

	s.overview = text
	return text, nil
}

// Ask responde uma pergunta livre sobre o recorte de vendas. A mensagem do
// usuário entra na transcrição imediatamente; a resposta do assistente só
// entra se esta ainda for a requisição mais recente.
func (s *Service) Ask(ctx context.Context, sales []domain.Sale, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", domain.NewValidationError("question", "a pergunta não pode ser vazia")
	}

	prompt, err := queryPrompt(sales, question)
	if err != nil {
		return "", errors.Wrap(err, "erro ao montar o prompt de pergunta")
	}

	s.mu.Lock()
	s.seq++
	token := s.seq
	s.inFlight++
	s.errMsg = ""
	s.transcript = append(s.transcript, domain.ChatMessage{
		Sender: domain.SenderUser,
		Text:   question,
	})
	s.mu.Unlock()

	answer, callErr := s.client.GenerateContent(ctx, prompt)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight--

	if token != s.seq {
		log.ForContext(ctx).WithField("token", token).Debug("insights: resposta obsoleta descartada")
		return "", ErrStaleResponse
	}

	if callErr != nil {
		log.ForContext(ctx).WithError(callErr).Error("insights: falha ao responder a pergunta")

		// A transcrição fica só com a pergunta do usuário; o painel mostra
		// o erro e o reenvio é por iniciativa do usuário
		s.errMsg = queryFailureMessage
		return "", errors.Wrap(callErr, queryFailureMessage)
	}

	s.transcript = append(s.transcript, domain.ChatMessage{
		Sender: domain.SenderAssistant,
		Text:   answer,
	})

	return answer, nil
}

// State devolve uma cópia do estado atual do painel.
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	transcript := make([]domain.ChatMessage, len(s.transcript))
	copy(transcript, s.transcript)

	return State{
		Overview:   s.overview,
		Transcript: transcript,
		Error:      s.errMsg,
		Busy:       s.inFlight > 0,
	}
}

// Invalidate descarta a análise e a conversa atuais. Chamado sempre que a
// base de vendas muda, já que os insights derivam dela.
func (s *Service) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++ // invalida qualquer resposta ainda em trânsito
	s.overview = ""
	s.errMsg = ""
	s.transcript = nil
}
