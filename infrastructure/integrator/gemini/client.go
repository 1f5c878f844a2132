package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/Atheer1324700/Atheer-Sales/internal/config"
)

//go:generate mockgen -source=client.go -destination=mocks/client.go -package=mocks

// Client abstrai a chamada de geração de texto do Gemini. O serviço de
// insights só precisa de prompt -> texto; o resto do protocolo fica aqui.
type Client interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

type GeminiClient struct {
	httpClient *http.Client
	config     config.Gemini
}

func NewClient(cfg *config.Config) Client {
	return &GeminiClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg.Gemini,
	}
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateContent envia o prompt para o endpoint generateContent do modelo
// configurado e retorna o texto do primeiro candidato.
func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", errors.Wrap(err, "erro ao serializar a requisição do Gemini")
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.config.BaseURL, c.config.Model)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "erro ao criar a requisição do Gemini")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.config.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "erro ao chamar o Gemini")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "erro ao ler a resposta do Gemini")
	}

	var parsed generateContentResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", errors.Wrap(err, "erro ao interpretar a resposta do Gemini")
	}

	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil {
			return "", errors.Errorf("Gemini respondeu %d: %s", resp.StatusCode, parsed.Error.Message)
		}
		return "", errors.Errorf("Gemini respondeu status %s", resp.Status)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("resposta do Gemini não contém candidatos")
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
