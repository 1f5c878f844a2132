package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro expostos pela API
const (
	// Erros de validação (entrada do pipeline de mutação)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros do serviço de insights
	ErrInsightUnavailable = "INS_001" // Serviço de insights indisponível
	ErrEmptyQuestion      = "INS_002" // Pergunta vazia

	// Erros do servidor
	ErrInternalServer  = "SRV_001" // Erro interno do servidor
	ErrStorageFailure  = "SRV_002" // Falha ao gravar o slot de persistência
	ErrExternalService = "SRV_003" // Erro em serviço externo
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrEmptyQuestion:       http.StatusBadRequest,
	ErrInsightUnavailable:  http.StatusBadGateway,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrStorageFailure:      http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
