package domain

// Remetentes possíveis de uma mensagem da conversa de insights.
const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

// ChatMessage é uma entrada da conversa com o assistente de insights. A
// transcrição é append-only e é descartada quando a base de vendas muda.
type ChatMessage struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}
