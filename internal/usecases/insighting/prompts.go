package insighting

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"

	"github.com/Atheer1324700/Atheer-Sales/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Limites de registros embutidos nos prompts. O modelo não precisa (nem
// comporta) a coleção inteira; um recorte recente é suficiente.
const (
	overviewRecordLimit = 50
	queryRecordLimit    = 100
)

// promptRecord é a projeção resumida de uma venda enviada ao modelo. O modo
// de pergunta inclui também o cliente e as unidades.
type promptRecord struct {
	Date         string          `json:"date"`
	Product      string          `json:"product"`
	Category     string          `json:"category"`
	Region       string          `json:"region"`
	Revenue      decimal.Decimal `json:"revenue"`
	CustomerName string          `json:"customerName,omitempty"`
	UnitsSold    int             `json:"unitsSold,omitempty"`
}

func trimRecords(sales []domain.Sale, limit int, withCustomer bool) []promptRecord {
	if len(sales) > limit {
		sales = sales[:limit]
	}

	out := make([]promptRecord, 0, len(sales))
	for _, sale := range sales {
		record := promptRecord{
			Date:     sale.Date.String(),
			Product:  sale.Product,
			Category: sale.Category,
			Region:   sale.Region,
			Revenue:  sale.Revenue,
		}
		if withCustomer {
			record.CustomerName = sale.Customer.Name
			record.UnitsSold = sale.UnitsSold
		}
		out = append(out, record)
	}

	return out
}

func overviewPrompt(sales []domain.Sale) (string, error) {
	payload, err := json.Marshal(trimRecords(sales, overviewRecordLimit, false))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`You are a professional business intelligence analyst.
Based on the following JSON data of recent sales, provide a concise analysis in Arabic.
Your analysis should be 3-4 bullet points.
- Identify the top-performing product or category.
- Point out any significant trends in revenue or sales over time.
- Highlight the most profitable region.
- Conclude with one scannable, actionable recommendation for the business manager.

Your entire response MUST be in Arabic.

Data:
%s`, payload), nil
}

func queryPrompt(sales []domain.Sale, question string) (string, error) {
	payload, err := json.Marshal(trimRecords(sales, queryRecordLimit, true))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`You are a helpful business intelligence assistant.
A user is asking a question about their sales data.
Provide a clear and concise answer in Arabic based on the data provided.

User's Question: %q

Your entire response MUST be in Arabic.

Sales Data (JSON format):
%s`, question, payload), nil
}
