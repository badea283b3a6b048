package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedPayload indica que o texto gerado, depois de remover as cercas
// de markdown, não é JSON válido. A busca inteira falha; não há recuperação
// parcial nesta camada.
var ErrMalformedPayload = errors.New("generated content is not valid JSON")

// StripFences remove o invólucro de bloco de código markdown, quando presente.
// Aceita ```json, ``` sem tag de linguagem, ou texto sem cerca nenhuma.
func StripFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	body := trimmed
	if idx := strings.IndexByte(body, '\n'); idx >= 0 {
		body = body[idx+1:]
	} else {
		// cerca e conteúdo na mesma linha
		body = strings.TrimPrefix(body, "```json")
		body = strings.TrimPrefix(body, "```")
	}
	body = strings.TrimSpace(body)
	body = strings.TrimSuffix(body, "```")
	return strings.TrimSpace(body)
}

// Decode desserializa o texto gerado em um valor JSON candidato.
func Decode(text string) (interface{}, error) {
	var value interface{}
	if err := json.Unmarshal([]byte(StripFences(text)), &value); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return value, nil
}
