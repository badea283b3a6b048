package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lucasferreira/fluentia/internal/config"
)

// Provider envia um prompt ao serviço de geração e devolve o texto bruto
// produzido pelo modelo. Nenhuma interpretação do conteúdo acontece aqui.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// TransportError indica falha de rede ou de status HTTP ao alcançar o serviço
// de geração. Nunca há retry automático: a decisão fica com o usuário.
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("generation service returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("generation service unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

type flowiseProvider struct {
	endpoint string
	client   *http.Client
}

// NewFlowiseProvider cria um provider para um endpoint de predição Flowise.
// O contrato do envelope é mínimo: um campo "text" com todo o conteúdo gerado.
func NewFlowiseProvider(endpoint string) Provider {
	return &flowiseProvider{
		endpoint: endpoint,
		client:   http.DefaultClient,
	}
}

func (p *flowiseProvider) Generate(ctx context.Context, prompt string) (string, error) {
	log := config.WithContext(ctx)

	body, err := json.Marshal(map[string]string{"question": prompt})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("ngrok-skip-browser-warning", "true")

	resp, err := p.client.Do(req)
	if err != nil {
		log.WithError(err).Error("Falha ao alcançar o serviço de geração")
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Errorf("Serviço de geração respondeu com status %d", resp.StatusCode)
		return "", &TransportError{StatusCode: resp.StatusCode}
	}

	var envelope struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return "", &TransportError{Err: fmt.Errorf("invalid response envelope: %w", err)}
	}
	if envelope.Text == "" {
		return "", &TransportError{Err: fmt.Errorf("response envelope has no text field")}
	}

	return envelope.Text, nil
}
