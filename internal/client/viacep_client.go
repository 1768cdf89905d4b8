package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/nanoink/sistema-inspecao-incendio/internal/domain"
)

// Address resolved postal-code data.
type Address struct {
	CEP    string `json:"cep"`
	Rua    string `json:"rua"`
	Bairro string `json:"bairro"`
	Cidade string `json:"cidade"`
	Estado string `json:"estado"`
}

type viaCEPResponse struct {
	CEP        string `json:"cep"`
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	Erro       bool   `json:"erro"`
}

// ViaCEPClient address lookup by CEP. Pure I/O, no domain logic.
type ViaCEPClient struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

func NewViaCEPClient(baseURL string, timeout time.Duration, logger *zap.Logger) *ViaCEPClient {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &ViaCEPClient{
		httpClient: httpClient,
		logger:     logger,
	}
}

// Lookup resolves a CEP (8 digits, punctuation tolerated) to an address.
func (c *ViaCEPClient) Lookup(ctx context.Context, cep string) (*Address, error) {
	digits := onlyDigits(cep)
	if len(digits) != 8 {
		return nil, fmt.Errorf("%w: cep must have 8 digits", domain.ErrInvalidInput)
	}

	var payload viaCEPResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&payload).
		Get(fmt.Sprintf("/ws/%s/json/", digits))
	if err != nil {
		c.logger.Warn("viacep lookup failed", zap.String("cep", digits), zap.Error(err))
		return nil, fmt.Errorf("failed to look up cep: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("viacep returned status %d", resp.StatusCode())
	}
	if payload.Erro {
		return nil, domain.ErrNotFound
	}

	return &Address{
		CEP:    payload.CEP,
		Rua:    payload.Logradouro,
		Bairro: payload.Bairro,
		Cidade: payload.Localidade,
		Estado: payload.UF,
	}, nil
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
