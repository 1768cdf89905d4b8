package client

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/nanoink/sistema-inspecao-incendio/internal/domain"
)

// CNAECatalogClient read-only client for the external CNAE catalog service.
// The payload is untyped and its key names vary between exports, so all
// normalization happens here and the rest of the system only ever sees
// domain.ActivityClassification.
type CNAECatalogClient struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

func NewCNAECatalogClient(baseURL string, timeout time.Duration, logger *zap.Logger) *CNAECatalogClient {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(3).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		SetHeader("Accept", "application/json")

	return &CNAECatalogClient{
		httpClient: httpClient,
		logger:     logger,
	}
}

// FetchCatalog downloads the full CNAE catalog and normalizes it into typed
// records, deduplicated by CNAE code (first occurrence wins).
func (c *CNAECatalogClient) FetchCatalog(ctx context.Context) ([]domain.ActivityClassification, error) {
	var payload []map[string]any
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&payload).
		Get("")
	if err != nil {
		c.logger.Error("CNAE catalog fetch failed", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch cnae catalog: %w", err)
	}
	if resp.IsError() {
		c.logger.Error("CNAE catalog service returned error",
			zap.Int("status_code", resp.StatusCode()),
		)
		return nil, fmt.Errorf("cnae catalog service returned status %d", resp.StatusCode())
	}

	seen := make(map[string]bool, len(payload))
	items := make([]domain.ActivityClassification, 0, len(payload))
	for _, raw := range payload {
		item := normalizeCNAERecord(raw)
		if item.CNAE == "" || seen[item.CNAE] {
			continue
		}
		seen[item.CNAE] = true
		items = append(items, item)
	}

	c.logger.Info("Fetched CNAE catalog",
		zap.Int("raw_count", len(payload)),
		zap.Int("unique_count", len(items)),
	)

	return items, nil
}

// normalizeCNAERecord maps the duck-typed export row onto the typed record.
// Unknown or missing keys default to empty string / zero; grupo is always
// re-derived from the division rather than trusted from the payload.
func normalizeCNAERecord(raw map[string]any) domain.ActivityClassification {
	divisao := stringField(raw, "DIVISÃO", "DIVISAO", "divisao")
	return domain.ActivityClassification{
		CNAE:              stringField(raw, "CNAE", "cnae"),
		Grupo:             domain.GroupFromDivision(divisao),
		OcupacaoUso:       stringField(raw, "OCUPAÇÃO/USO", "OCUPACAO/USO", "ocupacao_uso"),
		Divisao:           divisao,
		Descricao:         stringField(raw, "DESCRIÇÃO", "DESCRICAO", "descricao"),
		CargaIncendioMJM2: numberField(raw, "CARGA DE INCÊNDIO (MJ/m2)", "CARGA DE INCENDIO (MJ/m2)", "carga_incendio_mj_m2"),
	}
}

func stringField(raw map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := raw[k]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

func numberField(raw map[string]any, keys ...string) float64 {
	for _, k := range keys {
		v, ok := raw[k]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			return n
		case string:
			if f, err := strconv.ParseFloat(n, 64); err == nil {
				return f
			}
		}
	}
	return 0
}
