package client

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/nanoink/sistema-inspecao-incendio/internal/domain"
)

// LookupRecord one row of the authoritative requirement table: the key
// columns identifying the row plus the category columns whose values say
// whether each safety measure is required ("Sim ..." / "Não ...").
type LookupRecord struct {
	Divisao string
	Altura  string
	Columns map[string]string
}

// RequirementLookup contract of the external required-by-division source.
type RequirementLookup interface {
	FetchByDivision(ctx context.Context, divisao string) ([]LookupRecord, error)
}

// ExigenciaLookupClient resty client for the external requirement table.
// The source is authoritative for tall/large buildings and changes
// independently of the local criteria table; it is consulted read-only and
// any transport or shape failure maps to domain.ErrLookupUnavailable so the
// resolver can degrade to an empty set with a warning.
type ExigenciaLookupClient struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

func NewExigenciaLookupClient(baseURL string, timeout time.Duration, logger *zap.Logger) *ExigenciaLookupClient {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &ExigenciaLookupClient{
		httpClient: httpClient,
		logger:     logger,
	}
}

var _ RequirementLookup = (*ExigenciaLookupClient)(nil)

func (c *ExigenciaLookupClient) FetchByDivision(ctx context.Context, divisao string) ([]LookupRecord, error) {
	var payload []map[string]any
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("divisao", divisao).
		SetResult(&payload).
		Get("")
	if err != nil {
		c.logger.Warn("requirement lookup call failed",
			zap.String("divisao", divisao),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", domain.ErrLookupUnavailable, err)
	}
	if resp.IsError() {
		c.logger.Warn("requirement lookup returned error status",
			zap.String("divisao", divisao),
			zap.Int("status_code", resp.StatusCode()),
		)
		return nil, fmt.Errorf("%w: status %d", domain.ErrLookupUnavailable, resp.StatusCode())
	}

	records := make([]LookupRecord, 0, len(payload))
	for _, raw := range payload {
		records = append(records, normalizeLookupRecord(raw))
	}

	c.logger.Debug("requirement lookup fetched",
		zap.String("divisao", divisao),
		zap.Int("record_count", len(records)),
	)

	return records, nil
}

// normalizeLookupRecord separates the identifying keys from the category
// columns. Every remaining string-valued column is kept verbatim; the
// resolver decides which ones are affirmative.
func normalizeLookupRecord(raw map[string]any) LookupRecord {
	rec := LookupRecord{
		Divisao: stringField(raw, "DIVISÃO", "DIVISAO", "divisao"),
		Altura:  stringField(raw, "ALTURA", "altura", "DENOMINAÇÃO", "DENOMINACAO"),
		Columns: make(map[string]string),
	}
	for k, v := range raw {
		switch k {
		case "DIVISÃO", "DIVISAO", "divisao", "ALTURA", "altura", "DENOMINAÇÃO", "DENOMINACAO":
			continue
		}
		if s, ok := v.(string); ok {
			rec.Columns[k] = s
		}
	}
	return rec
}
