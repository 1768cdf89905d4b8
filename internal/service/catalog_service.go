package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/nanoink/sistema-inspecao-incendio/internal/client"
	"github.com/nanoink/sistema-inspecao-incendio/internal/domain"
	"github.com/nanoink/sistema-inspecao-incendio/internal/repository"
	"github.com/nanoink/sistema-inspecao-incendio/internal/store"
)

const cnaeCatalogCacheKey = "catalog:cnae"

// HeightOption a height reference row plus its rendered descriptor, as the
// registration form consumes it.
type HeightOption struct {
	domain.HeightReference
	Descricao string `json:"descricao"`
}

// CatalogService serves the classification catalogs. CNAE list reads go
// through the redis cache; the database copy is the fallback and the
// external catalog service is only consulted on explicit refresh.
type CatalogService struct {
	catalogRepo repository.CatalogRepository
	cnaeClient  *client.CNAECatalogClient
	kv          store.KV
	cacheTTL    time.Duration
	logger      *zap.Logger
}

func NewCatalogService(
	catalogRepo repository.CatalogRepository,
	cnaeClient *client.CNAECatalogClient,
	kv store.KV,
	ttl time.Duration,
	logger *zap.Logger,
) *CatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,
		cnaeClient:  cnaeClient,
		kv:          kv,
		cacheTTL:    ttl,
		logger:      logger,
	}
}

// GetClassification looks a single CNAE code up in the local catalog copy.
func (s *CatalogService) GetClassification(ctx context.Context, cnae string) (*domain.ActivityClassification, error) {
	return s.catalogRepo.GetActivityClassification(ctx, cnae)
}

// ListClassifications returns the full CNAE catalog, cache first.
func (s *CatalogService) ListClassifications(ctx context.Context) ([]domain.ActivityClassification, error) {
	if cached, err := s.kv.Get(ctx, cnaeCatalogCacheKey); err == nil {
		var items []domain.ActivityClassification
		if err := json.Unmarshal([]byte(cached), &items); err == nil {
			return items, nil
		}
		// poisoned entry, fall through to the database
		_ = s.kv.Del(ctx, cnaeCatalogCacheKey)
	} else if !errors.Is(err, store.ErrMiss) {
		s.logger.Warn("catalog cache read failed", zap.Error(err))
	}

	items, err := s.catalogRepo.ListActivityClassifications(ctx)
	if err != nil {
		return nil, err
	}

	s.cacheCatalog(ctx, items)
	return items, nil
}

// SearchClassifications filters the catalog by code or description
// substring, case-insensitive.
func (s *CatalogService) SearchClassifications(ctx context.Context, query string) ([]domain.ActivityClassification, error) {
	items, err := s.ListClassifications(ctx)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return items, nil
	}

	q := strings.ToLower(query)
	var filtered []domain.ActivityClassification
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.CNAE), q) ||
			strings.Contains(strings.ToLower(it.Descricao), q) {
			filtered = append(filtered, it)
		}
	}
	return filtered, nil
}

// RefreshCatalog fetches the external CNAE catalog, replaces the local
// copy and re-primes the cache. Returns the number of entries loaded.
func (s *CatalogService) RefreshCatalog(ctx context.Context) (int, error) {
	items, err := s.cnaeClient.FetchCatalog(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.catalogRepo.ReplaceActivityClassifications(ctx, items); err != nil {
		return 0, err
	}
	s.cacheCatalog(ctx, items)

	s.logger.Info("CNAE catalog refreshed", zap.Int("entry_count", len(items)))
	return len(items), nil
}

// ListHeightOptions returns the ordered height reference table with the
// rendered descriptor per row.
func (s *CatalogService) ListHeightOptions(ctx context.Context) ([]HeightOption, error) {
	refs, err := s.catalogRepo.ListHeightReferences(ctx)
	if err != nil {
		return nil, err
	}

	options := make([]HeightOption, 0, len(refs))
	for _, ref := range refs {
		options = append(options, HeightOption{
			HeightReference: ref,
			Descricao:       DescribeHeight(&ref),
		})
	}
	return options, nil
}

func (s *CatalogService) cacheCatalog(ctx context.Context, items []domain.ActivityClassification) {
	payload, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := s.kv.Set(ctx, cnaeCatalogCacheKey, string(payload), s.cacheTTL); err != nil {
		s.logger.Warn("catalog cache write failed", zap.Error(err))
	}
}
