package repository

import (
	"context"

	"github.com/nanoink/sistema-inspecao-incendio/internal/domain"
)

// CatalogRepository read side of the classification catalogs. The CNAE
// catalog and the height reference table are lookup data: seeded by the
// importer and refreshed from the external catalog service, never edited
// by request handlers.
type CatalogRepository interface {
	GetActivityClassification(ctx context.Context, cnae string) (*domain.ActivityClassification, error)
	ListActivityClassifications(ctx context.Context) ([]domain.ActivityClassification, error)

	ListHeightReferences(ctx context.Context) ([]domain.HeightReference, error)
	GetHeightReference(ctx context.Context, tipo string) (*domain.HeightReference, error)

	// ReplaceActivityClassifications swaps the local CNAE catalog copy for a
	// freshly fetched one, in a single transaction.
	ReplaceActivityClassifications(ctx context.Context, items []domain.ActivityClassification) error
	// UpsertHeightReferences used by the seed importer.
	UpsertHeightReferences(ctx context.Context, items []domain.HeightReference) error
}
