package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nanoink/sistema-inspecao-incendio/internal/domain"
	"github.com/nanoink/sistema-inspecao-incendio/internal/repository"
)

// Synchronizer reconciles a company's stored compliance records against a
// freshly resolved requirement set. The write is a transactional
// replace-all: every record is recreated, and by default every assessment
// returns to pending (atende=false, observacoes=nil).
//
// preserveAssessments keeps atende/observacoes for requirement ids present
// both before and after the resync. Which policy is wanted is a deployment
// decision, hence the flag.
type Synchronizer struct {
	companyReqRepo      repository.CompanyRequirementsRepository
	preserveAssessments bool
	logger              *zap.Logger
}

func NewSynchronizer(
	companyReqRepo repository.CompanyRequirementsRepository,
	preserveAssessments bool,
	logger *zap.Logger,
) *Synchronizer {
	return &Synchronizer{
		companyReqRepo:      companyReqRepo,
		preserveAssessments: preserveAssessments,
		logger:              logger,
	}
}

// Sync replaces the company's requirement records with one fresh record per
// requirement in newSet. Returns the written records. On failure the
// previous set is untouched (the repository write is transactional) and the
// error wraps domain.ErrResyncFailed so callers can offer a retry.
func (s *Synchronizer) Sync(ctx context.Context, empresaID string, newSet []domain.RequirementDefinition) ([]domain.CompanyRequirement, error) {
	var previous map[string]domain.CompanyRequirement
	if s.preserveAssessments {
		rows, err := s.companyReqRepo.ListByCompany(ctx, empresaID)
		if err != nil {
			return nil, err
		}
		previous = make(map[string]domain.CompanyRequirement, len(rows))
		for _, row := range rows {
			previous[row.Record.ExigenciaID] = row.Record
		}
	}

	records := make([]domain.CompanyRequirement, 0, len(newSet))
	for _, def := range newSet {
		rec := domain.CompanyRequirement{
			ID:          uuid.NewString(),
			EmpresaID:   empresaID,
			ExigenciaID: def.ID,
			Atende:      false,
			Observacoes: nil,
		}
		if prev, ok := previous[def.ID]; ok {
			rec.Atende = prev.Atende
			rec.Observacoes = prev.Observacoes
		}
		records = append(records, rec)
	}

	if err := s.companyReqRepo.ReplaceAll(ctx, empresaID, records); err != nil {
		return nil, err
	}

	s.logger.Info("requirement set synchronized",
		zap.String("empresa_id", empresaID),
		zap.Int("requirement_count", len(records)),
		zap.Bool("assessments_preserved", s.preserveAssessments),
	)

	return records, nil
}
