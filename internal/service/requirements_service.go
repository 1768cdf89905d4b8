package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nanoink/sistema-inspecao-incendio/internal/domain"
	"github.com/nanoink/sistema-inspecao-incendio/internal/repository"
)

// AssessmentInput one row of the compliance assessment form.
type AssessmentInput struct {
	ExigenciaID string  `json:"exigencia_id"`
	Atende      bool    `json:"atende"`
	Observacoes *string `json:"observacoes,omitempty"`
}

// RequirementsService read and assessment operations on a company's
// requirement set. Derivation itself lives in Resolver/Synchronizer; this
// service only exposes the stored set and the inspector's judgments on it.
type RequirementsService struct {
	companyReqRepo repository.CompanyRequirementsRepository
	resolver       *Resolver
	logger         *zap.Logger
}

func NewRequirementsService(
	companyReqRepo repository.CompanyRequirementsRepository,
	resolver *Resolver,
	logger *zap.Logger,
) *RequirementsService {
	return &RequirementsService{
		companyReqRepo: companyReqRepo,
		resolver:       resolver,
		logger:         logger,
	}
}

func (s *RequirementsService) ListByCompany(ctx context.Context, empresaID string) ([]repository.CompanyRequirementRow, error) {
	return s.companyReqRepo.ListByCompany(ctx, empresaID)
}

// Preview runs the resolution engine against a hypothetical profile without
// touching any stored set. The registration form uses it to show which
// requirements a pending save would produce.
func (s *RequirementsService) Preview(ctx context.Context, profile domain.ResolutionProfile) (*Resolution, error) {
	return s.resolver.Resolve(ctx, profile)
}

// SaveAssessments replaces the company's stored assessments. The form always
// posts the whole set, so the write is the same replace-all used by the
// synchronizer.
func (s *RequirementsService) SaveAssessments(ctx context.Context, empresaID string, inputs []AssessmentInput) error {
	if empresaID == "" {
		return fmt.Errorf("%w: empresa_id is required", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	records := make([]domain.CompanyRequirement, 0, len(inputs))
	for _, in := range inputs {
		if in.ExigenciaID == "" {
			return fmt.Errorf("%w: exigencia_id is required", domain.ErrInvalidInput)
		}
		records = append(records, domain.CompanyRequirement{
			ID:          uuid.NewString(),
			EmpresaID:   empresaID,
			ExigenciaID: in.ExigenciaID,
			Atende:      in.Atende,
			Observacoes: in.Observacoes,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	if err := s.companyReqRepo.ReplaceAll(ctx, empresaID, records); err != nil {
		return err
	}

	s.logger.Info("assessments saved",
		zap.String("empresa_id", empresaID),
		zap.Int("requirement_count", len(records)),
	)
	return nil
}
