package domain

import "time"

// RequirementDefinition 安全要求条目 (exigencias_seguranca table).
// A named regulatory safety measure; Ordem drives presentation order.
type RequirementDefinition struct {
	ID           string  `db:"id"`
	Codigo       string  `db:"codigo"`
	Nome         string  `db:"nome"`
	Categoria    string  `db:"categoria"`
	Subcategoria *string `db:"subcategoria"`
	Ordem        int     `db:"ordem"`

	// Observacao is not a column of exigencias_seguranca: it is carried over
	// from the criteria row that matched during resolution, when one exists.
	Observacao *string `db:"-"`
}

// RequirementCriterion gating rule attached to a requirement
// (exigencias_criterios table). A criterion matches a profile when the
// division is equal and the profile's area/height fall inside the
// (possibly open-ended) bounds.
type RequirementCriterion struct {
	ID          string   `db:"id"`
	ExigenciaID string   `db:"exigencia_id"`
	Divisao     *string  `db:"divisao"`
	AlturaTipo  *string  `db:"altura_tipo"`
	AreaMin     *float64 `db:"area_min"`
	AreaMax     *float64 `db:"area_max"`
	AlturaMin   *float64 `db:"altura_min"`
	AlturaMax   *float64 `db:"altura_max"`
	Observacao  *string  `db:"observacao"`
}

// CompanyRequirement per-company compliance record (empresa_exigencias
// table). The full set for a company is replaced whenever its
// classification inputs change; a freshly synced record starts pending
// (Atende=false, Observacoes=nil).
type CompanyRequirement struct {
	ID          string    `db:"id"`
	EmpresaID   string    `db:"empresa_id"`
	ExigenciaID string    `db:"exigencia_id"`
	Atende      bool      `db:"atende"`
	Observacoes *string   `db:"observacoes"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
