package domain

import "time"

// Inspection renewal-inspection category (inspecoes table).
type Inspection struct {
	ID     string `db:"id"`
	Codigo string `db:"codigo"`
	Nome   string `db:"nome"`
	Tipo   string `db:"tipo"`
	Ordem  int    `db:"ordem"`
}

// ChecklistItem ordered item under an inspection (checklist_itens table).
type ChecklistItem struct {
	ID         string `db:"id"`
	InspecaoID string `db:"inspecao_id"`
	ItemNumero string `db:"item_numero"`
	Descricao  string `db:"descricao"`
	Ordem      int    `db:"ordem"`
}

// ChecklistStatus per-item compliance status.
type ChecklistStatus string

const (
	ChecklistCompliant     ChecklistStatus = "C"
	ChecklistNonCompliant  ChecklistStatus = "NC"
	ChecklistNotApplicable ChecklistStatus = "NA"
)

// Valid reports whether s is one of the three defined statuses.
func (s ChecklistStatus) Valid() bool {
	return s == ChecklistCompliant || s == ChecklistNonCompliant || s == ChecklistNotApplicable
}

// CompanyChecklist per-company checklist answer (empresa_checklist table).
// Independent of the requirement engine; shares only the company FK.
type CompanyChecklist struct {
	ID              string          `db:"id"`
	EmpresaID       string          `db:"empresa_id"`
	ChecklistItemID string          `db:"checklist_item_id"`
	Status          ChecklistStatus `db:"status"`
	Observacoes     *string         `db:"observacoes"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}
