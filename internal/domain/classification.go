package domain

import "strings"

// ActivityClassification CNAE 分类条目 (cnae_catalogo table).
// One immutable row per CNAE code; Grupo is always derived from Divisao.
type ActivityClassification struct {
	CNAE              string  `db:"cnae" json:"cnae"`
	Grupo             string  `db:"grupo" json:"grupo"`
	OcupacaoUso       string  `db:"ocupacao_uso" json:"ocupacao_uso"`
	Divisao           string  `db:"divisao" json:"divisao"`
	Descricao         string  `db:"descricao" json:"descricao"`
	CargaIncendioMJM2 float64 `db:"carga_incendio_mj_m2" json:"carga_incendio_mj_m2"`
}

// GroupFromDivision derives the regulatory group letter: the uppercased
// first character of the division ("F-1" -> "F").
func GroupFromDivision(divisao string) string {
	if divisao == "" {
		return ""
	}
	return strings.ToUpper(divisao[:1])
}

// HeightReference building-height lookup row (altura_ref table).
// Nil bounds are meaningful: both nil means a single-story building.
type HeightReference struct {
	Tipo        string   `db:"tipo" json:"tipo"`
	Denominacao string   `db:"denominacao" json:"denominacao"`
	HMinM       *float64 `db:"h_min_m" json:"h_min_m"`
	HMaxM       *float64 `db:"h_max_m" json:"h_max_m"`
}

// Grade fire-risk grade derived from fire load and occupant count.
type Grade string

const (
	GradeBaixo Grade = "baixo"
	GradeMedio Grade = "medio"
	GradeAlto  Grade = "alto"
)

// Valid reports whether g is one of the three defined grades.
func (g Grade) Valid() bool {
	return g == GradeBaixo || g == GradeMedio || g == GradeAlto
}
