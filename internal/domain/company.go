package domain

import "time"

// Company 注册企业 (empresa table).
// Classification columns (grupo, divisao, carga_incendio_mj_m2, ...) are
// denormalized from the CNAE catalog at save time; GrauRisco is a cached
// derivation and must be recomputed whenever fire load or occupants change.
type Company struct {
	ID           string `db:"id"`
	RazaoSocial  string `db:"razao_social"`
	NomeFantasia string `db:"nome_fantasia"`
	CNPJ         string `db:"cnpj"`
	Responsavel  string `db:"responsavel"`
	Email        string `db:"email"`
	Telefone     string `db:"telefone"`

	// Address
	CEP    string `db:"cep"`
	Rua    string `db:"rua"`
	Numero string `db:"numero"`
	Bairro string `db:"bairro"`
	Cidade string `db:"cidade"`
	Estado string `db:"estado"`

	// Classification (from CNAE catalog)
	CNAE              string  `db:"cnae"`
	Grupo             string  `db:"grupo"`
	OcupacaoUso       string  `db:"ocupacao_uso"`
	Divisao           string  `db:"divisao"`
	Descricao         string  `db:"descricao"`
	CargaIncendioMJM2 float64 `db:"carga_incendio_mj_m2"`

	// Building
	AlturaTipo        string  `db:"altura_tipo"`
	AlturaDenominacao string  `db:"altura_denominacao"`
	AlturaDescricao   string  `db:"altura_descricao"`
	AreaM2            float64 `db:"area_m2"`
	NumeroOcupantes   int     `db:"numero_ocupantes"`

	GrauRisco Grade `db:"grau_risco"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ResolutionProfile is the immutable input slice of a company the
// requirement resolution engine works on.
type ResolutionProfile struct {
	Divisao           string
	AlturaTipo        string
	AlturaDenominacao string
	AreaM2            float64
}

// Profile extracts the resolution inputs from a company record.
func (c *Company) Profile() ResolutionProfile {
	return ResolutionProfile{
		Divisao:           c.Divisao,
		AlturaTipo:        c.AlturaTipo,
		AlturaDenominacao: c.AlturaDenominacao,
		AreaM2:            c.AreaM2,
	}
}

// ResyncTriggered reports whether an update from old to new touches one of
// the inputs that invalidates the stored requirement set: division, area or
// height classification. Pure detail edits (name, phone, email) never
// trigger a resync.
func ResyncTriggered(old, new *Company) bool {
	return old.Divisao != new.Divisao ||
		old.AreaM2 != new.AreaM2 ||
		old.AlturaTipo != new.AlturaTipo
}
