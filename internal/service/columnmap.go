package service

import "strings"

// columnToCode maps each category column of the external requirement table
// to the local requirement code (exigencias_seguranca.codigo). Static and
// exhaustively tested so the 22-entry mapping stays auditable; the resolver
// never infers codes from column names at runtime.
var columnToCode = map[string]string{
	// Acesso e facilidades para operações de socorro
	"ACESSO DE VIATURA NA EDIFICAÇÃO": "AV",

	// Proteção estrutural em situações de incêndio
	"SEGURANÇA ESTRUTURAL CONTRA INCÊNDIO": "SE",
	"CONTROLE DE MATERIAIS DE ACABAMENTO":  "CMAR",
	"SPDA":                                 "SPDA",

	// Restrição ao surgimento e à propagação de incêndio
	"COMPARTIMENTAÇÃO HORIZONTAL": "CH",
	"COMPARTIMENTAÇÃO VERTICAL":   "CV",

	// Facilidades no abandono
	"SAÍDAS DE EMERGÊNCIA":      "SAI",
	"ELEVADOR DE EMERGÊNCIA":    "ELE",
	"ILUMINAÇÃO DE EMERGÊNCIA":  "ILU",
	"SINALIZAÇÃO DE EMERGÊNCIA": "SIN",

	// Controle de fumaça e gases
	"CONTROLE DE FUMAÇA":      "CFU",
	"PRESSURIZAÇÃO DE ESCADA": "PES",

	// Meios de aviso
	"DETECÇÃO DE INCÊNDIO": "DET",
	"ALARME DE INCÊNDIO":   "ALA",

	// Controle de crescimento e supressão de incêndio
	"EXTINTORES":             "EXT",
	"HIDRANTE E MANGOTINHOS": "HID",
	"CHUVEIROS AUTOMÁTICOS":  "CHU",
	"RESFRIAMENTO":           "RES",
	"ESPUMA":                 "ESP",

	// Gerenciamento de risco de incêndio
	"BRIGADA DE INCÊNDIO":  "BRI",
	"BRIGADA PROFISSIONAL": "BPR",
	"PLANO DE EMERGÊNCIA":  "PLA",
}

// denominationLabels bridges the internal altura_ref vocabulary to the
// ALTURA labels the external table uses. A denomination missing here makes
// the external row unmatchable; the resolver then yields empty rather than
// guessing.
var denominationLabels = map[string]string{
	"Térrea":            "EDIFICAÇÃO TÉRREA",
	"Baixa":             "EDIFICAÇÃO BAIXA",
	"Média":             "EDIFICAÇÃO MÉDIA",
	"Medianamente Alta": "EDIFICAÇÃO MEDIANAMENTE ALTA",
	"Alta":              "EDIFICAÇÃO ALTA",
}

// MapDenomination translates an internal height denomination to the
// external table's label.
func MapDenomination(denominacao string) (string, bool) {
	label, ok := denominationLabels[denominacao]
	return label, ok
}

// isAffirmative reports whether a column value marks the measure as
// required: the value starts with a locale "yes" token, case-insensitive.
func isAffirmative(value string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	return strings.HasPrefix(v, "sim") || strings.HasPrefix(v, "yes")
}
