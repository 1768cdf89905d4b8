package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnToCode_Complete(t *testing.T) {
	want := map[string]string{
		"ACESSO DE VIATURA NA EDIFICAÇÃO":      "AV",
		"SEGURANÇA ESTRUTURAL CONTRA INCÊNDIO": "SE",
		"CONTROLE DE MATERIAIS DE ACABAMENTO":  "CMAR",
		"SPDA":                                 "SPDA",
		"COMPARTIMENTAÇÃO HORIZONTAL":          "CH",
		"COMPARTIMENTAÇÃO VERTICAL":            "CV",
		"SAÍDAS DE EMERGÊNCIA":                 "SAI",
		"ELEVADOR DE EMERGÊNCIA":               "ELE",
		"ILUMINAÇÃO DE EMERGÊNCIA":             "ILU",
		"SINALIZAÇÃO DE EMERGÊNCIA":            "SIN",
		"CONTROLE DE FUMAÇA":                   "CFU",
		"PRESSURIZAÇÃO DE ESCADA":              "PES",
		"DETECÇÃO DE INCÊNDIO":                 "DET",
		"ALARME DE INCÊNDIO":                   "ALA",
		"EXTINTORES":                           "EXT",
		"HIDRANTE E MANGOTINHOS":               "HID",
		"CHUVEIROS AUTOMÁTICOS":                "CHU",
		"RESFRIAMENTO":                         "RES",
		"ESPUMA":                               "ESP",
		"BRIGADA DE INCÊNDIO":                  "BRI",
		"BRIGADA PROFISSIONAL":                 "BPR",
		"PLANO DE EMERGÊNCIA":                  "PLA",
	}

	assert.Equal(t, want, columnToCode)
	assert.Len(t, columnToCode, 22)
}

func TestMapDenomination(t *testing.T) {
	label, ok := MapDenomination("Térrea")
	assert.True(t, ok)
	assert.Equal(t, "EDIFICAÇÃO TÉRREA", label)

	label, ok = MapDenomination("Alta")
	assert.True(t, ok)
	assert.Equal(t, "EDIFICAÇÃO ALTA", label)

	_, ok = MapDenomination("Subterrânea")
	assert.False(t, ok)

	// lookup is case-sensitive, same as the catalog rows
	_, ok = MapDenomination("alta")
	assert.False(t, ok)
}

func TestIsAffirmative(t *testing.T) {
	assert.True(t, isAffirmative("Sim"))
	assert.True(t, isAffirmative("SIM"))
	assert.True(t, isAffirmative("sim, acima de 750 m²"))
	assert.True(t, isAffirmative("Yes"))
	assert.True(t, isAffirmative("  sim  "))

	assert.False(t, isAffirmative("Não"))
	assert.False(t, isAffirmative("nao"))
	assert.False(t, isAffirmative(""))
	assert.False(t, isAffirmative("-"))
	assert.False(t, isAffirmative("conforme IT"))
}
