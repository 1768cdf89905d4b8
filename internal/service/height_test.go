package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nanoink/sistema-inspecao-incendio/internal/domain"
)

func f64(v float64) *float64 { return &v }

func TestDescribeHeight(t *testing.T) {
	tests := []struct {
		name string
		ref  domain.HeightReference
		want string
	}{
		{"both bounds absent", domain.HeightReference{}, "Um pavimento"},
		{"only max", domain.HeightReference{HMaxM: f64(6)}, "H < 6 m"},
		{"only min", domain.HeightReference{HMinM: f64(23)}, "Acima de 23 m"},
		{"both bounds", domain.HeightReference{HMinM: f64(6), HMaxM: f64(12)}, "6 < H < 12 m"},
		{"fractional bounds keep decimals", domain.HeightReference{HMinM: f64(12.5), HMaxM: f64(23)}, "12.5 < H < 23 m"},
		{"no trailing zeros", domain.HeightReference{HMaxM: f64(6.0)}, "H < 6 m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DescribeHeight(&tt.ref))
		})
	}
}
