package service

import (
	"fmt"
	"strconv"

	"github.com/nanoink/sistema-inspecao-incendio/internal/domain"
)

// DescribeHeight renders the human-readable height range of a reference row.
// The four presence combinations are the only defined cases, evaluated in
// this exact precedence:
//
//	both bounds absent  -> "Um pavimento"
//	only max present    -> "H < {max} m"
//	only min present    -> "Acima de {min} m"
//	both present        -> "{min} < H < {max} m"
func DescribeHeight(ref *domain.HeightReference) string {
	switch {
	case ref.HMinM == nil && ref.HMaxM == nil:
		return "Um pavimento"
	case ref.HMinM == nil:
		return fmt.Sprintf("H < %s m", trimFloat(*ref.HMaxM))
	case ref.HMaxM == nil:
		return fmt.Sprintf("Acima de %s m", trimFloat(*ref.HMinM))
	default:
		return fmt.Sprintf("%s < H < %s m", trimFloat(*ref.HMinM), trimFloat(*ref.HMaxM))
	}
}

// trimFloat formats without trailing zeros ("6", "12.5"), matching how the
// reference table renders on the form.
func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
