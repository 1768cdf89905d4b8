package service

import "github.com/nanoink/sistema-inspecao-incendio/internal/domain"

// riskBand one occupant band of the IT-01 Table 3 matrix. A building is
// "alto" when the fire load exceeds High, "medio" when it exceeds Medium,
// otherwise "baixo".
type riskBand struct {
	MaxOccupants int // inclusive; last band is the catch-all
	Medium       float64
	High         float64
}

// riskBands occupant bands in evaluation order. Denser occupancy lowers the
// fire-load thresholds.
var riskBands = []riskBand{
	{MaxOccupants: 100, Medium: 300, High: 1200},
	{MaxOccupants: 500, Medium: 300, High: 1200},
	{MaxOccupants: 1000, Medium: 200, High: 800},
	{MaxOccupants: 5000, Medium: 150, High: 600},
}

// catchAllBand applies above 5000 occupants.
var catchAllBand = riskBand{Medium: 100, High: 400}

// ComputeRiskGrade derives the fire-risk grade from fire load (MJ/m²) and
// occupant count. Pure and total: invalid inputs are a caller contract
// violation rejected at the boundary, not here.
func ComputeRiskGrade(fireLoadMJM2 float64, occupants int) domain.Grade {
	band := catchAllBand
	for _, b := range riskBands {
		if occupants <= b.MaxOccupants {
			band = b
			break
		}
	}

	switch {
	case fireLoadMJM2 > band.High:
		return domain.GradeAlto
	case fireLoadMJM2 > band.Medium:
		return domain.GradeMedio
	default:
		return domain.GradeBaixo
	}
}
