package stock

// MovementType values are kept as recorded by the legacy inventory system.
type MovementType string

const (
	MovementEntree     MovementType = "entree"
	MovementSortie     MovementType = "sortie"
	MovementAjustement MovementType = "ajustement"
	MovementPerte      MovementType = "perte"
)

func (t MovementType) String() string {
	return string(t)
}

func (t MovementType) IsValid() bool {
	switch t {
	case MovementEntree, MovementSortie, MovementAjustement, MovementPerte:
		return true
	default:
		return false
	}
}

type AlertLevel string

const (
	AlertNone AlertLevel = "none"
	AlertLow  AlertLevel = "low"
	AlertOut  AlertLevel = "out"
)
