package nutrition

// IntakeTolerance is the kcal band around DER treated as on target.
const IntakeTolerance = 5.0

// IntakeStatus classifies actual intake against DER.
type IntakeStatus string

const (
	IntakeOver     IntakeStatus = "over"
	IntakeUnder    IntakeStatus = "under"
	IntakeOnTarget IntakeStatus = "on_target"
)

// ClassifyIntake maps a calorie difference (intake - DER) to a status.
func ClassifyIntake(difference float64) IntakeStatus {
	switch {
	case difference > IntakeTolerance:
		return IntakeOver
	case difference < -IntakeTolerance:
		return IntakeUnder
	default:
		return IntakeOnTarget
	}
}

// Label is a short human-readable name for the status.
func (s IntakeStatus) Label() string {
	switch s {
	case IntakeOver:
		return "over intake"
	case IntakeUnder:
		return "under intake"
	case IntakeOnTarget:
		return "on target"
	default:
		return "unknown"
	}
}

// Advice is the recommendation shown next to the status.
func (s IntakeStatus) Advice() string {
	switch s {
	case IntakeOver:
		return "Long-term excess calories can lead to obesity and related health problems; consider adjusting portions with your veterinarian."
	case IntakeUnder:
		return "Long-term calorie deficit can affect health and vitality; check whether portions should increase or a denser food is needed."
	case IntakeOnTarget:
		return "Intake is very close to the recommended amount."
	default:
		return ""
	}
}
