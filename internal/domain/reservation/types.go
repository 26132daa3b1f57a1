package reservation

type Status string

const (
	StatusBooked Status = "BOOKED"
	StatusServed Status = "SERVED"
	StatusNoShow Status = "NO_SHOW"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusBooked, StatusServed, StatusNoShow:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// CanTransitionTo encodes BOOKED -> SERVED | NO_SHOW. Re-asserting the
// current status is accepted as a no-op.
func (s Status) CanTransitionTo(next Status) bool {
	if s == next {
		return true
	}
	return s == StatusBooked && (next == StatusServed || next == StatusNoShow)
}

type ConsumptionMode string

const (
	ModeSurPlace  ConsumptionMode = "SUR_PLACE"
	ModeAEmporter ConsumptionMode = "A_EMPORTER"
)

func (m ConsumptionMode) String() string {
	return string(m)
}

func (m ConsumptionMode) IsValid() bool {
	return m == ModeSurPlace || m == ModeAEmporter
}

func NewConsumptionMode(s string) (ConsumptionMode, error) {
	m := ConsumptionMode(s)
	if !m.IsValid() {
		return "", ErrInvalidConsumptionMode
	}
	return m, nil
}
