package display

// Phase is the load state of a session.
type Phase int

const (
	PhaseNotLoaded Phase = iota
	PhaseLoading
	PhaseReady
)

func (p Phase) String() string {
	switch p {
	case PhaseNotLoaded:
		return "not_loaded"
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	default:
		return "unknown"
	}
}
