package state

// SceneState represents where the scene manager is in its lifecycle
type SceneState int

const (
	Idle SceneState = iota
	Active
	Transitioning
)

// String returns the string representation of the scene state
func (s SceneState) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Active:
		return "Active"
	case Transitioning:
		return "Transitioning"
	default:
		return "Unknown"
	}
}
