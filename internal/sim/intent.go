package sim

import "fmt"

// IntentKind enumerates what a front end or the AI may ask for.
type IntentKind int

const (
	IntentSelectUnit IntentKind = iota
	IntentDeploy
	IntentTriggerArtillery
	IntentConfirmArtillery
	IntentCancelArtillery
	IntentScroll
)

func (k IntentKind) String() string {
	switch k {
	case IntentSelectUnit:
		return "select_unit"
	case IntentDeploy:
		return "deploy"
	case IntentTriggerArtillery:
		return "trigger_artillery"
	case IntentConfirmArtillery:
		return "confirm_artillery"
	case IntentCancelArtillery:
		return "cancel_artillery"
	case IntentScroll:
		return "scroll"
	default:
		return "unknown"
	}
}

// Intent is one queued request. Fields not used by Kind are ignored.
type Intent struct {
	Kind  IntentKind
	Team  Team
	Unit  UnitType
	Point Point
	Delta float64

	// explicitType is set when Unit overrides the team's current selection.
	explicitType bool
}

func (in Intent) String() string {
	switch in.Kind {
	case IntentDeploy, IntentConfirmArtillery:
		return fmt.Sprintf("%s %s (%.0f,%.0f)", in.Team, in.Kind, in.Point.X, in.Point.Y)
	case IntentScroll:
		return fmt.Sprintf("%s %+.0f", in.Kind, in.Delta)
	default:
		return fmt.Sprintf("%s %s", in.Team, in.Kind)
	}
}

// SelectUnit changes the player's current unit type.
func SelectUnit(ut UnitType) Intent {
	return Intent{Kind: IntentSelectUnit, Unit: ut}
}

// DeployAt places the player's selected unit type at p.
func DeployAt(p Point) Intent {
	return Intent{Kind: IntentDeploy, Point: p}
}

// DeployTypeAt places a specific unit type at p for team.
func DeployTypeAt(team Team, ut UnitType, p Point) Intent {
	return Intent{Kind: IntentDeploy, Team: team, Unit: ut, Point: p, explicitType: true}
}

// TriggerArtillery arms the player's strike.
func TriggerArtillery() Intent {
	return Intent{Kind: IntentTriggerArtillery}
}

// ConfirmArtillery commits the player's pending strike to p.
func ConfirmArtillery(p Point) Intent {
	return Intent{Kind: IntentConfirmArtillery, Point: p}
}

// CancelArtillery withdraws the player's pending strike.
func CancelArtillery() Intent {
	return Intent{Kind: IntentCancelArtillery}
}

// Scroll moves the camera by delta world units.
func Scroll(delta float64) Intent {
	return Intent{Kind: IntentScroll, Delta: delta}
}
