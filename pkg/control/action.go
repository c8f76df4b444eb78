// Package control turns key presses into per-frame camera input.
package control

import "github.com/taigrr/sector/pkg/render"

// Action is one thing a key can do.
type Action int

const (
	None Action = iota
	Advance
	Retreat
	StrafeLeft
	StrafeRight
	TurnLeft
	TurnRight
	Ascend
	Descend
	LookUp
	LookDown
	Quit

	numActions
)

var actionNames = [numActions]string{
	None:        "none",
	Advance:     "advance",
	Retreat:     "retreat",
	StrafeLeft:  "strafe-left",
	StrafeRight: "strafe-right",
	TurnLeft:    "turn-left",
	TurnRight:   "turn-right",
	Ascend:      "ascend",
	Descend:     "descend",
	LookUp:      "look-up",
	LookDown:    "look-down",
	Quit:        "quit",
}

func (a Action) String() string {
	if a < 0 || a >= numActions {
		return "unknown"
	}
	return actionNames[a]
}

// Motion reports whether a moves the camera.
func (a Action) Motion() bool {
	return a >= Advance && a <= LookDown
}

// keyActions maps key names, as reported by the terminal and window
// frontends, to actions.
var keyActions = map[string]Action{
	"w":      Advance,
	"s":      Retreat,
	"a":      TurnLeft,
	"d":      TurnRight,
	"left":   StrafeLeft,
	"right":  StrafeRight,
	",":      StrafeLeft,
	".":      StrafeRight,
	"q":      Ascend,
	"e":      Descend,
	"up":     LookUp,
	"down":   LookDown,
	"pgup":   LookUp,
	"pgdown": LookDown,
	"escape": Quit,
	"ctrl+c": Quit,
}

// KeyAction returns the action bound to a key name, or None.
func KeyAction(name string) Action {
	return keyActions[name]
}

// Keys returns the key names bound to a, for help text.
func Keys(a Action) []string {
	var keys []string
	for _, k := range keyOrder {
		if keyActions[k] == a {
			keys = append(keys, k)
		}
	}
	return keys
}

// KeyNames returns every bound key name in a stable order.
func KeyNames() []string {
	return keyOrder
}

var keyOrder = []string{
	"w", "s", "a", "d", "left", "right", ",", ".", "q", "e",
	"up", "down", "pgup", "pgdown", "escape", "ctrl+c",
}

// Apply sets the Input flag for a motion action.
func Apply(in *render.Input, a Action) {
	switch a {
	case Advance:
		in.Advance = true
	case Retreat:
		in.Retreat = true
	case StrafeLeft:
		in.StrafeLeft = true
	case StrafeRight:
		in.StrafeRight = true
	case TurnLeft:
		in.TurnLeft = true
	case TurnRight:
		in.TurnRight = true
	case Ascend:
		in.Ascend = true
	case Descend:
		in.Descend = true
	case LookUp:
		in.LookUp = true
	case LookDown:
		in.LookDown = true
	}
}
