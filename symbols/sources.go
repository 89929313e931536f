package symbols

// SideValue represents a rig side token.
type SideValue string

const (
	// SideLeft is the canonical left-side token.
	SideLeft SideValue = "l"

	// SideRight is the canonical right-side token.
	SideRight SideValue = "r"

	// SideCenter is the canonical center token.
	SideCenter SideValue = "c"

	// SideMiddle is the canonical middle token.
	SideMiddle SideValue = "m"
)

// Mirror returns the opposite side. Center and middle mirror to themselves.
func (s SideValue) Mirror() SideValue {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	}
	return s
}

// Built-in source names.
const (
	SourceSide        = "Side"
	SourcePosition    = "Position"
	SourceUsage       = "Usage"
	SourceAxis        = "Axis"
	SourceRotateOrder = "RotateOrder"
)

// SideSource maps long side names to their canonical abbreviations.
var SideSource = Source{
	"left":   string(SideLeft),
	"right":  string(SideRight),
	"center": string(SideCenter),
	"middle": string(SideMiddle),
}

// PositionSource maps spatial position concepts to their tokens.
var PositionSource = Source{
	"front":    "front",
	"back":     "back",
	"up":       "up",
	"down":     "down",
	"middle":   "middle",
	"internal": "internal",
	"external": "external",
}

// UsageSource maps node roles to the canonical suffixes used in names.
var UsageSource = Source{
	// Scene objects
	"joint":    "jnt",
	"control":  "ctl",
	"group":    "grp",
	"locator":  "loc",
	"curve":    "crv",
	"geometry": "geo",

	// Rig organization
	"guides":    "guides",
	"component": "cmp",
	"in":        "in",
	"controls":  "controls",
	"logic":     "logic",
	"deform":    "deform",
	"settings":  "settings",
	"local":     "local",
	"out":       "out",
}

// AxisSource maps axis concepts to their tokens.
var AxisSource = Source{
	"x": "X",
	"y": "Y",
	"z": "Z",
}

// RotateOrderSource maps rotate orders to their tokens.
var RotateOrderSource = Source{
	"xyz": "xyz",
	"yzx": "yzx",
	"zxy": "zxy",
	"xzy": "xzy",
	"yxz": "yxz",
	"zyx": "zyx",
}

func init() {
	Register(SourceSide, SideSource)
	Register(SourcePosition, PositionSource)
	Register(SourceUsage, UsageSource)
	Register(SourceAxis, AxisSource)
	Register(SourceRotateOrder, RotateOrderSource)
}
