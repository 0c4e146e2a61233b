package content

// Icon names a feature may reference.
const (
	IconZap    = "zap"
	IconShield = "shield"
	IconCPU    = "cpu"
	IconCheck  = "check"
	IconStar   = "star"
)

var knownIcons = map[string]struct{}{
	IconZap:    {},
	IconShield: {},
	IconCPU:    {},
	IconCheck:  {},
	IconStar:   {},
}

func KnownIcon(name string) bool {
	_, ok := knownIcons[name]
	return ok
}
