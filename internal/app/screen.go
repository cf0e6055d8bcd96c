package app

type Screen int

const (
	ScreenAuth Screen = iota
	ScreenMenu
	ScreenMissions
	ScreenRound
	ScreenSettings
)

func (s Screen) String() string {
	switch s {
	case ScreenAuth:
		return "auth"
	case ScreenMenu:
		return "menu"
	case ScreenMissions:
		return "missions"
	case ScreenRound:
		return "round"
	case ScreenSettings:
		return "settings"
	default:
		return "unknown"
	}
}
