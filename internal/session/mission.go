package session

import "github.com/Garsondee/Night-Shift/internal/difficulty"

type MissionStatus int

const (
	MissionAvailable MissionStatus = iota
	MissionCompleted
	MissionLocked
)

func (s MissionStatus) String() string {
	switch s {
	case MissionAvailable:
		return "available"
	case MissionCompleted:
		return "completed"
	case MissionLocked:
		return "locked"
	default:
		return "unknown"
	}
}

// Mission is one catalog entry. UnlockedBy names the prerequisite mission id;
// 0 means the mission has no prerequisite.
type Mission struct {
	ID          int
	Title       string
	Description string
	Reward      int
	Difficulty  difficulty.Level
	Location    string
	Status      MissionStatus
	UnlockedBy  int
}

// DefaultCatalog returns a fresh copy of the built-in mission list.
func DefaultCatalog() []Mission {
	return []Mission{
		{
			ID:          1,
			Title:       "Night Pizzeria",
			Description: "Slip into the abandoned pizzeria. The guards must not see you.",
			Reward:      1500,
			Difficulty:  difficulty.Easy,
			Location:    "Freddy's Pizza",
			Status:      MissionAvailable,
		},
		{
			ID:          2,
			Title:       "Dark Corridor",
			Description: "Take out the target in the old building. The power is cut.",
			Reward:      3000,
			Difficulty:  difficulty.Medium,
			Location:    "Old Hospital",
			Status:      MissionAvailable,
		},
		{
			ID:          3,
			Title:       "Last Night",
			Description: "The most dangerous job. Many guards and an alarm system.",
			Reward:      7500,
			Difficulty:  difficulty.Hard,
			Location:    "Secret Base",
			Status:      MissionLocked,
			UnlockedBy:  2,
		},
	}
}
