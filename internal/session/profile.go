package session

// PlayerProfile is the within-session progress of the player.
type PlayerProfile struct {
	Level             int
	Experience        int
	Currency          int
	CompletedMissions int
	Kills             int
}

// Rewards applied by the session operations.
const (
	StartingCurrency  = 500
	MissionExperience = 150
	EliminationReward = 100
	minMissionKills   = 1
	maxMissionKills   = 3
)

// DefaultProfile is the profile every session starts with.
func DefaultProfile() PlayerProfile {
	return PlayerProfile{
		Level:    1,
		Currency: StartingCurrency,
	}
}
