package session

import (
	"math/rand"

	"github.com/Garsondee/Night-Shift/internal/logging"
)

// Session accumulates player progress and mission status for one login.
// The zero value is not usable; construct with New.
type Session struct {
	profile  PlayerProfile
	missions []Mission // ordered by catalog position, looked up by ID
	rng      *rand.Rand
}

// New creates a session with the default profile and catalog.
// rng drives the kill bonus of completed missions.
func New(rng *rand.Rand) *Session {
	return &Session{
		profile:  DefaultProfile(),
		missions: DefaultCatalog(),
		rng:      rng,
	}
}

// Profile returns a copy of the current profile.
func (s *Session) Profile() PlayerProfile {
	return s.profile
}

// Missions returns a copy of the catalog in display order.
func (s *Session) Missions() []Mission {
	out := make([]Mission, len(s.missions))
	copy(out, s.missions)
	return out
}

// Mission returns the mission with the given id.
func (s *Session) Mission(id int) (Mission, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return Mission{}, false
	}
	return s.missions[i], true
}

func (s *Session) indexOf(id int) int {
	for i := range s.missions {
		if s.missions[i].ID == id {
			return i
		}
	}
	return -1
}

// CompleteMission marks an available mission completed, pays its reward and
// unlocks every mission that lists it as prerequisite. Missions that are
// unknown, locked or already completed are ignored; the return value reports
// whether anything changed.
func (s *Session) CompleteMission(id int) bool {
	i := s.indexOf(id)
	if i < 0 || s.missions[i].Status != MissionAvailable {
		return false
	}

	m := s.missions[i]
	kills := minMissionKills + s.rng.Intn(maxMissionKills-minMissionKills+1)
	s.profile.Currency += m.Reward
	s.profile.Experience += MissionExperience
	s.profile.CompletedMissions++
	s.profile.Kills += kills

	m.Status = MissionCompleted
	s.missions[i] = m

	var unlocked []int
	for j := range s.missions {
		dep := s.missions[j]
		if dep.UnlockedBy == id && dep.Status == MissionLocked {
			dep.Status = MissionAvailable
			s.missions[j] = dep
			unlocked = append(unlocked, dep.ID)
		}
	}

	logging.Info("mission completed", logging.Fields{
		"mission":  id,
		"reward":   m.Reward,
		"kills":    kills,
		"unlocked": unlocked,
	})
	return true
}

// RecordElimination credits one eliminated round target.
func (s *Session) RecordElimination() {
	s.profile.Currency += EliminationReward
	s.profile.Kills++
}
