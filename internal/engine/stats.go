package engine

import "math"

// Stats accumulates process-wide counters, independent of any single
// user's progress. TotalUsers records one entry per login event, so the
// same nickname may appear more than once; uniqueness is derived.
// The aggregate lives in memory only and resets with the process.
type Stats struct {
	totalLogins         int
	totalTasksCompleted int
	totalUsers          []string
}

// NewStats returns a zeroed aggregate.
func NewStats() *Stats { return &Stats{} }

// RecordLogin counts a login event for nickname.
func (s *Stats) RecordLogin(nickname string) {
	s.totalLogins++
	s.totalUsers = append(s.totalUsers, nickname)
}

// RecordTaskCompletion counts one completion.
func (s *Stats) RecordTaskCompletion() {
	s.totalTasksCompleted++
}

// RecordTaskUncompletion undoes one completion, never going below zero.
func (s *Stats) RecordTaskUncompletion() {
	if s.totalTasksCompleted > 0 {
		s.totalTasksCompleted--
	}
}

func (s *Stats) TotalLogins() int         { return s.totalLogins }
func (s *Stats) TotalTasksCompleted() int { return s.totalTasksCompleted }

// TotalUsers returns one nickname per login event, in login order.
func (s *Stats) TotalUsers() []string { return s.totalUsers }

// UniqueUserCount is the number of distinct nicknames seen.
func (s *Stats) UniqueUserCount() int {
	seen := map[string]bool{}
	for _, u := range s.totalUsers {
		seen[u] = true
	}
	return len(seen)
}

// AverageTasksPerUser is completions divided by unique users, rounded;
// zero when nobody has logged in.
func (s *Stats) AverageTasksPerUser() int {
	users := s.UniqueUserCount()
	if users == 0 {
		return 0
	}
	return int(math.Round(float64(s.totalTasksCompleted) / float64(users)))
}

// Reset zeroes every counter.
func (s *Stats) Reset() {
	s.totalLogins = 0
	s.totalTasksCompleted = 0
	s.totalUsers = nil
}
