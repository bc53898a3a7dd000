package engine

import "sort"

// Leaderboard projects the progress map into a ranked list: completed
// count descending, then last activity descending, then nickname ascending
// so exact ties order deterministically. It is a pure function of its
// inputs and is recomputed on every call; nothing here is cached or
// persisted.
func Leaderboard(progress map[string]*UserProgress, totalTasks int) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(progress))
	for _, up := range progress {
		e := LeaderboardEntry{
			Nickname:       up.Nickname,
			CompletedCount: len(up.CompletedTasks),
		}
		if totalTasks > 0 {
			e.CompletionRate = float64(e.CompletedCount) / float64(totalTasks) * 100
		}
		for _, ts := range up.CompletedAt {
			if ts.After(e.LastActivity) {
				e.LastActivity = ts
			}
		}
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.CompletedCount != b.CompletedCount {
			return a.CompletedCount > b.CompletedCount
		}
		if !a.LastActivity.Equal(b.LastActivity) {
			return a.LastActivity.After(b.LastActivity)
		}
		return a.Nickname < b.Nickname
	})
	return entries
}
