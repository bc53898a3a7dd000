package engine

import (
	"context"
	"math/rand"
	"time"
)

// Quote is a motivational line shown alongside the checklist.
type Quote struct {
	Text     string
	Author   string
	Category string
}

var quotes = []Quote{
	{
		Text:     "The way to get started is to quit talking and begin doing.",
		Author:   "Walt Disney",
		Category: "motivation",
	},
	{
		Text:     "Don't be afraid to give up the good to go for the great.",
		Author:   "John D. Rockefeller",
		Category: "success",
	},
	{
		Text:     "If you really look closely, most overnight successes took a long time.",
		Author:   "Steve Jobs",
		Category: "perseverance",
	},
	{
		Text:     "The future belongs to those who believe in the beauty of their dreams.",
		Author:   "Eleanor Roosevelt",
		Category: "dreams",
	},
	{
		Text:     "It is during our darkest moments that we must focus to see the light.",
		Author:   "Aristotle",
		Category: "hope",
	},
	{
		Text:     "Success is not final, failure is not fatal: it is the courage to continue that counts.",
		Author:   "Winston Churchill",
		Category: "courage",
	},
}

// FetchQuote returns a random quote after a simulated network delay of
// 0.5–1.5 s so callers exercise their loading states. Cancelling the
// context aborts the wait.
func FetchQuote(ctx context.Context) (Quote, error) {
	delay := 500*time.Millisecond + time.Duration(rand.Int63n(int64(time.Second)))
	select {
	case <-ctx.Done():
		return Quote{}, ctx.Err()
	case <-time.After(delay):
	}
	return quotes[rand.Intn(len(quotes))], nil
}
