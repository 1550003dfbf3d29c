package database

import "time"

// Exchange is one customer utterance and the bot reply it produced.
type Exchange struct {
	ID        int64     `db:"id"`
	ChatID    int64     `db:"chat_id"`
	UserID    int64     `db:"user_id"`
	Input     string    `db:"input"`
	Intent    string    `db:"intent"`
	Reply     string    `db:"reply"`
	CreatedAt time.Time `db:"created_at"`
}

// IntentStat counts exchanges answered by one intent.
type IntentStat struct {
	Intent string `db:"intent"`
	Hits   int64  `db:"hits"`
}
