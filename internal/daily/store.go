package daily

import (
	"context"
	"database/sql"
)

// Result is one finished daily round for one player.
type Result struct {
	UserID       string `json:"userId"`
	Date         string `json:"date"`
	WordIndex    int    `json:"wordIndex"`
	WrongGuesses int    `json:"wrongGuesses"`
	HintsUsed    int    `json:"hintsUsed"`
	Score        int    `json:"score"`
	ElapsedMs    int    `json:"elapsedMs"`
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

func (s *Store) AlreadyPlayed(ctx context.Context, userID, date string) (bool, error) {
	var cnt int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM daily_results WHERE user_id=? AND date=?`,
		userID, date,
	).Scan(&cnt)
	return cnt > 0, err
}

// InsertResult records a finished daily round. UNIQUE(user_id, date)
// makes replays a silent no-op.
func (s *Store) InsertResult(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO daily_results(user_id, date, word_index, wrong_guesses, hints_used, score, elapsed_ms)
		 VALUES(?,?,?,?,?,?,?)`,
		r.UserID, r.Date, r.WordIndex, r.WrongGuesses, r.HintsUsed, r.Score, r.ElapsedMs,
	)
	return err
}

// LBRow is one leaderboard entry.
type LBRow struct {
	UserID       string `json:"userId"`
	Score        int    `json:"score"`
	WrongGuesses int    `json:"wrongGuesses"`
	ElapsedMs    int    `json:"elapsedMs"`
}

// Leaderboard returns the top results for a date, best score first,
// ties broken by fewer wrong guesses then faster time.
func (s *Store) Leaderboard(ctx context.Context, date string, limit int) ([]LBRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id, score, wrong_guesses, elapsed_ms
		 FROM daily_results
		 WHERE date=?
		 ORDER BY score DESC, wrong_guesses ASC, elapsed_ms ASC
		 LIMIT ?`, date, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LBRow, 0, limit)
	for rows.Next() {
		var r LBRow
		if err := rows.Scan(&r.UserID, &r.Score, &r.WrongGuesses, &r.ElapsedMs); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
