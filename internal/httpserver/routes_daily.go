// internal/httpserver/routes_daily.go
//
// HTTP routes for the "Daily Challenge" mode.
// Exposes four endpoints under /daily:
//   - POST /daily/new         → start today's round (creates or reuses session)
//   - POST /daily/guess       → submit a letter for today's round
//   - POST /daily/hint        → reveal a letter in today's round
//   - GET  /daily/leaderboard → top results for today (or a given date)
//
// Each user plays once per day (enforced by DB + in-memory session).
// Sessions are held in memory for active play and persisted to DB when
// the round finishes. Word selection is deterministic per date + salt.

package httpserver

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zak213934-a11y/hangman/internal/daily"
	"github.com/zak213934-a11y/hangman/internal/game"
	"github.com/zak213934-a11y/hangman/internal/words"
)

// The daily round always plays at medium settings so every player gets
// the same budget for the same word.
const dailyDifficulty = game.Medium

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv        *Server
	store      *daily.Store
	salt       string
	candidates *words.Source            // stable list the date index selects from
	sessions   map[string]*dailySession // active sessions keyed by userID|date
	mu         sync.Mutex               // guards sessions and round transitions
}

// dailySession holds transient in-memory state for an in-progress daily round.
type dailySession struct {
	UserID    string
	Date      string
	WordIndex int
	Round     *game.Round
	Start     time.Time
	Recorded  bool
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	dd := &dailyServer{
		srv:        s,
		store:      daily.NewStore(s.db),
		salt:       getEnv("DAILY_SALT", "local_dev_salt"),
		candidates: s.words.ForDifficulty(dailyDifficulty),
		sessions:   make(map[string]*dailySession),
	}
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", dd.handleNew)
		r.Post("/guess", dd.handleGuess)
		r.Post("/hint", dd.handleHint)
		r.Get("/leaderboard", dd.handleLeaderboard)
	})
}

// dateKeyNow returns today's date key, deterministic word index, and word.
func (d *dailyServer) dateKeyNow() (date string, idx int, word string) {
	now := time.Now().UTC()
	date = daily.DateKey(now)
	if d.candidates.Len() == 0 {
		return date, 0, ""
	}
	idx = daily.WordIndex(now, d.salt, d.candidates.Len())
	return date, idx, d.candidates.At(idx)
}

// userIDWithAnon returns the authenticated user ID if logged in,
// otherwise ensures an anonymous ID via Server.ensureAnonID.
func (d *dailyServer) userIDWithAnon(w http.ResponseWriter, r *http.Request) string {
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		return me.ID
	}
	return d.srv.ensureAnonID(w, r)
}

// session finds the caller's session for today, nil if absent.
func (d *dailyServer) session(uid, date string) *dailySession {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sessions[uid+"|"+date]
}

// -----------------------------------------------------------------------------
// /daily/new

// dailyNewRes is returned by /daily/new.
type dailyNewRes struct {
	GameID string `json:"gameId"`
	Date   string `json:"date"`
	Played bool   `json:"played"`
	roundView
}

// handleNew creates or reuses a daily session for the current date.
// - If user already has a DB row for today → return Played=true.
// - Otherwise create/reuse an in-memory session and return the round state.
func (d *dailyServer) handleNew(w http.ResponseWriter, r *http.Request) {
	uid := d.userIDWithAnon(w, r)
	date, idx, word := d.dateKeyNow()
	if word == "" {
		http.Error(w, `{"error":"no_words"}`, http.StatusInternalServerError)
		return
	}

	// Check if already played (persisted in DB).
	if played, err := d.store.AlreadyPlayed(r.Context(), uid, date); err == nil && played {
		_ = json.NewEncoder(w).Encode(dailyNewRes{Date: date, Played: true})
		return
	}

	key := uid + "|" + date
	d.mu.Lock()
	sess, ok := d.sessions[key]
	if !ok {
		g, err := game.NewForDifficulty(word, dailyDifficulty)
		if err != nil {
			d.mu.Unlock()
			http.Error(w, `{"error":"bad_word"}`, http.StatusInternalServerError)
			return
		}
		sess = &dailySession{
			UserID:    uid,
			Date:      date,
			WordIndex: idx,
			Round:     g,
			Start:     time.Now(),
		}
		d.sessions[key] = sess
	}
	// Reused sessions may be guessed at from other requests; snapshot
	// while still holding the lock.
	res := dailyNewRes{GameID: sess.Round.ID, Date: date, Played: false, roundView: viewOf(sess.Round)}
	d.mu.Unlock()

	_ = json.NewEncoder(w).Encode(res)
}

// -----------------------------------------------------------------------------
// /daily/guess and /daily/hint

// dailyGuessReq is the request payload for /daily/guess.
type dailyGuessReq struct {
	GameID string `json:"gameId"`
	Letter string `json:"letter"`
}

// dailyGuessRes is the response payload for /daily/guess.
type dailyGuessRes struct {
	Correct bool `json:"correct"`
	roundView
}

// handleGuess validates and applies a letter for today's daily session.
// Persists the result to DB when the round finishes.
func (d *dailyServer) handleGuess(w http.ResponseWriter, r *http.Request) {
	uid := d.userIDWithAnon(w, r)

	var p dailyGuessReq
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	date, _, _ := d.dateKeyNow()

	sess := d.session(uid, date)
	if sess == nil || sess.Round.ID != p.GameID {
		http.Error(w, `{"error":"no_session"}`, http.StatusConflict)
		return
	}

	d.mu.Lock()
	if sess.Round.IsOver() {
		d.mu.Unlock()
		http.Error(w, `{"error":"locked"}`, http.StatusConflict)
		return
	}
	correct, err := sess.Round.Guess(p.Letter)
	if err != nil {
		d.mu.Unlock()
		http.Error(w, `{"error":"invalid_guess"}`, http.StatusBadRequest)
		return
	}
	view := viewOf(sess.Round)
	res, done := d.finishLocked(sess)
	d.mu.Unlock()

	if done {
		_ = d.store.InsertResult(r.Context(), res)
	}
	_ = json.NewEncoder(w).Encode(dailyGuessRes{Correct: correct, roundView: view})
}

// handleHint spends a hint in today's daily session.
func (d *dailyServer) handleHint(w http.ResponseWriter, r *http.Request) {
	uid := d.userIDWithAnon(w, r)

	var p struct {
		GameID string `json:"gameId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	date, _, _ := d.dateKeyNow()

	sess := d.session(uid, date)
	if sess == nil || sess.Round.ID != p.GameID {
		http.Error(w, `{"error":"no_session"}`, http.StatusConflict)
		return
	}

	d.mu.Lock()
	if !sess.Round.Hint() {
		d.mu.Unlock()
		http.Error(w, `{"error":"no_hints"}`, http.StatusConflict)
		return
	}
	view := viewOf(sess.Round)
	res, done := d.finishLocked(sess)
	d.mu.Unlock()

	if done {
		_ = d.store.InsertResult(r.Context(), res)
	}
	_ = json.NewEncoder(w).Encode(view)
}

// finishLocked builds the persistable result for a session that just
// finished, exactly once per session. Losses are recorded with a zero
// score so the once-per-day rule holds either way. Caller must hold d.mu;
// the DB insert happens outside the lock.
func (d *dailyServer) finishLocked(sess *dailySession) (daily.Result, bool) {
	if !sess.Round.IsOver() || sess.Recorded {
		return daily.Result{}, false
	}
	sess.Recorded = true

	score := 0
	if sess.Round.IsWon() {
		score = sess.Round.Score()
	}
	return daily.Result{
		UserID:       sess.UserID,
		Date:         sess.Date,
		WordIndex:    sess.WordIndex,
		WrongGuesses: sess.Round.WrongCount(),
		HintsUsed:    sess.Round.HintsUsed(),
		Score:        score,
		ElapsedMs:    int(time.Since(sess.Start).Milliseconds()),
	}, true
}

// -----------------------------------------------------------------------------
// /daily/leaderboard

// lbRes is returned by /daily/leaderboard.
type lbRes struct {
	Date string        `json:"date"`
	Top  []daily.LBRow `json:"top"`
}

// handleLeaderboard returns the leaderboard for the given date (default today).
func (d *dailyServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date, _, _ = d.dateKeyNow()
	}
	rows, err := d.store.Leaderboard(r.Context(), date, 20)
	if err != nil {
		http.Error(w, `{"error":"server_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(lbRes{Date: date, Top: rows})
}
