// Package history provides SQLite-backed local records of completed
// interviews and ATS runs. The backend keeps the canonical data; this store
// lets the dashboard show recent activity without a round trip.
package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Store provides SQLite-backed persistence for local history.
type Store struct {
	db *sql.DB
}

// Interview is one completed interview session.
type Interview struct {
	ID            string
	UserEmail     string
	QuestionCount int
	AnsweredCount int
	AverageScore  float64
	CreatedAt     time.Time
}

// ATSRun is one scored resume/job-description pair.
type ATSRun struct {
	ID           string
	UserEmail    string
	Score        float64
	MatchedCount int
	MissingCount int
	CreatedAt    time.Time
}

// NewStore opens the SQLite database at dbPath and creates tables if they
// don't exist.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := createTables(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func createTables(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS interviews (
		id TEXT PRIMARY KEY,
		user_email TEXT NOT NULL,
		question_count INTEGER NOT NULL,
		answered_count INTEGER NOT NULL,
		average_score REAL NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS interview_scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		interview_id TEXT NOT NULL,
		question_index INTEGER NOT NULL,
		score REAL NOT NULL,
		FOREIGN KEY (interview_id) REFERENCES interviews(id)
	);

	CREATE TABLE IF NOT EXISTS ats_runs (
		id TEXT PRIMARY KEY,
		user_email TEXT NOT NULL,
		score REAL NOT NULL,
		matched_count INTEGER NOT NULL,
		missing_count INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := db.Exec(schema)
	return err
}

// RecordInterview stores a completed interview and its per-question scores.
// scores is sparse: only answered question indexes appear.
func (s *Store) RecordInterview(userEmail string, questionCount int, averageScore float64, scores map[int]float64) (*Interview, error) {
	id := uuid.New().String()
	now := time.Now()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(
		`INSERT INTO interviews (id, user_email, question_count, answered_count, average_score, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, userEmail, questionCount, len(scores), averageScore, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert interview: %w", err)
	}

	for idx, score := range scores {
		if _, err := tx.Exec(
			`INSERT INTO interview_scores (interview_id, question_index, score) VALUES (?, ?, ?)`,
			id, idx, score,
		); err != nil {
			return nil, fmt.Errorf("insert score: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return &Interview{
		ID:            id,
		UserEmail:     userEmail,
		QuestionCount: questionCount,
		AnsweredCount: len(scores),
		AverageScore:  averageScore,
		CreatedAt:     now,
	}, nil
}

// RecordATSRun stores one ATS scoring result.
func (s *Store) RecordATSRun(userEmail string, score float64, matchedCount, missingCount int) (*ATSRun, error) {
	id := uuid.New().String()
	now := time.Now()

	_, err := s.db.Exec(
		`INSERT INTO ats_runs (id, user_email, score, matched_count, missing_count, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, userEmail, score, matchedCount, missingCount, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert ats run: %w", err)
	}

	return &ATSRun{
		ID:           id,
		UserEmail:    userEmail,
		Score:        score,
		MatchedCount: matchedCount,
		MissingCount: missingCount,
		CreatedAt:    now,
	}, nil
}

// ListInterviews returns the most recent interviews for a user, newest first.
func (s *Store) ListInterviews(userEmail string, limit int) ([]Interview, error) {
	rows, err := s.db.Query(
		`SELECT id, user_email, question_count, answered_count, average_score, created_at
		 FROM interviews
		 WHERE user_email = ?
		 ORDER BY created_at DESC
		 LIMIT ?`,
		userEmail, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query interviews: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var interviews []Interview
	for rows.Next() {
		var iv Interview
		if err := rows.Scan(&iv.ID, &iv.UserEmail, &iv.QuestionCount, &iv.AnsweredCount, &iv.AverageScore, &iv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan interview: %w", err)
		}
		interviews = append(interviews, iv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return interviews, nil
}

// ListATSRuns returns the most recent ATS runs for a user, newest first.
func (s *Store) ListATSRuns(userEmail string, limit int) ([]ATSRun, error) {
	rows, err := s.db.Query(
		`SELECT id, user_email, score, matched_count, missing_count, created_at
		 FROM ats_runs
		 WHERE user_email = ?
		 ORDER BY created_at DESC
		 LIMIT ?`,
		userEmail, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query ats runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []ATSRun
	for rows.Next() {
		var run ATSRun
		if err := rows.Scan(&run.ID, &run.UserEmail, &run.Score, &run.MatchedCount, &run.MissingCount, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ats run: %w", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return runs, nil
}

// Scores retrieves the per-question scores recorded for an interview.
func (s *Store) Scores(interviewID string) (map[int]float64, error) {
	rows, err := s.db.Query(
		`SELECT question_index, score FROM interview_scores WHERE interview_id = ?`,
		interviewID,
	)
	if err != nil {
		return nil, fmt.Errorf("query scores: %w", err)
	}
	defer func() { _ = rows.Close() }()

	scores := make(map[int]float64)
	for rows.Next() {
		var idx int
		var score float64
		if err := rows.Scan(&idx, &score); err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		scores[idx] = score
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return scores, nil
}
