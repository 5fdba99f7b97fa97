package community

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"amongus-stats-service/internal/domain"
)

//go:embed schema.sql
var schemaSQL string

// SQLiteStore is the durable backend.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// OpenSQLite opens (or creates) the database at path and applies the schema.
func OpenSQLite(path string) (*SQLiteStore, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open community db: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply community schema: %w", err)
	}
	return &SQLiteStore{db: db, now: time.Now}, nil
}

func (s *SQLiteStore) SaveTierList(ctx context.Context, sub domain.TierSubmission) error {
	rankings, err := json.Marshal(sub.Rankings)
	if err != nil {
		return fmt.Errorf("encode rankings: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO tier_lists (user_id, user_name, rankings, timestamp)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			user_name = excluded.user_name,
			rankings  = excluded.rankings,
			timestamp = excluded.timestamp
	`, sub.UserID, sub.UserName, string(rankings), s.now().UnixMilli())
	if err != nil {
		return fmt.Errorf("save tier list: %w", err)
	}
	return nil
}

func (s *SQLiteStore) TierList(ctx context.Context, userID string) (domain.TierSubmission, bool, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT user_id, user_name, rankings, timestamp
		FROM tier_lists WHERE user_id = ?
	`, userID)

	sub, err := scanTierList(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.TierSubmission{}, false, nil
	}
	if err != nil {
		return domain.TierSubmission{}, false, err
	}
	return sub, true, nil
}

func (s *SQLiteStore) TierLists(ctx context.Context) ([]domain.TierSubmission, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT user_id, user_name, rankings, timestamp
		FROM tier_lists ORDER BY user_id
	`)
	if err != nil {
		return nil, fmt.Errorf("list tier lists: %w", err)
	}
	defer rows.Close()

	subs := make([]domain.TierSubmission, 0)
	for rows.Next() {
		sub, err := scanTierList(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTierList(row rowScanner) (domain.TierSubmission, error) {
	var sub domain.TierSubmission
	var rankings string
	if err := row.Scan(&sub.UserID, &sub.UserName, &rankings, &sub.Timestamp); err != nil {
		return domain.TierSubmission{}, err
	}
	if err := json.Unmarshal([]byte(rankings), &sub.Rankings); err != nil {
		return domain.TierSubmission{}, fmt.Errorf("decode rankings for %s: %w", sub.UserID, err)
	}
	return sub, nil
}

func (s *SQLiteStore) AddComment(ctx context.Context, c domain.Comment) (domain.Comment, error) {
	c.Timestamp = s.now().UnixMilli()
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO comments (user_id, user_name, body, timestamp)
		VALUES (?, ?, ?, ?)
	`, c.UserID, c.User, c.Text, c.Timestamp)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("add comment: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		c.ID = id
	}
	return c, nil
}

func (s *SQLiteStore) Comments(ctx context.Context, limit int) ([]domain.Comment, error) {
	if limit <= 0 {
		limit = defaultCommentLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, user_name, body, timestamp
		FROM comments ORDER BY timestamp DESC, id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	comments := make([]domain.Comment, 0, limit)
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.UserID, &c.User, &c.Text, &c.Timestamp); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (s *SQLiteStore) PetitionStats(ctx context.Context) (domain.PetitionStats, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, type, count, start_date, COALESCE(end_date, 0), COALESCE(video_id, '')
		FROM petitions ORDER BY end_date DESC
	`)
	if err != nil {
		return domain.PetitionStats{}, fmt.Errorf("petition stats: %w", err)
	}
	defer rows.Close()

	stats := domain.PetitionStats{History: make([]domain.Petition, 0)}
	for rows.Next() {
		var p domain.Petition
		if err := rows.Scan(&p.ID, &p.Type, &p.Count, &p.StartDate, &p.EndDate, &p.VideoID); err != nil {
			return domain.PetitionStats{}, err
		}
		switch p.Type {
		case domain.PetitionCurrent:
			stats.CurrentCount = p.Count
		case domain.PetitionArchive:
			stats.History = append(stats.History, p)
		}
	}
	return stats, rows.Err()
}

func (s *SQLiteStore) SignPetition(ctx context.Context) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("sign petition: %w", err)
	}
	defer tx.Rollback()

	var id int64
	var count int
	err = tx.QueryRowContext(ctx, `
		SELECT id, count FROM petitions WHERE type = ? LIMIT 1
	`, domain.PetitionCurrent).Scan(&id, &count)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		count = 1
		_, err = tx.ExecContext(ctx, `
			INSERT INTO petitions (type, count, start_date) VALUES (?, 1, ?)
		`, domain.PetitionCurrent, s.now().UnixMilli())
	case err == nil:
		count++
		_, err = tx.ExecContext(ctx, `UPDATE petitions SET count = ? WHERE id = ?`, count, id)
	}
	if err != nil {
		return 0, fmt.Errorf("sign petition: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("sign petition: %w", err)
	}
	return count, nil
}

func (s *SQLiteStore) ArchivePetition(ctx context.Context, videoID string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE petitions SET type = ?, end_date = ?, video_id = ?
		WHERE type = ?
	`, domain.PetitionArchive, s.now().UnixMilli(), videoID, domain.PetitionCurrent)
	if err != nil {
		return fmt.Errorf("archive petition: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
