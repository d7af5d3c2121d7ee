package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type DungeonRepo struct {
	db *sql.DB
}

func NewDungeonRepo(db *sql.DB) *DungeonRepo {
	return &DungeonRepo{db: db}
}

type DungeonInsert struct {
	Title      string
	Difficulty int
	XP         int
	Challenges []string
}

func (r *DungeonRepo) Insert(ctx context.Context, in DungeonInsert) (int64, error) {
	var id int64
	err := WithTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO dungeons (title, difficulty, xp) VALUES (?, ?, ?)
		`, in.Title, in.Difficulty, in.XP)
		if err != nil {
			return fmt.Errorf("dungeon insert: %w", err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("dungeon last insert id: %w", err)
		}
		for i, title := range in.Challenges {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO dungeon_challenges (dungeon_id, position, title) VALUES (?, ?, ?)
			`, id, i, title); err != nil {
				return fmt.Errorf("challenge insert: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *DungeonRepo) Get(ctx context.Context, id int64) (*Dungeon, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, difficulty, xp, completed, start_time, completion_time, time_taken, created_at
		FROM dungeons WHERE id = ?`, id)
	return scanDungeonRow(row)
}

func (r *DungeonRepo) ListAll(ctx context.Context) ([]Dungeon, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, difficulty, xp, completed, start_time, completion_time, time_taken, created_at
		FROM dungeons ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("dungeon list: %w", err)
	}
	defer rows.Close()

	var out []Dungeon
	for rows.Next() {
		d, err := scanDungeonRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("dungeon rows: %w", err)
	}
	return out, nil
}

func (r *DungeonRepo) Challenges(ctx context.Context, dungeonID int64) ([]DungeonChallenge, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, dungeon_id, position, title, completed
		FROM dungeon_challenges WHERE dungeon_id = ? ORDER BY position ASC`, dungeonID)
	if err != nil {
		return nil, fmt.Errorf("challenge list: %w", err)
	}
	defer rows.Close()

	var out []DungeonChallenge
	for rows.Next() {
		var (
			c         DungeonChallenge
			completed int
		)
		if err := rows.Scan(&c.ID, &c.DungeonID, &c.Position, &c.Title, &completed); err != nil {
			return nil, fmt.Errorf("challenge scan: %w", err)
		}
		c.Completed = completed != 0
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("challenge rows: %w", err)
	}
	return out, nil
}

func (r *DungeonRepo) SetChallengeCompleted(ctx context.Context, challengeID int64, completed bool) error {
	v := 0
	if completed {
		v = 1
	}
	if _, err := r.db.ExecContext(ctx, `UPDATE dungeon_challenges SET completed = ? WHERE id = ?`, v, challengeID); err != nil {
		return fmt.Errorf("challenge update: %w", err)
	}
	return nil
}

func (r *DungeonRepo) SetStartTime(ctx context.Context, id int64, start time.Time) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE dungeons SET start_time = ? WHERE id = ?`, start, id); err != nil {
		return fmt.Errorf("dungeon set start: %w", err)
	}
	return nil
}

func (r *DungeonRepo) MarkCompleted(ctx context.Context, id int64, completionTime time.Time, timeTaken int64) error {
	if _, err := r.db.ExecContext(ctx, `
		UPDATE dungeons SET completed = 1, completion_time = ?, time_taken = ? WHERE id = ?
	`, completionTime, timeTaken, id); err != nil {
		return fmt.Errorf("dungeon mark completed: %w", err)
	}
	return nil
}

func (r *DungeonRepo) CountCompleted(ctx context.Context) (int, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM dungeons WHERE completed = 1`)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("dungeon count: %w", err)
	}
	return n, nil
}

func scanDungeonRow(row scanner) (*Dungeon, error) {
	var (
		d              Dungeon
		completed      int
		startTime      sql.NullTime
		completionTime sql.NullTime
		timeTaken      sql.NullInt64
	)
	if err := row.Scan(&d.ID, &d.Title, &d.Difficulty, &d.XP, &completed,
		&startTime, &completionTime, &timeTaken, &d.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("dungeon scan: %w", err)
	}
	d.Completed = completed != 0
	if startTime.Valid {
		v := startTime.Time
		d.StartTime = &v
	}
	if completionTime.Valid {
		v := completionTime.Time
		d.CompletionTime = &v
	}
	if timeTaken.Valid {
		v := timeTaken.Int64
		d.TimeTaken = &v
	}
	return &d, nil
}
