package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS hero (
			key TEXT PRIMARY KEY,
			xp INTEGER DEFAULT 0,
			skill_points INTEGER DEFAULT 0,
			coins INTEGER DEFAULT 0,
			gems INTEGER DEFAULT 0,
			health INTEGER DEFAULT 100,
			max_health INTEGER DEFAULT 100,
			streak INTEGER DEFAULT 0,
			longest_streak INTEGER DEFAULT 0,
			tasks_completed INTEGER DEFAULT 0,
			last_login DATETIME DEFAULT CURRENT_TIMESTAMP,
			debuffs TEXT,
			inventory TEXT,
			journal_deletions INTEGER DEFAULT 0,
			last_journal_deletion DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			category TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			type TEXT NOT NULL,
			completed INTEGER DEFAULT 0,
			xp INTEGER NOT NULL,
			coins INTEGER NOT NULL,
			streak INTEGER DEFAULT 0,
			last_completed DATETIME,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		// Needed for restore (undo completion) and award auditing.
		`CREATE TABLE IF NOT EXISTS task_completions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			task_id INTEGER NOT NULL,
			completed_at DATETIME NOT NULL,
			xp_awarded INTEGER NOT NULL,
			coins_awarded INTEGER NOT NULL,
			streak_before INTEGER NOT NULL,
			FOREIGN KEY(task_id) REFERENCES tasks(id)
		);`,
		`CREATE TABLE IF NOT EXISTS boss (
			key TEXT PRIMARY KEY,
			code TEXT NOT NULL,
			name TEXT NOT NULL,
			week TEXT NOT NULL,
			current_hp INTEGER NOT NULL,
			max_hp INTEGER NOT NULL,
			resistances TEXT,
			reward_xp INTEGER NOT NULL,
			reward_coins INTEGER NOT NULL,
			reward_gems INTEGER NOT NULL,
			last_defeated TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS dungeons (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			difficulty INTEGER DEFAULT 1,
			xp INTEGER NOT NULL,
			completed INTEGER DEFAULT 0,
			start_time DATETIME,
			completion_time DATETIME,
			time_taken INTEGER,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS dungeon_challenges (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			dungeon_id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			title TEXT NOT NULL,
			completed INTEGER DEFAULT 0,
			FOREIGN KEY(dungeon_id) REFERENCES dungeons(id)
		);`,
		`CREATE TABLE IF NOT EXISTS journal_entries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			content TEXT NOT NULL,
			mood TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS weekly_reviews (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			iso_week TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		// Redemption timestamps drive the per-period rate limit.
		`CREATE TABLE IF NOT EXISTS redemptions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			reward_id TEXT NOT NULL,
			redeemed_at DATETIME NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS custom_rewards (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			coin_cost INTEGER DEFAULT 0,
			gem_cost INTEGER DEFAULT 0,
			redeem_limit INTEGER DEFAULT 0,
			redeem_period TEXT
		);`,
		// Only unlock state is stored; achievement definitions live in code.
		`CREATE TABLE IF NOT EXISTS achievements (
			id TEXT PRIMARY KEY,
			unlocked_at DATETIME NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS quest_templates (
			code TEXT PRIMARY KEY,
			status TEXT DEFAULT 'locked'
		);`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_type ON tasks(type);`,
		`CREATE INDEX IF NOT EXISTS idx_task_completions_task_id ON task_completions(task_id, completed_at);`,
		`CREATE INDEX IF NOT EXISTS idx_dungeon_challenges_dungeon_id ON dungeon_challenges(dungeon_id, position);`,
		`CREATE INDEX IF NOT EXISTS idx_redemptions_reward_id ON redemptions(reward_id, redeemed_at);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
