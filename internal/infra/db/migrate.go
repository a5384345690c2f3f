package db

import (
	"database/sql"
)

// MigrateUp creates the schema. Every statement is idempotent.
func MigrateUp(db *sql.DB) error {
	// users はアカウント側の所有だが、FK 制約のため最小限の定義を持つ
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS users (
    id       SERIAL PRIMARY KEY,
    username TEXT NOT NULL UNIQUE
)`); err != nil {
		return err
	}

	// category は未設定を NULL で表す
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS article (
    id         SERIAL PRIMARY KEY,
    user_id    INTEGER NOT NULL,
    title      VARCHAR(255) NOT NULL,
    summary    TEXT NOT NULL,
    content    TEXT NOT NULL,
    status     SMALLINT NOT NULL,
    category   SMALLINT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    CONSTRAINT fk_article_user FOREIGN KEY (user_id) REFERENCES users(id)
)`); err != nil {
		return err
	}

	indexes := []string{
		// ORDER BY created_at DESC (一覧)
		`CREATE INDEX IF NOT EXISTS idx_article_created_at ON article(created_at DESC, id DESC)`,
		// カテゴリ絞り込み用
		`CREATE INDEX IF NOT EXISTS idx_article_category ON article(category)`,
		// 作成者別
		`CREATE INDEX IF NOT EXISTS idx_article_user_id ON article(user_id)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	return nil
}

// MigrateDown drops the article table and its indexes.
// The users table is left in place because other services own its rows.
func MigrateDown(db *sql.DB) error {
	dropStatements := []string{
		`DROP INDEX IF EXISTS idx_article_user_id`,
		`DROP INDEX IF EXISTS idx_article_category`,
		`DROP INDEX IF EXISTS idx_article_created_at`,
		`DROP TABLE IF EXISTS article`,
	}

	for _, stmt := range dropStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
