package app

import (
	"context"
	"fmt"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-repositories"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-utils"
)

// schemaStatements bootstraps the tables the API needs. Every statement is
// idempotent so it runs on each start.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS agents (
		id               UUID PRIMARY KEY,
		name             TEXT NOT NULL,
		email            TEXT NOT NULL UNIQUE,
		phone            TEXT NOT NULL DEFAULT '',
		agency_name      TEXT NOT NULL DEFAULT '',
		experience_years INTEGER NOT NULL DEFAULT 0,
		national_id      TEXT NOT NULL DEFAULT '',
		address          TEXT NOT NULL DEFAULT '',
		attachment       TEXT,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS properties (
		id            UUID PRIMARY KEY,
		agent_id      UUID NOT NULL REFERENCES agents(id) ON DELETE CASCADE,
		title         TEXT NOT NULL,
		property_type TEXT NOT NULL DEFAULT '',
		location      TEXT NOT NULL DEFAULT '',
		bedrooms      INTEGER NOT NULL DEFAULT 0,
		size          DOUBLE PRECISION NOT NULL DEFAULT 0,
		size_unit     TEXT NOT NULL DEFAULT '',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_properties_agent_id ON properties(agent_id)`,
	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		type          TEXT NOT NULL DEFAULT 'user',
		row_version   BIGINT NOT NULL DEFAULT 1,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS password_reset_tokens (
		id         UUID PRIMARY KEY,
		user_id    UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		token_hash TEXT NOT NULL,
		expires_at TIMESTAMPTZ NOT NULL,
		used_at    TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_password_reset_tokens_user ON password_reset_tokens(user_id)`,
}

// EnsureSchema creates any missing tables.
func EnsureSchema(ctx context.Context, db repositories.DB) error {
	for i, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d failed: %w", i+1, err)
		}
	}
	utils.Logger.Info("Database schema is up to date.")
	return nil
}
