package storage

import "strings"

// Tables are written once with sqlite types and rewritten for postgres.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		email         TEXT NOT NULL UNIQUE,
		name          TEXT NOT NULL DEFAULT '',
		role          TEXT NOT NULL CHECK (role IN ('candidate', 'employer')),
		password_hash TEXT NOT NULL DEFAULT '',
		provider      TEXT NOT NULL DEFAULT 'email',
		google_id     TEXT NOT NULL DEFAULT '',
		created_at    DATETIME NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_users_google_id ON users (google_id)`,
	`CREATE TABLE IF NOT EXISTS candidate_profiles (
		id               INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id          INTEGER NOT NULL UNIQUE REFERENCES users (id),
		education        TEXT NOT NULL DEFAULT '',
		experience_years INTEGER NOT NULL DEFAULT 0,
		skills           TEXT NOT NULL DEFAULT '',
		comments         TEXT NOT NULL DEFAULT '',
		resume_file      TEXT NOT NULL DEFAULT '',
		resume_name      TEXT NOT NULL DEFAULT '',
		resume_mime      TEXT NOT NULL DEFAULT '',
		resume_text      TEXT NOT NULL DEFAULT '',
		updated_at       DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS jobs (
		id               INTEGER PRIMARY KEY AUTOINCREMENT,
		employer_id      INTEGER NOT NULL REFERENCES users (id),
		title            TEXT NOT NULL,
		company          TEXT NOT NULL DEFAULT '',
		education        TEXT NOT NULL DEFAULT '',
		experience_years INTEGER NOT NULL DEFAULT 0,
		salary_min       INTEGER NOT NULL DEFAULT 0,
		salary_max       INTEGER NOT NULL DEFAULT 0,
		skills           TEXT NOT NULL DEFAULT '',
		comments         TEXT NOT NULL DEFAULT '',
		state            TEXT NOT NULL DEFAULT '',
		city             TEXT NOT NULL DEFAULT '',
		location         TEXT NOT NULL DEFAULT '',
		created_at       DATETIME NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_employer ON jobs (employer_id)`,
	`CREATE TABLE IF NOT EXISTS applications (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		job_id       INTEGER NOT NULL REFERENCES jobs (id),
		candidate_id INTEGER NOT NULL REFERENCES users (id),
		message      TEXT NOT NULL DEFAULT '',
		applied_at   DATETIME NOT NULL,
		UNIQUE (job_id, candidate_id)
	)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id      INTEGER NOT NULL REFERENCES users (id),
		role         TEXT NOT NULL DEFAULT '',
		provider     TEXT NOT NULL,
		order_id     TEXT NOT NULL UNIQUE,
		payment_id   TEXT NOT NULL DEFAULT '',
		status       TEXT NOT NULL DEFAULT 'created' CHECK (status IN ('created', 'paid')),
		amount_minor INTEGER NOT NULL,
		currency     TEXT NOT NULL,
		created_at   DATETIME NOT NULL,
		expires_at   DATETIME NOT NULL,
		paid_at      DATETIME
	)`,
	`CREATE INDEX IF NOT EXISTS idx_payments_user ON payments (user_id, status)`,
}

func schemaFor(driver string) []string {
	if driver != DriverPostgres {
		return schema
	}

	r := strings.NewReplacer(
		"INTEGER PRIMARY KEY AUTOINCREMENT", "BIGSERIAL PRIMARY KEY",
		"INTEGER", "BIGINT",
		"DATETIME", "TIMESTAMPTZ",
	)
	out := make([]string, len(schema))
	for i, stmt := range schema {
		out[i] = r.Replace(stmt)
	}
	return out
}
