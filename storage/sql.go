package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/dreamjobs/portal/models"
)

// Supported database drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

const maxJobResults = 500

// SQLStore implements Repository on top of database/sql.
type SQLStore struct {
	db     *sql.DB
	driver string
}

// Open connects to the database and verifies the connection. It does not
// create tables; call Migrate for that.
func Open(driver, dsn string) (*SQLStore, error) {
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s db: %w", driver, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging %s db: %w", driver, err)
	}

	if driver == DriverSQLite {
		// One writer at a time; foreign keys are off by default.
		db.SetMaxOpenConns(1)
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enabling foreign keys: %w", err)
		}
	}

	return &SQLStore{db: db, driver: driver}, nil
}

// Migrate creates any missing tables and indexes. Safe to call repeatedly.
func (s *SQLStore) Migrate(ctx context.Context) error {
	for _, stmt := range schemaFor(s.driver) {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}
	return nil
}

// SeedDemoUsers inserts employer@example.com and candidate@example.com
// unless they already exist.
func (s *SQLStore) SeedDemoUsers(ctx context.Context, passwordHash string) error {
	now := stamp(time.Now())
	demo := []models.User{
		{Email: "employer@example.com", Name: "Demo Employer", Role: models.RoleEmployer},
		{Email: "candidate@example.com", Name: "Demo Candidate", Role: models.RoleCandidate},
	}
	for _, u := range demo {
		_, err := s.exec(ctx, `INSERT INTO users (email, name, role, password_hash, provider, created_at)
			VALUES (?, ?, ?, ?, ?, ?) ON CONFLICT (email) DO NOTHING`,
			u.Email, u.Name, u.Role, passwordHash, models.ProviderEmail, now)
		if err != nil {
			return fmt.Errorf("seeding %s: %w", u.Email, err)
		}
	}
	return nil
}

// Ping checks the connection is alive.
func (s *SQLStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the underlying database connection.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

// Users

const userColumns = "id, email, name, role, password_hash, provider, google_id, created_at"

func (s *SQLStore) CreateUser(ctx context.Context, user *models.User) error {
	user.CreatedAt = stamp(time.Now())
	if user.Provider == "" {
		user.Provider = models.ProviderEmail
	}

	err := s.queryRow(ctx, `INSERT INTO users (email, name, role, password_hash, provider, google_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?) RETURNING id`,
		user.Email, user.Name, user.Role, user.PasswordHash, user.Provider, user.GoogleID, user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		return s.wrap(err, "creating user %s", user.Email)
	}
	return nil
}

func (s *SQLStore) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.getUser(ctx, "id = ?", id)
}

func (s *SQLStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getUser(ctx, "email = ?", email)
}

func (s *SQLStore) GetUserByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	if googleID == "" {
		return nil, ErrNotFound
	}
	return s.getUser(ctx, "google_id = ?", googleID)
}

func (s *SQLStore) getUser(ctx context.Context, where string, arg any) (*models.User, error) {
	var u models.User
	err := s.queryRow(ctx, "SELECT "+userColumns+" FROM users WHERE "+where, arg).Scan(
		&u.ID, &u.Email, &u.Name, &u.Role, &u.PasswordHash, &u.Provider, &u.GoogleID, &u.CreatedAt,
	)
	if err != nil {
		return nil, s.wrap(err, "getting user")
	}
	return &u, nil
}

// LinkGoogleAccount attaches a Google subject to an existing account.
func (s *SQLStore) LinkGoogleAccount(ctx context.Context, userID int64, googleID string) error {
	res, err := s.exec(ctx, "UPDATE users SET google_id = ? WHERE id = ?", googleID, userID)
	if err != nil {
		return s.wrap(err, "linking google account for user %d", userID)
	}
	return requireAffected(res)
}

// Candidate profiles

const profileColumns = `cp.id, cp.user_id, u.email, u.name, cp.education, cp.experience_years, cp.skills,
	cp.comments, cp.resume_file, cp.resume_name, cp.resume_mime, cp.resume_text, cp.updated_at`

func scanProfile(row interface{ Scan(...any) error }) (*models.CandidateProfile, error) {
	var p models.CandidateProfile
	err := row.Scan(&p.ID, &p.UserID, &p.Email, &p.Name, &p.Education, &p.ExperienceYears, &p.Skills,
		&p.Comments, &p.ResumeFile, &p.ResumeName, &p.ResumeMime, &p.ResumeText, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *SQLStore) GetProfile(ctx context.Context, userID int64) (*models.CandidateProfile, error) {
	row := s.queryRow(ctx, "SELECT "+profileColumns+` FROM candidate_profiles cp
		JOIN users u ON u.id = cp.user_id WHERE cp.user_id = ?`, userID)
	p, err := scanProfile(row)
	if err != nil {
		return nil, s.wrap(err, "getting profile for user %d", userID)
	}
	return p, nil
}

// UpsertProfile writes the editable profile fields. Resume columns are
// left untouched.
func (s *SQLStore) UpsertProfile(ctx context.Context, p *models.CandidateProfile) error {
	p.UpdatedAt = stamp(time.Now())
	err := s.queryRow(ctx, `INSERT INTO candidate_profiles (user_id, education, experience_years, skills, comments, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			education = excluded.education,
			experience_years = excluded.experience_years,
			skills = excluded.skills,
			comments = excluded.comments,
			updated_at = excluded.updated_at
		RETURNING id`,
		p.UserID, p.Education, p.ExperienceYears, p.Skills, p.Comments, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return s.wrap(err, "saving profile for user %d", p.UserID)
	}
	return nil
}

// SetResume records the stored resume, creating an empty profile if the
// candidate has none yet.
func (s *SQLStore) SetResume(ctx context.Context, userID int64, file, name, mime, text string) error {
	_, err := s.exec(ctx, `INSERT INTO candidate_profiles (user_id, resume_file, resume_name, resume_mime, resume_text, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			resume_file = excluded.resume_file,
			resume_name = excluded.resume_name,
			resume_mime = excluded.resume_mime,
			resume_text = excluded.resume_text,
			updated_at = excluded.updated_at`,
		userID, file, name, mime, text, stamp(time.Now()))
	if err != nil {
		return s.wrap(err, "saving resume for user %d", userID)
	}
	return nil
}

// ListProfiles returns candidate profiles in id order, optionally filtered
// by a case-insensitive substring of name, education, skills, comments or
// resume text.
func (s *SQLStore) ListProfiles(ctx context.Context, query string) ([]models.CandidateProfile, error) {
	q := "SELECT " + profileColumns + " FROM candidate_profiles cp JOIN users u ON u.id = cp.user_id"
	var args []any
	if query = strings.TrimSpace(query); query != "" {
		q += ` WHERE LOWER(u.name) LIKE ? OR LOWER(cp.education) LIKE ? OR LOWER(cp.skills) LIKE ?
			OR LOWER(cp.comments) LIKE ? OR LOWER(cp.resume_text) LIKE ?`
		pattern := likePattern(query)
		args = []any{pattern, pattern, pattern, pattern, pattern}
	}
	q += " ORDER BY cp.id"

	rows, err := s.query(ctx, q, args...)
	if err != nil {
		return nil, s.wrap(err, "listing profiles")
	}
	defer rows.Close()

	profiles := []models.CandidateProfile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning profile: %w", err)
		}
		profiles = append(profiles, *p)
	}
	return profiles, rows.Err()
}

// Jobs

const jobColumns = `id, employer_id, title, company, education, experience_years, salary_min, salary_max,
	skills, comments, state, city, location, created_at`

func scanJob(row interface{ Scan(...any) error }) (*models.Job, error) {
	var j models.Job
	err := row.Scan(&j.ID, &j.EmployerID, &j.Title, &j.Company, &j.Education, &j.ExperienceYears,
		&j.SalaryMin, &j.SalaryMax, &j.Skills, &j.Comments, &j.State, &j.City, &j.Location, &j.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (s *SQLStore) CreateJob(ctx context.Context, j *models.Job) error {
	j.CreatedAt = stamp(time.Now())
	err := s.queryRow(ctx, `INSERT INTO jobs (employer_id, title, company, education, experience_years,
			salary_min, salary_max, skills, comments, state, city, location, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`,
		j.EmployerID, j.Title, j.Company, j.Education, j.ExperienceYears, j.SalaryMin, j.SalaryMax,
		j.Skills, j.Comments, j.State, j.City, j.Location, j.CreatedAt,
	).Scan(&j.ID)
	if err != nil {
		return s.wrap(err, "creating job %q", j.Title)
	}
	return nil
}

func (s *SQLStore) GetJob(ctx context.Context, id int64) (*models.Job, error) {
	j, err := scanJob(s.queryRow(ctx, "SELECT "+jobColumns+" FROM jobs WHERE id = ?", id))
	if err != nil {
		return nil, s.wrap(err, "getting job %d", id)
	}
	return j, nil
}

// ListJobs returns jobs newest first. A negative Limit lists every match;
// otherwise at most maxJobResults are returned.
func (s *SQLStore) ListJobs(ctx context.Context, f models.JobFilter) ([]models.Job, error) {
	var (
		where []string
		args  []any
	)
	if q := strings.TrimSpace(f.Query); q != "" {
		where = append(where, `(LOWER(title) LIKE ? OR LOWER(company) LIKE ? OR LOWER(skills) LIKE ? OR LOWER(comments) LIKE ?)`)
		p := likePattern(q)
		args = append(args, p, p, p, p)
	}
	if loc := strings.TrimSpace(f.Location); loc != "" {
		where = append(where, `(LOWER(state) LIKE ? OR LOWER(city) LIKE ? OR LOWER(location) LIKE ?)`)
		p := likePattern(loc)
		args = append(args, p, p, p)
	}
	if f.EmployerID != 0 {
		where = append(where, "employer_id = ?")
		args = append(args, f.EmployerID)
	}

	q := "SELECT " + jobColumns + " FROM jobs"
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY created_at DESC, id DESC"

	if f.Limit >= 0 {
		limit := f.Limit
		if limit == 0 || limit > maxJobResults {
			limit = maxJobResults
		}
		q += " LIMIT " + strconv.Itoa(limit)
	}

	rows, err := s.query(ctx, q, args...)
	if err != nil {
		return nil, s.wrap(err, "listing jobs")
	}
	defer rows.Close()

	jobs := []models.Job{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning job: %w", err)
		}
		jobs = append(jobs, *j)
	}
	return jobs, rows.Err()
}

func (s *SQLStore) LatestJobByEmployer(ctx context.Context, employerID int64) (*models.Job, error) {
	row := s.queryRow(ctx, "SELECT "+jobColumns+` FROM jobs WHERE employer_id = ?
		ORDER BY created_at DESC, id DESC LIMIT 1`, employerID)
	j, err := scanJob(row)
	if err != nil {
		return nil, s.wrap(err, "getting latest job for employer %d", employerID)
	}
	return j, nil
}

// Applications

// CreateApplication returns ErrConflict if the candidate already applied.
func (s *SQLStore) CreateApplication(ctx context.Context, a *models.Application) error {
	a.AppliedAt = stamp(time.Now())
	err := s.queryRow(ctx, `INSERT INTO applications (job_id, candidate_id, message, applied_at)
		VALUES (?, ?, ?, ?) RETURNING id`,
		a.JobID, a.CandidateID, a.Message, a.AppliedAt,
	).Scan(&a.ID)
	if err != nil {
		return s.wrap(err, "applying to job %d", a.JobID)
	}
	return nil
}

func (s *SQLStore) ListApplicantsByEmployer(ctx context.Context, employerID int64) ([]models.ApplicantView, error) {
	rows, err := s.query(ctx, `SELECT a.id, a.job_id, a.candidate_id, a.message, a.applied_at, j.title,
			u.name, u.email, COALESCE(cp.resume_file, '')
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		JOIN users u ON u.id = a.candidate_id
		LEFT JOIN candidate_profiles cp ON cp.user_id = a.candidate_id
		WHERE j.employer_id = ?
		ORDER BY a.applied_at DESC, a.id DESC`, employerID)
	if err != nil {
		return nil, s.wrap(err, "listing applicants for employer %d", employerID)
	}
	defer rows.Close()

	out := []models.ApplicantView{}
	for rows.Next() {
		var (
			v          models.ApplicantView
			resumeFile string
		)
		if err := rows.Scan(&v.ID, &v.JobID, &v.CandidateID, &v.Message, &v.AppliedAt, &v.JobTitle,
			&v.CandidateName, &v.CandidateEmail, &resumeFile); err != nil {
			return nil, fmt.Errorf("scanning applicant: %w", err)
		}
		v.HasResume = resumeFile != ""
		out = append(out, v)
	}
	return out, rows.Err()
}

func (s *SQLStore) ListApplicationsByCandidate(ctx context.Context, candidateID int64) ([]models.Application, error) {
	rows, err := s.query(ctx, `SELECT a.id, a.job_id, a.candidate_id, a.message, a.applied_at, j.title
		FROM applications a JOIN jobs j ON j.id = a.job_id
		WHERE a.candidate_id = ?
		ORDER BY a.applied_at DESC, a.id DESC`, candidateID)
	if err != nil {
		return nil, s.wrap(err, "listing applications for candidate %d", candidateID)
	}
	defer rows.Close()

	out := []models.Application{}
	for rows.Next() {
		var a models.Application
		if err := rows.Scan(&a.ID, &a.JobID, &a.CandidateID, &a.Message, &a.AppliedAt, &a.JobTitle); err != nil {
			return nil, fmt.Errorf("scanning application: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Payments

const paymentColumns = `id, user_id, role, provider, order_id, payment_id, status, amount_minor, currency,
	created_at, expires_at, paid_at`

func scanPayment(row interface{ Scan(...any) error }) (*models.Payment, error) {
	var (
		p      models.Payment
		paidAt sql.NullTime
	)
	err := row.Scan(&p.ID, &p.UserID, &p.Role, &p.Provider, &p.OrderID, &p.PaymentID, &p.Status,
		&p.AmountMinor, &p.Currency, &p.CreatedAt, &p.ExpiresAt, &paidAt)
	if err != nil {
		return nil, err
	}
	if paidAt.Valid {
		t := paidAt.Time
		p.PaidAt = &t
	}
	return &p, nil
}

func (s *SQLStore) CreatePayment(ctx context.Context, p *models.Payment) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	p.CreatedAt = stamp(p.CreatedAt)
	p.ExpiresAt = stamp(p.ExpiresAt)
	if p.Status == "" {
		p.Status = models.PaymentCreated
	}

	err := s.queryRow(ctx, `INSERT INTO payments (user_id, role, provider, order_id, payment_id, status,
			amount_minor, currency, created_at, expires_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`,
		p.UserID, p.Role, p.Provider, p.OrderID, p.PaymentID, p.Status, p.AmountMinor, p.Currency,
		p.CreatedAt, p.ExpiresAt,
	).Scan(&p.ID)
	if err != nil {
		return s.wrap(err, "recording order %s", p.OrderID)
	}
	return nil
}

func (s *SQLStore) GetPaymentByOrderID(ctx context.Context, orderID string) (*models.Payment, error) {
	p, err := scanPayment(s.queryRow(ctx, "SELECT "+paymentColumns+" FROM payments WHERE order_id = ?", orderID))
	if err != nil {
		return nil, s.wrap(err, "getting order %s", orderID)
	}
	return p, nil
}

// MarkPaymentPaid moves an order to paid. An order that is already paid is
// returned unchanged.
func (s *SQLStore) MarkPaymentPaid(ctx context.Context, orderID, paymentID string, paidAt, expiresAt time.Time) (*models.Payment, error) {
	_, err := s.exec(ctx, `UPDATE payments SET status = ?, payment_id = ?, paid_at = ?, expires_at = ?
		WHERE order_id = ? AND status = ?`,
		models.PaymentPaid, paymentID, stamp(paidAt), stamp(expiresAt), orderID, models.PaymentCreated)
	if err != nil {
		return nil, s.wrap(err, "marking order %s paid", orderID)
	}
	return s.GetPaymentByOrderID(ctx, orderID)
}

// ListPayments returns a user's payments newest first.
func (s *SQLStore) ListPayments(ctx context.Context, userID int64) ([]models.Payment, error) {
	rows, err := s.query(ctx, "SELECT "+paymentColumns+` FROM payments WHERE user_id = ?
		ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, s.wrap(err, "listing payments for user %d", userID)
	}
	defer rows.Close()

	out := []models.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning payment: %w", err)
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// HasActiveAccess reports whether the user holds a paid payment that has
// not yet expired at now.
func (s *SQLStore) HasActiveAccess(ctx context.Context, userID int64, now time.Time) (bool, error) {
	rows, err := s.query(ctx, "SELECT "+paymentColumns+" FROM payments WHERE user_id = ? AND status = ?",
		userID, models.PaymentPaid)
	if err != nil {
		return false, s.wrap(err, "checking access for user %d", userID)
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return false, fmt.Errorf("scanning payment: %w", err)
		}
		if p.Active(now) {
			return true, nil
		}
	}
	return false, rows.Err()
}

// Helpers

func (s *SQLStore) exec(ctx context.Context, q string, args ...any) (sql.Result, error) {
	return s.db.ExecContext(ctx, s.rebind(q), args...)
}

func (s *SQLStore) query(ctx context.Context, q string, args ...any) (*sql.Rows, error) {
	return s.db.QueryContext(ctx, s.rebind(q), args...)
}

func (s *SQLStore) queryRow(ctx context.Context, q string, args ...any) *sql.Row {
	return s.db.QueryRowContext(ctx, s.rebind(q), args...)
}

// rebind rewrites ? placeholders as $1, $2, ... for postgres.
func (s *SQLStore) rebind(q string) string {
	if s.driver != DriverPostgres {
		return q
	}
	var (
		b strings.Builder
		n int
	)
	b.Grow(len(q) + 8)
	for _, r := range q {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// wrap maps driver errors onto ErrNotFound and ErrConflict.
func (s *SQLStore) wrap(err error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("%s: %w", msg, ErrNotFound)
	case isUniqueViolation(err):
		return fmt.Errorf("%s: %w", msg, ErrConflict)
	default:
		return fmt.Errorf("%s: %w", msg, err)
	}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		code := liteErr.Code()
		if code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY {
			return true
		}
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func likePattern(s string) string {
	return "%" + strings.ToLower(s) + "%"
}

// stamp normalises times written to the database so both drivers read
// back the same value.
func stamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}
