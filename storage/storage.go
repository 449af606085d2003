package storage

import (
	"context"
	"errors"
	"time"

	"github.com/dreamjobs/portal/models"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a write violates a uniqueness constraint.
	ErrConflict = errors.New("already exists")
)

// Repository is everything the HTTP layer needs from the database.
type Repository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByGoogleID(ctx context.Context, googleID string) (*models.User, error)
	LinkGoogleAccount(ctx context.Context, userID int64, googleID string) error

	GetProfile(ctx context.Context, userID int64) (*models.CandidateProfile, error)
	UpsertProfile(ctx context.Context, profile *models.CandidateProfile) error
	SetResume(ctx context.Context, userID int64, file, name, mime, text string) error
	ListProfiles(ctx context.Context, query string) ([]models.CandidateProfile, error)

	CreateJob(ctx context.Context, job *models.Job) error
	GetJob(ctx context.Context, id int64) (*models.Job, error)
	ListJobs(ctx context.Context, filter models.JobFilter) ([]models.Job, error)
	LatestJobByEmployer(ctx context.Context, employerID int64) (*models.Job, error)

	CreateApplication(ctx context.Context, app *models.Application) error
	ListApplicantsByEmployer(ctx context.Context, employerID int64) ([]models.ApplicantView, error)
	ListApplicationsByCandidate(ctx context.Context, candidateID int64) ([]models.Application, error)

	CreatePayment(ctx context.Context, payment *models.Payment) error
	GetPaymentByOrderID(ctx context.Context, orderID string) (*models.Payment, error)
	MarkPaymentPaid(ctx context.Context, orderID, paymentID string, paidAt, expiresAt time.Time) (*models.Payment, error)
	ListPayments(ctx context.Context, userID int64) ([]models.Payment, error)
	HasActiveAccess(ctx context.Context, userID int64, now time.Time) (bool, error)

	Ping(ctx context.Context) error
	Close() error
}
