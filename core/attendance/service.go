package attendance

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("attendance record not found")

type (
	Repository interface {
		// UpsertMark merges one date's status into the (userID, subject)
		// sheet atomically, creating the sheet if it does not exist, and
		// returns the full updated sheet.
		UpsertMark(ctx context.Context, sheet Sheet, date string, status Status) (Sheet, error)
		QuerySheetsByUser(ctx context.Context, userID string) ([]Sheet, error)
		GetSheet(ctx context.Context, userID, subject string) (Sheet, error)
		DeleteSheet(ctx context.Context, userID, subject string) error
		DeleteSheetsByUser(ctx context.Context, userID string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

var nowFunc = time.Now

// Mark records one date's status for the user in a subject. Other dates on
// the sheet are untouched; marking the same date again overwrites it.
func (svc *Service) Mark(ctx context.Context, userID string, m Mark) (Sheet, error) {
	now := nowFunc().UTC()
	sheet := Sheet{
		ID:        uuid.NewString(),
		UserID:    userID,
		Subject:   strings.ToUpper(m.Subject),
		Records:   StatusMap{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	return svc.repo.UpsertMark(ctx, sheet, m.Date, Status(m.Status))
}

func (svc *Service) ForUser(ctx context.Context, userID string) ([]Sheet, error) {
	return svc.repo.QuerySheetsByUser(ctx, userID)
}

func (svc *Service) ForSubject(ctx context.Context, userID, subject string) (Sheet, error) {
	return svc.repo.GetSheet(ctx, userID, strings.ToUpper(subject))
}

func (svc *Service) DeleteSubject(ctx context.Context, userID, subject string) error {
	return svc.repo.DeleteSheet(ctx, userID, strings.ToUpper(subject))
}

func (svc *Service) ClearAll(ctx context.Context, userID string) error {
	return svc.repo.DeleteSheetsByUser(ctx, userID)
}
