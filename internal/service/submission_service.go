package service

import (
	"context"
	"errors"
	"time"

	"github.com/luay-ju/formilon-project/internal/model"
	"github.com/luay-ju/formilon-project/internal/repository"
)

var ErrFormNotPublished = errors.New("form is not accepting submissions")

// SubmissionService handles submission ingestion and listing
type SubmissionService struct {
	formRepo       repository.FormRepo
	submissionRepo repository.SubmissionRepo
	resultsSvc     *ResultsService
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(formRepo repository.FormRepo, submissionRepo repository.SubmissionRepo) *SubmissionService {
	return &SubmissionService{
		formRepo:       formRepo,
		submissionRepo: submissionRepo,
	}
}

// SetResultsService injects the results service for cache invalidation
// and live dashboard updates on new submissions
func (s *SubmissionService) SetResultsService(resultsSvc *ResultsService) {
	s.resultsSvc = resultsSvc
}

// Create stores a submission for a published form. Duplicate answers to
// the same question are stored as sent; the analytics engine counts the
// first one.
func (s *SubmissionService) Create(ctx context.Context, submission *model.Submission) error {
	form, err := s.formRepo.GetByID(ctx, submission.FormID)
	if err != nil {
		return err
	}
	if form == nil {
		return ErrFormNotFound
	}
	if !form.Published {
		return ErrFormNotPublished
	}

	if submission.Metadata.Timestamp == "" {
		submission.Metadata.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	if err := s.submissionRepo.Create(ctx, submission); err != nil {
		return err
	}

	if s.resultsSvc != nil {
		// Recompute and push off the request path
		go s.resultsSvc.NotifySubmission(context.Background(), submission.FormID)
	}
	return nil
}

// GetByID retrieves a single submission
func (s *SubmissionService) GetByID(ctx context.Context, id string) (*model.Submission, error) {
	return s.submissionRepo.GetByID(ctx, id)
}

// ListByForm retrieves all submissions for a form, newest first
func (s *SubmissionService) ListByForm(ctx context.Context, formID string) ([]*model.Submission, error) {
	form, err := s.formRepo.GetByID(ctx, formID)
	if err != nil {
		return nil, err
	}
	if form == nil {
		return nil, ErrFormNotFound
	}
	return s.submissionRepo.GetByFormID(ctx, formID)
}
