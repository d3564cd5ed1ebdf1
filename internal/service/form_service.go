package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/luay-ju/formilon-project/internal/model"
	"github.com/luay-ju/formilon-project/internal/repository"
)

var ErrFormNotFound = errors.New("form not found")

// FormService handles form CRUD operations
type FormService struct {
	formRepo       repository.FormRepo
	submissionRepo repository.SubmissionRepo
	broadcaster    Broadcaster
}

// NewFormService creates a new form service
func NewFormService(formRepo repository.FormRepo, submissionRepo repository.SubmissionRepo) *FormService {
	return &FormService{
		formRepo:       formRepo,
		submissionRepo: submissionRepo,
	}
}

// SetBroadcaster injects the broadcaster used to close live dashboards
// when a form is deleted (wsHub implements service.Broadcaster)
func (s *FormService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Create creates a new form. New forms start unpublished; questions
// without ids get one assigned.
func (s *FormService) Create(ctx context.Context, form *model.Form) (string, error) {
	if form.Title == "" {
		form.Title = "Untitled Form"
	}
	form.Published = false
	assignQuestionIDs(form)
	return s.formRepo.Create(ctx, form)
}

// GetByID retrieves a form by ID
func (s *FormService) GetByID(ctx context.Context, id string) (*model.Form, error) {
	return s.formRepo.GetByID(ctx, id)
}

// GetByOwnerID retrieves all forms for an owner
func (s *FormService) GetByOwnerID(ctx context.Context, ownerID string) ([]*model.Form, error) {
	return s.formRepo.GetByOwnerID(ctx, ownerID)
}

// SubmissionCount returns how many submissions a form has received
func (s *FormService) SubmissionCount(ctx context.Context, formID string) (int64, error) {
	return s.submissionRepo.CountByFormID(ctx, formID)
}

// Update updates an existing form
func (s *FormService) Update(ctx context.Context, form *model.Form) error {
	existing, err := s.formRepo.GetByID(ctx, form.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrFormNotFound
	}

	form.OwnerID = existing.OwnerID
	form.Published = existing.Published
	form.CreatedAt = existing.CreatedAt
	assignQuestionIDs(form)
	return s.formRepo.Update(ctx, form)
}

// SetPublished publishes or unpublishes a form
func (s *FormService) SetPublished(ctx context.Context, id string, published bool) error {
	form, err := s.formRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if form == nil {
		return ErrFormNotFound
	}
	return s.formRepo.SetPublished(ctx, id, published)
}

// Delete deletes a form and all of its submissions
func (s *FormService) Delete(ctx context.Context, id string) error {
	if err := s.formRepo.Delete(ctx, id); err != nil {
		return err
	}
	if s.broadcaster != nil {
		s.broadcaster.DisconnectForm(id)
	}
	return s.submissionRepo.DeleteByFormID(ctx, id)
}

func assignQuestionIDs(form *model.Form) {
	for i := range form.Questions {
		if form.Questions[i].ID == "" {
			form.Questions[i].ID = uuid.New().String()
		}
		form.Questions[i].Order = i
	}
}
