package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luay-ju/formilon-project/internal/model"
)

func TestFormCreateDefaults(t *testing.T) {
	formRepo := newStubFormRepo()
	svc := NewFormService(formRepo, &stubSubmissionRepo{})

	form := &model.Form{
		OwnerID:   "owner1",
		Published: true, // must be ignored, drafts start unpublished
		Questions: []model.Question{
			{Type: model.QuestionShortText, Title: "Name"},
			{ID: "q_keep", Type: model.QuestionRating, Title: "Rate us"},
		},
	}

	id, err := svc.Create(context.Background(), form)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, "Untitled Form", form.Title)
	assert.False(t, form.Published)

	// ids assigned where missing, kept where present, order rewritten
	assert.NotEmpty(t, form.Questions[0].ID)
	assert.Equal(t, "q_keep", form.Questions[1].ID)
	assert.Equal(t, 0, form.Questions[0].Order)
	assert.Equal(t, 1, form.Questions[1].Order)
}

func TestFormUpdatePreservesOwnership(t *testing.T) {
	existing := &model.Form{
		ID:        "form1",
		OwnerID:   "owner1",
		Title:     "Old title",
		Published: true,
	}
	formRepo := newStubFormRepo(existing)
	svc := NewFormService(formRepo, &stubSubmissionRepo{})

	update := &model.Form{
		ID:      "form1",
		OwnerID: "attacker",
		Title:   "New title",
	}
	require.NoError(t, svc.Update(context.Background(), update))

	assert.Equal(t, "owner1", update.OwnerID)
	assert.True(t, update.Published)
	assert.Equal(t, "New title", formRepo.forms["form1"].Title)
}

func TestFormUpdateNotFound(t *testing.T) {
	svc := NewFormService(newStubFormRepo(), &stubSubmissionRepo{})

	err := svc.Update(context.Background(), &model.Form{ID: "missing"})
	assert.ErrorIs(t, err, ErrFormNotFound)
}

func TestFormSetPublished(t *testing.T) {
	form := &model.Form{ID: "form1", OwnerID: "owner1"}
	formRepo := newStubFormRepo(form)
	svc := NewFormService(formRepo, &stubSubmissionRepo{})

	require.NoError(t, svc.SetPublished(context.Background(), "form1", true))
	assert.True(t, formRepo.forms["form1"].Published)

	assert.ErrorIs(t, svc.SetPublished(context.Background(), "missing", true), ErrFormNotFound)
}

func TestFormDeleteCascades(t *testing.T) {
	form := &model.Form{ID: "form1", OwnerID: "owner1"}
	formRepo := newStubFormRepo(form)
	subRepo := &stubSubmissionRepo{submissions: []*model.Submission{
		{ID: "s1", FormID: "form1"},
		{ID: "s2", FormID: "other"},
	}}
	broadcaster := &stubBroadcaster{}

	svc := NewFormService(formRepo, subRepo)
	svc.SetBroadcaster(broadcaster)

	require.NoError(t, svc.Delete(context.Background(), "form1"))

	assert.NotContains(t, formRepo.forms, "form1")
	require.Len(t, subRepo.submissions, 1)
	assert.Equal(t, "other", subRepo.submissions[0].FormID)
	assert.Equal(t, []string{"form1"}, broadcaster.disconnected)
}

func TestFormSubmissionCount(t *testing.T) {
	subRepo := &stubSubmissionRepo{submissions: []*model.Submission{
		{ID: "s1", FormID: "form1"},
		{ID: "s2", FormID: "form1"},
		{ID: "s3", FormID: "other"},
	}}
	svc := NewFormService(newStubFormRepo(), subRepo)

	count, err := svc.SubmissionCount(context.Background(), "form1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
