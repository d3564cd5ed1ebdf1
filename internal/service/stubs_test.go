package service

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/luay-ju/formilon-project/internal/analytics"
	"github.com/luay-ju/formilon-project/internal/model"
)

// In-memory fakes for the repository and cache interfaces, shared by the
// service tests.

type stubFormRepo struct {
	forms map[string]*model.Form
}

func newStubFormRepo(forms ...*model.Form) *stubFormRepo {
	r := &stubFormRepo{forms: map[string]*model.Form{}}
	for _, f := range forms {
		r.forms[f.ID] = f
	}
	return r
}

func (r *stubFormRepo) Create(ctx context.Context, form *model.Form) (string, error) {
	if form.ID == "" {
		form.ID = "form_stub"
	}
	r.forms[form.ID] = form
	return form.ID, nil
}

func (r *stubFormRepo) GetByID(ctx context.Context, id string) (*model.Form, error) {
	return r.forms[id], nil
}

func (r *stubFormRepo) GetByOwnerID(ctx context.Context, ownerID string) ([]*model.Form, error) {
	var out []*model.Form
	for _, f := range r.forms {
		if f.OwnerID == ownerID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *stubFormRepo) Update(ctx context.Context, form *model.Form) error {
	r.forms[form.ID] = form
	return nil
}

func (r *stubFormRepo) SetPublished(ctx context.Context, id string, published bool) error {
	if f, ok := r.forms[id]; ok {
		f.Published = published
	}
	return nil
}

func (r *stubFormRepo) Delete(ctx context.Context, id string) error {
	delete(r.forms, id)
	return nil
}

type stubSubmissionRepo struct {
	submissions []*model.Submission
}

func (r *stubSubmissionRepo) Create(ctx context.Context, submission *model.Submission) error {
	if submission.ID == "" {
		submission.ID = "sub_stub"
	}
	r.submissions = append(r.submissions, submission)
	return nil
}

func (r *stubSubmissionRepo) GetByID(ctx context.Context, id string) (*model.Submission, error) {
	for _, s := range r.submissions {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (r *stubSubmissionRepo) GetByFormID(ctx context.Context, formID string) ([]*model.Submission, error) {
	var out []*model.Submission
	for _, s := range r.submissions {
		if s.FormID == formID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *stubSubmissionRepo) CountByFormID(ctx context.Context, formID string) (int64, error) {
	subs, _ := r.GetByFormID(ctx, formID)
	return int64(len(subs)), nil
}

func (r *stubSubmissionRepo) DeleteByFormID(ctx context.Context, formID string) error {
	var kept []*model.Submission
	for _, s := range r.submissions {
		if s.FormID != formID {
			kept = append(kept, s)
		}
	}
	r.submissions = kept
	return nil
}

type stubResultsCache struct {
	store       map[string]json.RawMessage
	getErr      error
	setErr      error
	invalidated []string
}

func newStubResultsCache() *stubResultsCache {
	return &stubResultsCache{store: map[string]json.RawMessage{}}
}

func (c *stubResultsCache) key(formID string, filters model.FilterSet) string {
	return formID + "|" + filters.Canonical()
}

func (c *stubResultsCache) GetReport(ctx context.Context, formID string, filters model.FilterSet) (json.RawMessage, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.store[c.key(formID, filters)], nil
}

func (c *stubResultsCache) SetReport(ctx context.Context, formID string, filters model.FilterSet, report *analytics.Report) error {
	if c.setErr != nil {
		return c.setErr
	}
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	c.store[c.key(formID, filters)] = data
	return nil
}

func (c *stubResultsCache) Invalidate(ctx context.Context, formID string) error {
	c.invalidated = append(c.invalidated, formID)
	for key := range c.store {
		if len(key) >= len(formID) && key[:len(formID)] == formID {
			delete(c.store, key)
		}
	}
	return nil
}

type stubBroadcaster struct {
	mu           sync.Mutex
	broadcasts   []broadcastCall
	disconnected []string
}

type broadcastCall struct {
	formID  string
	msgType string
	payload interface{}
}

func (b *stubBroadcaster) BroadcastToForm(formID string, msgType string, payload interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.broadcasts = append(b.broadcasts, broadcastCall{formID: formID, msgType: msgType, payload: payload})
}

func (b *stubBroadcaster) DisconnectForm(formID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.disconnected = append(b.disconnected, formID)
}
