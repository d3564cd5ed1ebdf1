package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/luay-ju/formilon-project/internal/analytics"
	"github.com/luay-ju/formilon-project/internal/cache"
	"github.com/luay-ju/formilon-project/internal/model"
	"github.com/luay-ju/formilon-project/internal/repository"
)

// MsgResultsUpdate is pushed to form dashboards whenever a new
// submission changes the report
const MsgResultsUpdate = "results_update"

// ResultsService assembles analytics reports: it fetches the form and
// its submissions, runs the analytics engine, and caches the outcome.
// The cache is an accelerator only; Redis being down degrades to
// recomputation, never to an error.
type ResultsService struct {
	formRepo       repository.FormRepo
	submissionRepo repository.SubmissionRepo
	resultsCache   cache.ResultsCache
	broadcaster    Broadcaster
}

// NewResultsService creates a new results service
func NewResultsService(
	formRepo repository.FormRepo,
	submissionRepo repository.SubmissionRepo,
	resultsCache cache.ResultsCache,
) *ResultsService {
	return &ResultsService{
		formRepo:       formRepo,
		submissionRepo: submissionRepo,
		resultsCache:   resultsCache,
	}
}

// SetBroadcaster injects the live results broadcaster (wsHub implements
// service.Broadcaster)
func (s *ResultsService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// GetReport returns the analytics report for a form as JSON, serving
// from cache when possible. Returns nil JSON when the form doesn't
// exist.
func (s *ResultsService) GetReport(ctx context.Context, formID string, filters model.FilterSet) (json.RawMessage, error) {
	if s.resultsCache != nil {
		cached, err := s.resultsCache.GetReport(ctx, formID, filters)
		if err != nil {
			log.Printf("results: cache read for form %s failed: %v", formID, err)
		}
		if cached != nil {
			return cached, nil
		}
	}

	report, err := s.buildReport(ctx, formID, filters)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, nil
	}

	if s.resultsCache != nil {
		if err := s.resultsCache.SetReport(ctx, formID, filters, report); err != nil {
			log.Printf("results: cache write for form %s failed: %v", formID, err)
		}
	}

	return json.Marshal(report)
}

// buildReport runs the analytics engine over the form's submission set
func (s *ResultsService) buildReport(ctx context.Context, formID string, filters model.FilterSet) (*analytics.Report, error) {
	form, err := s.formRepo.GetByID(ctx, formID)
	if err != nil {
		return nil, err
	}
	if form == nil {
		return nil, nil
	}

	submissions, err := s.submissionRepo.GetByFormID(ctx, formID)
	if err != nil {
		return nil, err
	}
	if submissions == nil {
		submissions = []*model.Submission{}
	}

	completed := 0
	for _, sub := range submissions {
		if sub != nil && sub.Completed {
			completed++
		}
	}
	completionRate := 0.0
	if len(submissions) > 0 {
		completionRate = float64(completed) / float64(len(submissions)) * 100
	}

	return &analytics.Report{
		FormID:           formID,
		TotalSubmissions: len(submissions),
		CompletionRate:   completionRate,
		Questions:        analytics.Analyze(form, submissions, filters),
		GeneratedAt:      time.Now(),
	}, nil
}

// NotifySubmission invalidates cached reports for the form and pushes a
// fresh unfiltered report to connected dashboards
func (s *ResultsService) NotifySubmission(ctx context.Context, formID string) {
	if s.resultsCache != nil {
		if err := s.resultsCache.Invalidate(ctx, formID); err != nil {
			log.Printf("results: cache invalidation for form %s failed: %v", formID, err)
		}
	}

	if s.broadcaster == nil {
		return
	}

	report, err := s.buildReport(ctx, formID, model.FilterSet{})
	if err != nil {
		log.Printf("results: live report for form %s failed: %v", formID, err)
		return
	}
	if report == nil {
		return
	}

	if s.resultsCache != nil {
		if err := s.resultsCache.SetReport(ctx, formID, model.FilterSet{}, report); err != nil {
			log.Printf("results: cache write for form %s failed: %v", formID, err)
		}
	}

	s.broadcaster.BroadcastToForm(formID, MsgResultsUpdate, report)
}
