package analytics

import (
	"log"

	"github.com/luay-ju/formilon-project/internal/model"
)

// Analyze produces one QuestionResult per form question, in form order,
// from the raw submission set. It is pure computation over in-memory
// data: no I/O, fresh maps per call, deep-equal output for identical
// inputs. It never returns an error; missing inputs yield an empty list
// and a single bad question yields a placeholder record instead of
// failing the whole report.
func Analyze(form *model.Form, submissions []*model.Submission, filters model.FilterSet) []QuestionResult {
	if form == nil || submissions == nil {
		return []QuestionResult{}
	}

	// Submissions with no answers contribute nothing to any question
	valid := make([]*model.Submission, 0, len(submissions))
	for _, sub := range submissions {
		if sub != nil && len(sub.Answers) > 0 {
			valid = append(valid, sub)
		}
	}

	results := make([]QuestionResult, 0, len(form.Questions))
	for _, q := range form.Questions {
		results = append(results, analyzeQuestion(q, valid, filters))
	}
	return results
}

// analyzeQuestion runs the per-question pipeline: gather answers, apply
// filters, normalize, dispatch. It is the isolation boundary required by
// the error policy: a panic here is logged and replaced with a
// placeholder record so the other questions still render.
func analyzeQuestion(q model.Question, submissions []*model.Submission, filters model.FilterSet) (result QuestionResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("analytics: processing question %s failed: %v", q.ID, r)
			title := q.Title
			if title == "" {
				title = "Untitled Question"
			}
			result = QuestionResult{
				QuestionID:    q.ID,
				QuestionTitle: title,
				QuestionType:  q.Type,
				ResponseCount: 0,
				Analysis:      NewEmptyAnalysis(),
			}
		}
	}()

	candidates := collectAnswers(submissions, q.ID)
	candidates = applyFilters(candidates, filters)

	values := make([]string, 0, len(candidates))
	for _, cand := range candidates {
		values = append(values, Normalize(cand.value))
	}

	props := q.Properties
	return QuestionResult{
		QuestionID:    q.ID,
		QuestionTitle: q.Title,
		QuestionType:  q.Type,
		ResponseCount: len(values),
		Analysis:      Process(q.Type, values, &props),
	}
}
