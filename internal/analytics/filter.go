package analytics

import (
	"log"

	"github.com/luay-ju/formilon-project/internal/model"
)

// answerRef pairs an extracted answer value with its parent submission,
// so filter cross-referencing never has to look the submission up again.
type answerRef struct {
	submission *model.Submission
	value      interface{}
}

// collectAnswers extracts each submission's answer to questionID. A
// submission contributes at most one answer per question; if the data
// carries duplicates, the first match wins.
func collectAnswers(submissions []*model.Submission, questionID string) []answerRef {
	out := make([]answerRef, 0, len(submissions))
	for _, sub := range submissions {
		if ans, ok := findAnswer(sub, questionID); ok {
			out = append(out, answerRef{submission: sub, value: ans.Value})
		}
	}
	return out
}

func findAnswer(sub *model.Submission, questionID string) (model.Answer, bool) {
	if sub == nil {
		return model.Answer{}, false
	}
	for _, ans := range sub.Answers {
		if ans.QuestionID == questionID {
			return ans, true
		}
	}
	return model.Answer{}, false
}

// applyFilters keeps the candidates whose parent submission satisfies
// every active filter.
func applyFilters(candidates []answerRef, filters model.FilterSet) []answerRef {
	if filters.Empty() {
		return candidates
	}
	out := make([]answerRef, 0, len(candidates))
	for _, cand := range candidates {
		if passesFilters(cand.submission, filters) {
			out = append(out, cand)
		}
	}
	return out
}

// passesFilters cross-references the submission's other answers against
// the filter set. A submission that can't be cross-referenced at all is
// let through: losing one filter beats losing the report.
func passesFilters(sub *model.Submission, filters model.FilterSet) bool {
	for questionID, allowed := range filters {
		if len(allowed) == 0 {
			continue
		}
		if sub == nil {
			log.Printf("analytics: no submission to cross-reference for filter %s, treating as satisfied", questionID)
			continue
		}
		ans, ok := findAnswer(sub, questionID)
		if !ok {
			return false
		}
		if !containsValue(allowed, Normalize(ans.Value)) {
			return false
		}
	}
	return true
}

func containsValue(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
