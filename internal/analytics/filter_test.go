package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luay-ju/formilon-project/internal/model"
)

func submissionWith(answers ...model.Answer) *model.Submission {
	return &model.Submission{FormID: "form1", Answers: answers}
}

func TestCollectAnswersFirstMatchWins(t *testing.T) {
	sub := submissionWith(
		model.Answer{QuestionID: "q1", Value: "first"},
		model.Answer{QuestionID: "q1", Value: "second"},
	)

	refs := collectAnswers([]*model.Submission{sub}, "q1")

	require.Len(t, refs, 1)
	assert.Equal(t, "first", refs[0].value)
}

func TestCollectAnswersSkipsMissing(t *testing.T) {
	withAnswer := submissionWith(model.Answer{QuestionID: "q1", Value: "a"})
	without := submissionWith(model.Answer{QuestionID: "q2", Value: "b"})

	refs := collectAnswers([]*model.Submission{withAnswer, without, nil}, "q1")

	require.Len(t, refs, 1)
	assert.Equal(t, "a", refs[0].value)
}

func TestApplyFiltersEmptySetKeepsAll(t *testing.T) {
	refs := []answerRef{
		{submission: submissionWith(), value: "a"},
		{submission: submissionWith(), value: "b"},
	}

	assert.Equal(t, refs, applyFilters(refs, nil))
	assert.Equal(t, refs, applyFilters(refs, model.FilterSet{}))
}

func TestApplyFiltersKeepsMatching(t *testing.T) {
	young := submissionWith(
		model.Answer{QuestionID: "q_age", Value: "18-25"},
		model.Answer{QuestionID: "q_color", Value: "blue"},
	)
	old := submissionWith(
		model.Answer{QuestionID: "q_age", Value: "46-60"},
		model.Answer{QuestionID: "q_color", Value: "red"},
	)

	refs := collectAnswers([]*model.Submission{young, old}, "q_color")
	filtered := applyFilters(refs, model.FilterSet{"q_age": {"18-25", "26-35"}})

	require.Len(t, filtered, 1)
	assert.Equal(t, "blue", filtered[0].value)
}

func TestApplyFiltersRejectsMissingFilterAnswer(t *testing.T) {
	// answered the target question but never the filter question
	sub := submissionWith(model.Answer{QuestionID: "q_color", Value: "green"})

	refs := collectAnswers([]*model.Submission{sub}, "q_color")
	filtered := applyFilters(refs, model.FilterSet{"q_age": {"18-25"}})

	assert.Empty(t, filtered)
}

func TestApplyFiltersEmptyAllowListIsInactive(t *testing.T) {
	sub := submissionWith(model.Answer{QuestionID: "q_color", Value: "green"})

	refs := collectAnswers([]*model.Submission{sub}, "q_color")
	filtered := applyFilters(refs, model.FilterSet{"q_age": {}})

	assert.Len(t, filtered, 1)
}

func TestApplyFiltersConjunction(t *testing.T) {
	sub := submissionWith(
		model.Answer{QuestionID: "q_age", Value: "18-25"},
		model.Answer{QuestionID: "q_region", Value: "north"},
		model.Answer{QuestionID: "q_color", Value: "blue"},
	)

	refs := collectAnswers([]*model.Submission{sub}, "q_color")

	// both satisfied
	assert.Len(t, applyFilters(refs, model.FilterSet{
		"q_age":    {"18-25"},
		"q_region": {"north", "south"},
	}), 1)

	// one fails
	assert.Empty(t, applyFilters(refs, model.FilterSet{
		"q_age":    {"18-25"},
		"q_region": {"east"},
	}))
}

func TestApplyFiltersNormalizesNumericValues(t *testing.T) {
	// answer decoded as float64, filter supplied as string
	sub := submissionWith(
		model.Answer{QuestionID: "q_scale", Value: float64(5)},
		model.Answer{QuestionID: "q_color", Value: "blue"},
	)

	refs := collectAnswers([]*model.Submission{sub}, "q_color")
	filtered := applyFilters(refs, model.FilterSet{"q_scale": {"5"}})

	assert.Len(t, filtered, 1)
}

func TestPassesFiltersNilSubmissionIsPermissive(t *testing.T) {
	assert.True(t, passesFilters(nil, model.FilterSet{"q_age": {"18-25"}}))
}

func TestFilterSetCanonical(t *testing.T) {
	fs := model.FilterSet{
		"q_b": {"2", "1"},
		"q_a": {"x"},
		"q_c": {},
	}

	// sorted by question id and value, empty allow-lists dropped
	assert.Equal(t, "q_a:x;q_b:1,2", fs.Canonical())
	assert.Equal(t, "", model.FilterSet{}.Canonical())
}
