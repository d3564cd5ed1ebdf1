package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luay-ju/formilon-project/internal/model"
)

func testForm() *model.Form {
	return &model.Form{
		ID:    "form1",
		Title: "Feedback",
		Questions: []model.Question{
			{ID: "q_name", Type: model.QuestionShortText, Title: "Your name", Order: 0},
			{ID: "q_color", Type: model.QuestionMultipleChoice, Title: "Favorite color", Order: 1},
			{ID: "q_scale", Type: model.QuestionLinearScale, Title: "How likely", Order: 2},
		},
	}
}

func TestAnalyzeNilInputs(t *testing.T) {
	assert.Equal(t, []QuestionResult{}, Analyze(nil, []*model.Submission{}, nil))
	assert.Equal(t, []QuestionResult{}, Analyze(testForm(), nil, nil))
}

func TestAnalyzeEmptySubmissions(t *testing.T) {
	results := Analyze(testForm(), []*model.Submission{}, nil)

	require.Len(t, results, 3)
	for _, res := range results {
		assert.Zero(t, res.ResponseCount)
	}
}

func TestAnalyzePreservesQuestionOrder(t *testing.T) {
	results := Analyze(testForm(), []*model.Submission{}, nil)

	require.Len(t, results, 3)
	assert.Equal(t, "q_name", results[0].QuestionID)
	assert.Equal(t, "q_color", results[1].QuestionID)
	assert.Equal(t, "q_scale", results[2].QuestionID)
	assert.Equal(t, "Your name", results[0].QuestionTitle)
	assert.Equal(t, model.QuestionLinearScale, results[2].QuestionType)
}

func TestAnalyzeSkipsAnswerlessSubmissions(t *testing.T) {
	subs := []*model.Submission{
		submissionWith(model.Answer{QuestionID: "q_color", Value: "blue"}),
		{FormID: "form1"}, // opened the form, answered nothing
		nil,
	}

	results := Analyze(testForm(), subs, nil)

	require.Len(t, results, 3)
	assert.Equal(t, 1, results[1].ResponseCount)
}

func TestAnalyzeAggregatesPerQuestion(t *testing.T) {
	subs := []*model.Submission{
		submissionWith(
			model.Answer{QuestionID: "q_color", Value: "blue"},
			model.Answer{QuestionID: "q_scale", Value: float64(5)},
		),
		submissionWith(
			model.Answer{QuestionID: "q_color", Value: "blue"},
			model.Answer{QuestionID: "q_scale", Value: float64(3)},
		),
		submissionWith(
			model.Answer{QuestionID: "q_color", Value: "red"},
		),
	}

	results := Analyze(testForm(), subs, nil)
	require.Len(t, results, 3)

	// q_name: nobody answered
	assert.Zero(t, results[0].ResponseCount)

	color, ok := results[1].Analysis.(CategoricalAnalysis)
	require.True(t, ok)
	assert.Equal(t, 3, results[1].ResponseCount)
	assert.Equal(t, map[string]int{"blue": 2, "red": 1}, color.Frequencies)

	scale, ok := results[2].Analysis.(NumericAnalysis)
	require.True(t, ok)
	assert.Equal(t, 2, results[2].ResponseCount)
	assert.InDelta(t, 4.0, scale.Average, 1e-9)
}

func TestAnalyzeFilterNarrowsEveryQuestion(t *testing.T) {
	subs := []*model.Submission{
		submissionWith(
			model.Answer{QuestionID: "q_color", Value: "blue"},
			model.Answer{QuestionID: "q_scale", Value: float64(5)},
		),
		submissionWith(
			model.Answer{QuestionID: "q_color", Value: "red"},
			model.Answer{QuestionID: "q_scale", Value: float64(1)},
		),
	}

	unfiltered := Analyze(testForm(), subs, nil)
	filtered := Analyze(testForm(), subs, model.FilterSet{"q_color": {"blue"}})

	require.Len(t, filtered, 3)
	for i := range filtered {
		// filtering never grows a count
		assert.LessOrEqual(t, filtered[i].ResponseCount, unfiltered[i].ResponseCount)
	}

	scale, ok := filtered[2].Analysis.(NumericAnalysis)
	require.True(t, ok)
	assert.Equal(t, 1, filtered[2].ResponseCount)
	assert.InDelta(t, 5.0, scale.Average, 1e-9)

	// the filter question itself reflects only the selected slice
	color, ok := filtered[1].Analysis.(CategoricalAnalysis)
	require.True(t, ok)
	assert.Equal(t, map[string]int{"blue": 1}, color.Frequencies)
}

func TestAnalyzeUnknownTypeCountsResponses(t *testing.T) {
	form := &model.Form{
		ID: "form1",
		Questions: []model.Question{
			{ID: "q_sig", Type: model.QuestionType("signature"), Title: "Sign here"},
		},
	}
	subs := []*model.Submission{
		submissionWith(model.Answer{QuestionID: "q_sig", Value: "scribble"}),
	}

	results := Analyze(form, subs, nil)

	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].ResponseCount)
	assert.IsType(t, EmptyAnalysis{}, results[0].Analysis)
}

func TestAnalyzeDeterministic(t *testing.T) {
	subs := []*model.Submission{
		submissionWith(
			model.Answer{QuestionID: "q_name", Value: "ada"},
			model.Answer{QuestionID: "q_color", Value: "blue"},
			model.Answer{QuestionID: "q_scale", Value: float64(4)},
		),
		submissionWith(
			model.Answer{QuestionID: "q_name", Value: "grace"},
			model.Answer{QuestionID: "q_color", Value: "red"},
			model.Answer{QuestionID: "q_scale", Value: float64(2)},
		),
	}
	filters := model.FilterSet{"q_color": {"blue", "red"}}

	first := Analyze(testForm(), subs, filters)
	second := Analyze(testForm(), subs, filters)

	assert.Equal(t, first, second)
}

func TestAnalyzeDoesNotMutateInputs(t *testing.T) {
	subs := []*model.Submission{
		submissionWith(model.Answer{QuestionID: "q_color", Value: "blue"}),
	}

	Analyze(testForm(), subs, model.FilterSet{"q_color": {"blue"}})

	require.Len(t, subs[0].Answers, 1)
	assert.Equal(t, "blue", subs[0].Answers[0].Value)
}
