package analytics

import (
	"time"

	"github.com/luay-ju/formilon-project/internal/model"
)

// Analysis is the aggregation result for one question. The concrete type
// depends on the question type; renderers switch on QuestionResult
// .QuestionType to pick one. Every variant keeps the same core invariant:
// the frequency counts sum to TotalResponses and each percentage is
// count/TotalResponses*100.
type Analysis interface {
	isAnalysis()
}

// TextCount is a frequency entry keyed by the literal answer text
type TextCount struct {
	Text  string `json:"text"`
	Count int    `json:"count"`
}

// CategoryCount is a frequency entry keyed by an option value
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// EmojiCount is a frequency entry keyed by the resolved emoji glyph
type EmojiCount struct {
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}

// RatingCount is a frequency entry keyed by a rating value
type RatingCount struct {
	Rating int `json:"rating"`
	Count  int `json:"count"`
}

// ScalePoint is a frequency entry on the numeric axis, ordered by value
// rather than by rank.
type ScalePoint struct {
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

// TextAnalysis aggregates free-text answers verbatim
type TextAnalysis struct {
	TotalResponses int                `json:"totalResponses"`
	Frequencies    map[string]int     `json:"frequencies"`
	Percentages    map[string]float64 `json:"percentages"`
	MostUsed       []TextCount        `json:"mostUsed"`
}

func (TextAnalysis) isAnalysis() {}

// CategoricalAnalysis aggregates discrete option answers
type CategoricalAnalysis struct {
	TotalResponses int                `json:"totalResponses"`
	Frequencies    map[string]int     `json:"frequencies"`
	Percentages    map[string]float64 `json:"percentages"`
	MostUsed       []CategoryCount    `json:"mostUsed"`
}

func (CategoricalAnalysis) isAnalysis() {}

// NumericAnalysis aggregates number and linear-scale answers. Frequencies
// are keyed by the literal numeric string; SortedValues carries the same
// entries ordered ascending by value.
type NumericAnalysis struct {
	TotalResponses int                `json:"totalResponses"`
	Frequencies    map[string]int     `json:"frequencies"`
	Percentages    map[string]float64 `json:"percentages"`
	MostUsed       []TextCount        `json:"mostUsed"`
	Average        float64            `json:"average"`
	SortedValues   []ScalePoint       `json:"sortedValues"`
}

func (NumericAnalysis) isAnalysis() {}

// DateAnalysis aggregates date answers normalized to YYYY-MM-DD
type DateAnalysis struct {
	TotalResponses int                `json:"totalResponses"`
	Frequencies    map[string]int     `json:"frequencies"`
	Percentages    map[string]float64 `json:"percentages"`
	MostUsed       []TextCount        `json:"mostUsed"`
}

func (DateAnalysis) isAnalysis() {}

// EmojiAnalysis aggregates emoji answers keyed by the resolved glyph
type EmojiAnalysis struct {
	TotalResponses int                `json:"totalResponses"`
	Frequencies    map[string]int     `json:"frequencies"`
	Percentages    map[string]float64 `json:"percentages"`
	MostUsed       []EmojiCount       `json:"mostUsed"`
}

func (EmojiAnalysis) isAnalysis() {}

// RatingAnalysis aggregates rating answers inside [0, maxRating]
type RatingAnalysis struct {
	TotalResponses int                `json:"totalResponses"`
	Frequencies    map[string]int     `json:"frequencies"`
	Percentages    map[string]float64 `json:"percentages"`
	MostUsed       []RatingCount      `json:"mostUsed"`
	Average        float64            `json:"average"`
}

func (RatingAnalysis) isAnalysis() {}

// EmptyAnalysis is the canonical zero record returned for unsupported
// question types and for questions that failed processing. Consumers
// treat it as "nothing renderable", not as an error.
type EmptyAnalysis struct {
	TotalResponses int                `json:"totalResponses"`
	Frequencies    map[string]int     `json:"frequencies"`
	Percentages    map[string]float64 `json:"percentages"`
	MostUsed       []TextCount        `json:"mostUsed"`
}

func (EmptyAnalysis) isAnalysis() {}

// NewEmptyAnalysis returns the canonical empty record with maps and
// slices initialized, so it serializes as {} / [] rather than null.
func NewEmptyAnalysis() EmptyAnalysis {
	return EmptyAnalysis{
		Frequencies: map[string]int{},
		Percentages: map[string]float64{},
		MostUsed:    []TextCount{},
	}
}

// QuestionResult is the engine's output unit, one per form question
type QuestionResult struct {
	QuestionID    string             `json:"questionId"`
	QuestionTitle string             `json:"questionTitle"`
	QuestionType  model.QuestionType `json:"questionType"`
	ResponseCount int                `json:"responseCount"`
	Analysis      Analysis           `json:"analysis"`
}

// Report is the full form-level analytics payload served to dashboards
type Report struct {
	FormID           string           `json:"formId"`
	TotalSubmissions int              `json:"totalSubmissions"`
	CompletionRate   float64          `json:"completionRate"`
	Questions        []QuestionResult `json:"questions"`
	GeneratedAt      time.Time        `json:"generatedAt"`
}
