package analytics

import "github.com/luay-ju/formilon-project/internal/model"

// Process routes a question's normalized answer values to the aggregator
// for its type. Unknown types, and the sensitive email/phone types that
// are never visualized, fall through to the canonical empty record; no
// question type fails the report. Process never panics on its own.
func Process(qt model.QuestionType, values []string, props *model.QuestionProperties) Analysis {
	switch qt {
	case model.QuestionShortText, model.QuestionLongText:
		return aggregateText(values)

	case model.QuestionMultipleChoice, model.QuestionCheckboxes,
		model.QuestionDropdown, model.QuestionMultiSelect:
		return aggregateCategorical(values)

	case model.QuestionNumber, model.QuestionLinearScale:
		return aggregateNumeric(values)

	case model.QuestionDate:
		return aggregateDate(values)

	case model.QuestionRating:
		maxRating := 0
		if props != nil {
			maxRating = props.MaxRating
		}
		return aggregateRating(values, maxRating)

	case model.QuestionEmojiSelector:
		if props == nil || props.Options == nil {
			return NewEmptyAnalysis()
		}
		return aggregateEmoji(values, props.Options)

	case model.QuestionEmail, model.QuestionPhone:
		return NewEmptyAnalysis()

	default:
		return NewEmptyAnalysis()
	}
}
