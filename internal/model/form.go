package model

import "time"

// QuestionType identifies the input widget a question renders with and
// the aggregation strategy its answers get.
type QuestionType string

const (
	QuestionShortText      QuestionType = "short_text"
	QuestionLongText       QuestionType = "long_text"
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionCheckboxes     QuestionType = "checkboxes"
	QuestionDropdown       QuestionType = "dropdown"
	QuestionMultiSelect    QuestionType = "multi_select"
	QuestionNumber         QuestionType = "number"
	QuestionLinearScale    QuestionType = "linear_scale"
	QuestionRating         QuestionType = "rating"
	QuestionDate           QuestionType = "date"
	QuestionEmail          QuestionType = "email"
	QuestionPhone          QuestionType = "phone"
	QuestionEmojiSelector  QuestionType = "emoji_selector"
)

// Option is a selectable choice on categorical and emoji questions.
type Option struct {
	ID    string `json:"id" bson:"id"`
	Label string `json:"label" bson:"label"`
	Value string `json:"value" bson:"value"`
	Emoji string `json:"emoji,omitempty" bson:"emoji,omitempty"`
}

// QuestionProperties is the type-specific settings bag. Which fields are
// meaningful depends on the question type; unused fields stay zero.
type QuestionProperties struct {
	Options   []Option `json:"options,omitempty" bson:"options,omitempty"`
	MinValue  int      `json:"minValue,omitempty" bson:"minValue,omitempty"`
	MaxValue  int      `json:"maxValue,omitempty" bson:"maxValue,omitempty"`
	MinLabel  string   `json:"minLabel,omitempty" bson:"minLabel,omitempty"`
	MaxLabel  string   `json:"maxLabel,omitempty" bson:"maxLabel,omitempty"`
	MaxRating int      `json:"maxRating,omitempty" bson:"maxRating,omitempty"`
	// RatingType is "star" or "number"
	RatingType string `json:"ratingType,omitempty" bson:"ratingType,omitempty"`
}

// Question is a single form question. The analytics engine only reads
// questions; all mutation happens through the form service.
type Question struct {
	ID          string             `json:"id" bson:"id"`
	Type        QuestionType       `json:"type" bson:"type"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Required    bool               `json:"required" bson:"required"`
	Order       int                `json:"order" bson:"order"`
	Properties  QuestionProperties `json:"properties" bson:"properties"`
}

// Form is a published or draft survey owned by a user
type Form struct {
	ID          string     `json:"id" bson:"_id,omitempty"`
	OwnerID     string     `json:"ownerId" bson:"ownerId"`
	Title       string     `json:"title" bson:"title"`
	Description string     `json:"description,omitempty" bson:"description,omitempty"`
	Published   bool       `json:"published" bson:"published"`
	Questions   []Question `json:"questions" bson:"questions"`
	CreatedAt   time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt" bson:"updatedAt"`
}
