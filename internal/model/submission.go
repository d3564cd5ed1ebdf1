package model

import "time"

// SubmissionMetadata is free-form client info captured at submit time
type SubmissionMetadata struct {
	Timestamp string `json:"timestamp,omitempty" bson:"timestamp,omitempty"`
	UserAgent string `json:"userAgent,omitempty" bson:"userAgent,omitempty"`
}

// Answer is one respondent's value for one question. Value is kept as
// whatever the client sent (string or number); the analytics normalizer
// coerces it to a canonical string before aggregation.
type Answer struct {
	QuestionID string      `json:"questionId" bson:"questionId"`
	Value      interface{} `json:"value" bson:"value"`
}

// Submission is one respondent's pass through a form
type Submission struct {
	ID        string             `json:"id" bson:"_id,omitempty"`
	FormID    string             `json:"formId" bson:"formId"`
	Completed bool               `json:"completed" bson:"completed"`
	Metadata  SubmissionMetadata `json:"metadata" bson:"metadata"`
	Answers   []Answer           `json:"answers" bson:"answers"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
