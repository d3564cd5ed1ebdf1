package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/luay-ju/formilon-project/internal/config"
	"github.com/luay-ju/formilon-project/internal/model"
	"github.com/luay-ju/formilon-project/internal/repository"
)

const submissionCount = 40

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDatabase)
	formRepo := repository.NewFormRepo(db)
	submissionRepo := repository.NewSubmissionRepo(db)

	// Owner id must match what the auth service derives for the admin user
	ownerID := "user_" + uuid.NewSHA1(uuid.NameSpaceOID, []byte(cfg.AdminUsername)).String()[:8]

	qExperience := uuid.New().String()
	qSatisfaction := uuid.New().String()
	qTeamSize := uuid.New().String()
	qRecommend := uuid.New().String()
	qRating := uuid.New().String()
	qStartDate := uuid.New().String()
	qMood := uuid.New().String()

	moodOptions := []model.Option{
		{ID: uuid.New().String(), Label: "Happy", Value: "happy", Emoji: "😊"},
		{ID: uuid.New().String(), Label: "Neutral", Value: "neutral", Emoji: "😐"},
		{ID: uuid.New().String(), Label: "Frustrated", Value: "frustrated", Emoji: "😤"},
	}

	form := &model.Form{
		OwnerID:     ownerID,
		Title:       "Product Feedback",
		Description: "Quarterly feedback round for the dashboard redesign.",
		Published:   true,
		Questions: []model.Question{
			{ID: qExperience, Type: model.QuestionShortText, Title: "Describe your experience in one word", Order: 0},
			{ID: qSatisfaction, Type: model.QuestionMultipleChoice, Title: "How satisfied are you overall?", Required: true, Order: 1,
				Properties: model.QuestionProperties{Options: []model.Option{
					{ID: uuid.New().String(), Label: "Very satisfied", Value: "very_satisfied"},
					{ID: uuid.New().String(), Label: "Satisfied", Value: "satisfied"},
					{ID: uuid.New().String(), Label: "Unsatisfied", Value: "unsatisfied"},
				}}},
			{ID: qTeamSize, Type: model.QuestionNumber, Title: "How many people are on your team?", Order: 2},
			{ID: qRecommend, Type: model.QuestionLinearScale, Title: "How likely are you to recommend us?", Order: 3,
				Properties: model.QuestionProperties{MinValue: 1, MaxValue: 10, MinLabel: "Not likely", MaxLabel: "Very likely"}},
			{ID: qRating, Type: model.QuestionRating, Title: "Rate the new dashboard", Order: 4,
				Properties: model.QuestionProperties{MaxRating: 5, RatingType: "star"}},
			{ID: qStartDate, Type: model.QuestionDate, Title: "When did you start using the product?", Order: 5},
			{ID: qMood, Type: model.QuestionEmojiSelector, Title: "How does the redesign make you feel?", Order: 6,
				Properties: model.QuestionProperties{Options: moodOptions}},
		},
	}

	formID, err := formRepo.Create(ctx, form)
	if err != nil {
		log.Fatalf("Failed to seed form: %v", err)
	}

	words := []string{"smooth", "fast", "confusing", "smooth", "delightful"}
	satisfaction := []string{"very_satisfied", "satisfied", "satisfied", "unsatisfied"}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := 0; i < submissionCount; i++ {
		day := time.Date(2025, time.March, 1+r.Intn(28), 0, 0, 0, 0, time.UTC)
		submission := &model.Submission{
			FormID:    formID,
			Completed: r.Intn(10) > 1,
			Metadata: model.SubmissionMetadata{
				Timestamp: time.Now().UTC().Format(time.RFC3339),
				UserAgent: "seed/1.0",
			},
			Answers: []model.Answer{
				{QuestionID: qExperience, Value: words[r.Intn(len(words))]},
				{QuestionID: qSatisfaction, Value: satisfaction[r.Intn(len(satisfaction))]},
				{QuestionID: qTeamSize, Value: fmt.Sprintf("%d", 2+r.Intn(12))},
				{QuestionID: qRecommend, Value: fmt.Sprintf("%d", 1+r.Intn(10))},
				{QuestionID: qRating, Value: fmt.Sprintf("%d", 1+r.Intn(5))},
				{QuestionID: qStartDate, Value: day.Format("2006-01-02")},
				{QuestionID: qMood, Value: moodOptions[r.Intn(len(moodOptions))].ID},
			},
		}
		if err := submissionRepo.Create(ctx, submission); err != nil {
			log.Fatalf("Failed to seed submission %d: %v", i, err)
		}
	}

	fmt.Printf("Seeded form %s with %d submissions for owner %s\n", formID, submissionCount, ownerID)
}
