package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/skillswaphq/skillswap-backend/internal/feedback"
	"github.com/skillswaphq/skillswap-backend/internal/messages"
	"github.com/skillswaphq/skillswap-backend/internal/swaps"
	"github.com/skillswaphq/skillswap-backend/internal/users"
	"github.com/skillswaphq/skillswap-backend/pkg/config"
	"github.com/skillswaphq/skillswap-backend/pkg/db"
	"github.com/skillswaphq/skillswap-backend/pkg/enums"
	pkgerrors "github.com/skillswaphq/skillswap-backend/pkg/errors"
	"github.com/skillswaphq/skillswap-backend/pkg/logger"
	"github.com/skillswaphq/skillswap-backend/pkg/migrate"
)

type seedUser struct {
	name          string
	email         string
	location      string
	skillsOffered []string
	skillsWanted  []string
	availability  []string
}

var sampleUsers = []seedUser{
	{
		name:          "Marc Demo",
		email:         "marc@example.com",
		location:      "Berlin",
		skillsOffered: []string{"Photoshop", "Illustrator"},
		skillsWanted:  []string{"Spanish"},
		availability:  []string{"weekends", "evenings"},
	},
	{
		name:          "Sofia Reyes",
		email:         "sofia@example.com",
		location:      "Madrid",
		skillsOffered: []string{"Spanish", "Cooking"},
		skillsWanted:  []string{"Photoshop"},
		availability:  []string{"weekends"},
	},
	{
		name:          "Priya Nair",
		email:         "priya@example.com",
		location:      "Bangalore",
		skillsOffered: []string{"Excel", "Data Analysis"},
		skillsWanted:  []string{"Guitar"},
		availability:  []string{"evenings"},
	},
	{
		name:          "Tom Weber",
		email:         "tom@example.com",
		location:      "Berlin",
		skillsOffered: []string{"Guitar", "Music Theory"},
		skillsWanted:  []string{"Excel"},
		availability:  []string{"mornings", "weekends"},
	},
}

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	requireResource(ctx, logg, "config", err)

	if cfg.App.IsProd() {
		logg.Error(ctx, "refusing to seed a production database", fmt.Errorf("env=%s", cfg.App.Env))
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})
	ctx = logg.WithField(ctx, "env", cfg.App.Env)

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	requireResource(ctx, logg, "database", err)
	defer dbClient.Close()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		requireResource(ctx, logg, "migrations", err)
	}

	gormDB := dbClient.DB()
	usersRepo := users.NewRepository(gormDB)
	swapsRepo := swaps.NewRepository(gormDB)
	feedbackRepo := feedback.NewRepository(gormDB)
	messagesRepo := messages.NewRepository(gormDB)

	usersService, err := users.NewService(usersRepo)
	requireResource(ctx, logg, "user service", err)
	swapsService, err := swaps.NewService(swapsRepo, usersRepo, feedbackRepo, cfg.FeatureFlags.StrictLifecycle)
	requireResource(ctx, logg, "swap service", err)
	feedbackService, err := feedback.NewService(feedbackRepo, swapsRepo, usersRepo, cfg.FeatureFlags.StrictLifecycle)
	requireResource(ctx, logg, "feedback service", err)
	messagesService, err := messages.NewService(messagesRepo)
	requireResource(ctx, logg, "message service", err)

	ids := make(map[string]uuid.UUID, len(sampleUsers))
	for _, su := range sampleUsers {
		loc := su.location
		created, err := usersService.Create(ctx, users.CreateUserInput{
			Name:          su.name,
			Email:         su.email,
			Location:      &loc,
			SkillsOffered: su.skillsOffered,
			SkillsWanted:  su.skillsWanted,
			Availability:  su.availability,
		})
		if err != nil {
			if appErr := pkgerrors.As(err); appErr != nil && appErr.Code() == pkgerrors.CodeConflict {
				logg.Info(logg.WithField(ctx, "email", su.email), "user already seeded, skipping")
				existing, findErr := usersRepo.FindByEmail(ctx, su.email)
				requireResource(ctx, logg, "existing user lookup", findErr)
				ids[su.email] = existing.ID
				continue
			}
			requireResource(ctx, logg, "user seed", err)
		}
		ids[su.email] = created.ID
		logg.Info(logg.WithField(ctx, "email", su.email), "seeded user")
	}

	// One completed swap with feedback, one left pending.
	completed, err := swapsService.Create(ctx, swaps.CreateSwapInput{
		FromUserID:   ids["marc@example.com"],
		ToUserID:     ids["sofia@example.com"],
		SkillOffered: "Photoshop",
		SkillWanted:  "Spanish",
		Message:      "Happy to trade design lessons for conversation practice.",
	})
	requireResource(ctx, logg, "swap seed", err)

	_, err = swapsService.Transition(ctx, completed.ID, enums.SwapStatusAccepted)
	requireResource(ctx, logg, "swap accept", err)
	_, err = swapsService.Transition(ctx, completed.ID, enums.SwapStatusCompleted)
	requireResource(ctx, logg, "swap complete", err)

	_, err = swapsService.Create(ctx, swaps.CreateSwapInput{
		FromUserID:   ids["priya@example.com"],
		ToUserID:     ids["tom@example.com"],
		SkillOffered: "Excel",
		SkillWanted:  "Guitar",
		Message:      "Weekly spreadsheet help in exchange for guitar basics?",
	})
	requireResource(ctx, logg, "swap seed", err)

	_, err = feedbackService.Create(ctx, feedback.CreateFeedbackInput{
		FromUserID:    ids["marc@example.com"],
		ToUserID:      ids["sofia@example.com"],
		SwapRequestID: completed.ID,
		Rating:        5,
		Comment:       "Patient teacher, sessions were great.",
	})
	requireResource(ctx, logg, "feedback seed", err)

	welcomeType := enums.MessageCategoryInfo
	_, err = messagesService.Create(ctx, messages.CreateMessageInput{
		Title:   "Welcome to SkillSwap",
		Content: "Browse the member directory and send your first swap request.",
		Type:    &welcomeType,
	})
	requireResource(ctx, logg, "message seed", err)

	logg.Info(ctx, "seed complete")
}

func requireResource(ctx context.Context, logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logg.Error(ctx, fmt.Sprintf("resource not working: %s", resource), err)
	os.Exit(1)
}
