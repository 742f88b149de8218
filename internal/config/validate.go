package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // quiz.timezone must resolve without a host zoneinfo database

	"github.com/heartmarshall/kotoba-backend/internal/domain"
)

const maxGoalDays = 3650

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %s)", c.Auth.AccessTokenTTL)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if err := c.Quiz.validate(); err != nil {
		return fmt.Errorf("quiz: %w", err)
	}

	if c.Stats.GoalDays < 1 || c.Stats.GoalDays > maxGoalDays {
		return fmt.Errorf("stats.goal_days must be in [1, %d] (got %d)", maxGoalDays, c.Stats.GoalDays)
	}

	if c.RateLimit.Enabled && c.RateLimit.PerMinute <= 0 {
		return fmt.Errorf("rate_limit.per_minute must be > 0 (got %d)", c.RateLimit.PerMinute)
	}
	if c.RateLimit.Enabled && c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %s)", c.RateLimit.CleanupInterval)
	}

	return nil
}

func (q *QuizConfig) validate() error {
	if q.NumOptions < 2 {
		return fmt.Errorf("num_options must be >= 2 (got %d)", q.NumOptions)
	}
	if q.NewWordProb < 0 || q.NewWordProb > 1 {
		return fmt.Errorf("new_word_prob must be in [0, 1] (got %v)", q.NewWordProb)
	}
	if q.UnfamiliarityThreshold < 0 {
		return fmt.Errorf("unfamiliarity_threshold must be >= 0 (got %v)", q.UnfamiliarityThreshold)
	}
	if q.ReviewFloor < 0 || q.ReviewFloor > 1 {
		return fmt.Errorf("review_floor must be in [0, 1] (got %v)", q.ReviewFloor)
	}

	loc, err := time.LoadLocation(q.Timezone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", q.Timezone, err)
	}
	q.Location = loc

	return nil
}

// Domain converts the quiz and stats sections to the service configuration.
// Call after Validate so Location is resolved.
func (c *Config) Domain() domain.QuizConfig {
	loc := c.Quiz.Location
	if loc == nil {
		loc = time.UTC
	}
	return domain.QuizConfig{
		NumOptions:             c.Quiz.NumOptions,
		NewWordProb:            c.Quiz.NewWordProb,
		UnfamiliarityThreshold: c.Quiz.UnfamiliarityThreshold,
		ReviewFloor:            c.Quiz.ReviewFloor,
		PreferUnanswered:       c.Quiz.PreferUnanswered,
		Location:               loc,
		DefaultGoalDays:        c.Stats.GoalDays,
	}
}
