package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

func (j *JobService) handleWelcomeEmailTask(ctx context.Context, t *asynq.Task) error {
	var p WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal welcome email payload: %w: %w", err, asynq.SkipRetry)
	}

	if j.emailClient == nil {
		j.logger.Warn().Str("to", p.To).Msg("email delivery not configured, dropping welcome email")
		return nil
	}

	j.logger.Info().
		Str("type", "welcome").
		Str("to", p.To).
		Msg("processing welcome email task")

	if err := j.emailClient.SendWelcomeEmail(p.To, p.Role); err != nil {
		j.logger.Error().
			Str("type", "welcome").
			Str("to", p.To).
			Err(err).
			Msg("failed to send welcome email")
		return err
	}

	return nil
}

func (j *JobService) handleStorageDeleteTask(ctx context.Context, t *asynq.Task) error {
	var p StorageDeletePayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal storage delete payload: %w: %w", err, asynq.SkipRetry)
	}

	if j.store == nil || len(p.Paths) == 0 {
		return nil
	}

	if err := j.store.Remove(ctx, p.Paths...); err != nil {
		j.logger.Error().
			Strs("paths", p.Paths).
			Err(err).
			Msg("failed to remove objects")
		return err
	}

	j.logger.Info().Strs("paths", p.Paths).Msg("removed objects")
	return nil
}
