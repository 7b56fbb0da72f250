package app

import (
	"fmt"

	"github.com/robfig/cron/v3"
)

type cronRunner = *cron.Cron

// StartScheduler begins the cron-driven daily analysis when enabled in
// config. It is a no-op otherwise.
func (a *App) StartScheduler() error {
	if !a.Config.Scheduler.Enabled {
		a.Logger.Debug().Msg("Scheduler disabled")
		return nil
	}

	c := cron.New()
	_, err := c.AddFunc(a.Config.Scheduler.Schedule, func() {
		a.Logger.Info().Str("schedule", a.Config.Scheduler.Schedule).Msg("Scheduled analysis starting")
		if _, err := a.AnalyzeNews(""); err != nil {
			a.Logger.Error().Err(err).Msg("Scheduled analysis failed")
		}
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", a.Config.Scheduler.Schedule, err)
	}

	c.Start()
	a.cron = c

	a.Logger.Info().Str("schedule", a.Config.Scheduler.Schedule).Msg("Scheduler started")
	return nil
}

// StopScheduler stops the cron scheduler if it is running.
func (a *App) StopScheduler() {
	if a.cron != nil {
		a.cron.Stop()
		a.cron = nil
	}
}
