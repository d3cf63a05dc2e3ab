package jobs

import (
	"context"
	"log"

	"github.com/artikelsmederij/artikel-generator-api/pkg/api_client/services"
	"github.com/artikelsmederij/artikel-generator-api/pkg/tools"
	"github.com/robfig/cron/v3"
)

// ScheduleStuckSweep sets up a cron job that fails articles stuck in the
// processing state, e.g. after a crash during a provider call.
func ScheduleStuckSweep(ctx context.Context, svc *services.ArticlesAPIService) *cron.Cron {
	c := cron.New()
	_, _ = c.AddFunc("@hourly", func() {
		tools.Dispatch(context.Background(), "sweep_stuck", func(ctx context.Context) error {
			swept, err := svc.SweepStuck(ctx)
			if swept > 0 {
				log.Printf("[INFO] sweep_stuck: marked %d stuck article(s) as failed", swept)
			}
			return err
		})
	})
	c.Start()

	go func() {
		<-ctx.Done()
		c.Stop()
	}()
	return c
}
