package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"shoply/app/services"
	"shoply/global"
)

// Publisher drives scheduled-post publishing off a cron tick. Each tick scans
// the DB for due pending posts so a missed tick or restart loses nothing.
type Publisher struct {
	social *services.SocialService
	spec   string
	sched  *cron.Cron
}

func NewPublisher(social *services.SocialService, spec string) *Publisher {
	if spec == "" {
		spec = "@every 1m"
	}
	return &Publisher{social: social, spec: spec}
}

func (p *Publisher) Start(ctx context.Context) error {
	p.sched = cron.New()
	_, err := p.sched.AddFunc(p.spec, func() {
		p.runOnce(ctx)
	})
	if err != nil {
		return err
	}
	p.sched.Start()
	global.Logger.Info().Str("spec", p.spec).Msg("post publisher started")
	return nil
}

func (p *Publisher) runOnce(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			global.Logger.Error().Interface("panic", r).Msg("post publisher panic")
		}
	}()
	published, err := p.social.PublishDue(ctx, time.Now())
	if err != nil {
		global.Logger.Error().Err(err).Msg("publish run failed")
		return
	}
	if published > 0 {
		global.Logger.Info().Int("published", published).Msg("publish run complete")
	}
}

func (p *Publisher) Stop() {
	if p.sched != nil {
		p.sched.Stop()
	}
}
