package browser

import (
	"context"
	"fmt"
	"sync"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// defaultPollInterval matches the dashboard's 5-second refresh.
const defaultPollInterval = 5 * time.Second

// StatsPoller refreshes the queue dashboard on a fixed schedule. Poll
// failures never reach the user: they are logged, and consecutive failures
// gate the schedule through capped exponential backoff so a dead backend is
// not hammered every tick. A poll failure is never replayed; the next
// scheduled tick is simply the next attempt.
type StatsPoller struct {
	client   *Client
	view     StatsView
	interval time.Duration

	cron *cron.Cron

	mu        sync.Mutex
	gate      *backoff.ExponentialBackOff
	notBefore time.Time
}

// NewStatsPoller builds a poller; Start begins polling. A non-positive
// interval falls back to the 5s default.
func NewStatsPoller(client *Client, view StatsView, interval time.Duration) *StatsPoller {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	gate := backoff.NewExponentialBackOff()
	gate.InitialInterval = interval
	gate.MaxInterval = 2 * time.Minute
	gate.MaxElapsedTime = 0 // never give up, only space out
	return &StatsPoller{
		client:   client,
		view:     view,
		interval: interval,
		gate:     gate,
	}
}

// Start polls once immediately and then on every interval tick.
func (p *StatsPoller) Start() {
	p.mu.Lock()
	if p.cron != nil {
		p.mu.Unlock()
		return
	}
	c := cron.New()
	p.cron = c
	p.gate.Reset()
	p.mu.Unlock()

	_, _ = c.AddFunc(fmt.Sprintf("@every %s", p.interval), p.tick)
	c.Start()
	go p.tick()
}

// Stop halts the schedule. In-flight polls finish on their own.
func (p *StatsPoller) Stop() {
	p.mu.Lock()
	c := p.cron
	p.cron = nil
	p.mu.Unlock()
	if c != nil {
		c.Stop()
	}
}

// Poll fetches and renders the stats once, outside the schedule.
func (p *StatsPoller) Poll(ctx context.Context) error {
	resp, err := p.client.QueueStats(ctx)
	if err != nil {
		return err
	}
	p.view.UpdateStats(resp.Stats)
	p.view.UpdateActivity(resp.RecentActivity)
	return nil
}

func (p *StatsPoller) tick() {
	p.mu.Lock()
	if time.Now().Before(p.notBefore) {
		p.mu.Unlock()
		return
	}
	p.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), p.interval)
	defer cancel()

	if err := p.Poll(ctx); err != nil {
		p.mu.Lock()
		p.notBefore = time.Now().Add(p.gate.NextBackOff())
		p.mu.Unlock()
		log.Warn().Err(err).Msg("statspoller: poll failed")
		return
	}

	p.mu.Lock()
	p.gate.Reset()
	p.notBefore = time.Time{}
	p.mu.Unlock()
}
