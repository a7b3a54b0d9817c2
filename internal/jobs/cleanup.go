package jobs

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Sweeper drops expired entries and reports how many were removed.
type Sweeper interface {
	SweepExpired() int
}

type CleanupJob struct {
	sessions Sweeper
	interval time.Duration
	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewCleanupJob(sessions Sweeper, interval time.Duration) *CleanupJob {
	return &CleanupJob{
		sessions: sessions,
		interval: interval,
		done:     make(chan struct{}),
	}
}

func (j *CleanupJob) Start() {
	j.wg.Add(1)
	go j.run()
	log.Info().Dur("interval", j.interval).Msg("cleanup job started")
}

func (j *CleanupJob) Stop() {
	j.stopOnce.Do(func() {
		close(j.done)
		j.wg.Wait()
		log.Info().Msg("cleanup job stopped")
	})
}

func (j *CleanupJob) run() {
	defer j.wg.Done()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.cleanup()

	for {
		select {
		case <-j.done:
			return
		case <-ticker.C:
			j.cleanup()
		}
	}
}

func (j *CleanupJob) cleanup() {
	if j.sessions == nil {
		return
	}
	if count := j.sessions.SweepExpired(); count > 0 {
		log.Info().Int("count", count).Msg("cleaned up expired sessions")
	}
}
