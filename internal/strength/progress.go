package strength

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// progressInterval is how often a running batch logs its progress.
var progressInterval = 10 * time.Second

type progress struct {
	evaluated uint64
	total     int
	start     time.Time
	ticker    *time.Ticker
	stop      chan struct{}
}

func newProgress(total int) *progress {
	return &progress{
		total: total,
		start: time.Now(),
		stop:  make(chan struct{}),
	}
}

// Begin reports the progress of the batch every progressInterval.
func (p *progress) Begin() {
	p.ticker = time.NewTicker(progressInterval)
	go func() {
		for {
			select {
			case <-p.stop:
				return
			case <-p.ticker.C:
				done := atomic.LoadUint64(&p.evaluated)
				log.Info().Msgf("%.2f%% passwords evaluated. %.0f passwords/s",
					float64(done)*100/float64(p.total), p.perSecond(done))
			}
		}
	}()
}

func (p *progress) Evaluated() {
	atomic.AddUint64(&p.evaluated, 1)
}

func (p *progress) perSecond(done uint64) float64 {
	elapsed := time.Since(p.start)
	if elapsed.Nanoseconds() > 0 {
		return float64(done) / elapsed.Seconds()
	}
	return float64(done)
}

func (p *progress) Done() {
	p.ticker.Stop()
	close(p.stop)

	done := atomic.LoadUint64(&p.evaluated)
	printer := message.NewPrinter(language.English)
	log.Debug().Msgf("evaluated %s passwords in %v. %.0f passwords/s",
		printer.Sprintf("%d", done), time.Since(p.start), p.perSecond(done))
}
