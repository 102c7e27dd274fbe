// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package evaluator

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/alvinbaena/pwd-strength/internal/remote"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultDebounce is the quiescence window after the last keystroke before a
// password is evaluated.
const DefaultDebounce = 300 * time.Millisecond

// Client asks the evaluation service for a verdict on a password.
type Client interface {
	Evaluate(ctx context.Context, password string) (remote.Verdict, error)
}

type Options struct {
	// Debounce defaults to DefaultDebounce when zero.
	Debounce time.Duration
	// Timeout bounds each remote call. Zero means no bound other than supersession.
	Timeout time.Duration
	// Logger defaults to the global zerolog logger.
	Logger *zerolog.Logger
}

// Evaluator renders local criteria and the remote verdict for the latest input.
// At most one remote call is outstanding; starting a new one cancels the previous.
// Every sink update happens under the evaluator's lock, so renders never interleave.
type Evaluator struct {
	client   Client
	sink     Sink
	debounce time.Duration
	timeout  time.Duration
	log      zerolog.Logger

	mu sync.Mutex
	// debounce slot, seq invalidates timers that fired while waiting on mu
	timer *time.Timer
	seq   uint64
	// in-flight request, gen invalidates responses of superseded requests
	cancel context.CancelFunc
	gen    uint64
	closed bool

	// responded runs after a response has been handled.
	responded func()
}

func New(client Client, sink Sink, opts Options) *Evaluator {
	e := &Evaluator{
		client:   client,
		sink:     sink,
		debounce: opts.Debounce,
		timeout:  opts.Timeout,
		log:      log.Logger,
	}
	if e.debounce <= 0 {
		e.debounce = DefaultDebounce
	}
	if opts.Logger != nil {
		e.log = *opts.Logger
	}
	return e
}

// Input handles a change of the password field. Blank input resets the display
// and cancels any in-flight call right away; anything else is evaluated once
// typing pauses for the debounce window.
func (e *Evaluator) Input(password string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}

	e.stopTimerLocked()
	if isBlank(password) {
		e.resetLocked()
		return
	}

	seq := e.seq
	e.timer = time.AfterFunc(e.debounce, func() {
		e.mu.Lock()
		defer e.mu.Unlock()

		if e.closed || seq != e.seq {
			return
		}
		e.timer = nil
		e.evaluateLocked(password)
	})
}

// EvaluateNow evaluates the password without waiting for the debounce window.
func (e *Evaluator) EvaluateNow(password string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}

	e.stopTimerLocked()
	if isBlank(password) {
		e.resetLocked()
		return
	}
	e.evaluateLocked(password)
}

// Reset cancels pending work and puts the display back to its defaults.
func (e *Evaluator) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stopTimerLocked()
	e.resetLocked()
}

// Close stops the debounce timer and cancels the in-flight call. Later input is ignored.
func (e *Evaluator) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.closed = true
	e.stopTimerLocked()
	e.cancelLocked()
}

func (e *Evaluator) stopTimerLocked() {
	e.seq++
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

func (e *Evaluator) cancelLocked() {
	e.gen++
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
}

func (e *Evaluator) resetLocked() {
	e.cancelLocked()
	ResetCriteria(e.sink)
	ResetVerdict(e.sink)
}

func (e *Evaluator) evaluateLocked(password string) {
	RenderCriteria(e.sink, password)

	e.cancelLocked()

	var ctx context.Context
	var cancel context.CancelFunc
	if e.timeout > 0 {
		ctx, cancel = context.WithTimeout(context.Background(), e.timeout)
	} else {
		ctx, cancel = context.WithCancel(context.Background())
	}
	e.cancel = cancel

	go e.request(ctx, cancel, e.gen, password)
}

func (e *Evaluator) request(ctx context.Context, cancel context.CancelFunc, gen uint64, password string) {
	defer cancel()
	if e.responded != nil {
		defer e.responded()
	}

	verdict, err := e.client.Evaluate(ctx, password)

	e.mu.Lock()
	defer e.mu.Unlock()

	// Superseded or reset. Whatever the call returned belongs to stale input.
	if gen != e.gen || errors.Is(ctx.Err(), context.Canceled) {
		return
	}
	e.cancel = nil

	if err != nil {
		e.log.Error().Err(err).Msg("there was a problem evaluating the password")
		return
	}

	RenderVerdict(e.sink, verdict)
}

func isBlank(password string) bool {
	return strings.TrimSpace(password) == ""
}
