// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

import (
	"runtime"

	"github.com/jfcg/sorty/v2"
	"github.com/rs/zerolog/log"
	"github.com/thinhdanggroup/executor"
)

// Verdict is what the service answers for one password.
type Verdict struct {
	Strength    string
	TimeToCrack string
}

// Evaluate runs both strategies of the pair.
func (p Pair) Evaluate(password string) Verdict {
	return Verdict{
		Strength:    p.Strength.Evaluate(password),
		TimeToCrack: p.TimeToCrack.Evaluate(password),
	}
}

// Report summarizes a batch of evaluated passwords.
type Report struct {
	Total    int
	Tiers    map[string]int
	Verdicts []Verdict
	// brute force estimates, log10 seconds
	MedianLog10Seconds float64
	MinLog10Seconds    float64
	MaxLog10Seconds    float64
}

// EvaluateBatch scores every password with a bounded pool of workers. Verdicts
// keep the order of the input. workers < 1 means one per logical CPU.
func EvaluateBatch(passwords []string, pair Pair, workers int) (Report, error) {
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	report := Report{
		Total:    len(passwords),
		Tiers:    make(map[string]int),
		Verdicts: make([]Verdict, len(passwords)),
	}
	if len(passwords) == 0 {
		return report, nil
	}

	pool, err := executor.New(executor.Config{
		ReqPerSeconds: 0,
		QueueSize:     2 * workers,
		NumWorkers:    workers,
	})
	if err != nil {
		return Report{}, err
	}
	defer pool.Close()

	brute := BruteForceCalculator{AttemptsPerSecond: DefaultAttemptsPerSecond}
	seconds := make([]float64, len(passwords))

	stat := newProgress(len(passwords))
	stat.Begin()

	// each task owns index i of both slices
	task := func(i int, password string) {
		report.Verdicts[i] = pair.Evaluate(password)
		seconds[i] = brute.Log10Seconds(password)
		stat.Evaluated()
	}

	for i, password := range passwords {
		if err = pool.Publish(task, i, password); err != nil {
			log.Panic().Err(err).Msg("there is a programming error here.")
		}
	}
	pool.Wait()
	stat.Done()

	for _, v := range report.Verdicts {
		report.Tiers[v.Strength]++
	}

	sorty.SortSlice(seconds)
	report.MinLog10Seconds = seconds[0]
	report.MaxLog10Seconds = seconds[len(seconds)-1]
	report.MedianLog10Seconds = seconds[len(seconds)/2]

	return report, nil
}
