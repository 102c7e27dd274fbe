// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

import (
	"fmt"
	"math"
	"regexp"
	"unicode/utf8"
)

// DefaultAttemptsPerSecond is a single fast offline cracking rig.
const DefaultAttemptsPerSecond = 1_000_000_000

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	secondsPerYear   = 365 * secondsPerDay
	// beyond this the day/hour breakdown is noise
	maxExactYears = 1e15
)

var (
	lowerRegex = regexp.MustCompile(`[a-z]`)
	upperRegex = regexp.MustCompile(`[A-Z]`)
	digitRegex = regexp.MustCompile(`[0-9]`)
	otherRegex = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// CharsetSize estimates the alphabet an attacker has to brute force.
func CharsetSize(password string) int {
	size := 0
	if lowerRegex.MatchString(password) {
		size += 26
	}
	if upperRegex.MatchString(password) {
		size += 26
	}
	if digitRegex.MatchString(password) {
		size += 10
	}
	if otherRegex.MatchString(password) {
		size += 32
	}
	return size
}

// BruteForceCalculator estimates how long exhausting the password's charset takes.
type BruteForceCalculator struct {
	AttemptsPerSecond float64
}

func (b BruteForceCalculator) Evaluate(password string) string {
	return FormatLog10Seconds(b.Log10Seconds(password))
}

// Log10Seconds returns log10 of the seconds needed, or -Inf for an empty password.
func (b BruteForceCalculator) Log10Seconds(password string) float64 {
	size := CharsetSize(password)
	length := utf8.RuneCountInString(password)
	if size == 0 || length == 0 {
		return math.Inf(-1)
	}

	attempts := b.AttemptsPerSecond
	if attempts <= 0 {
		attempts = DefaultAttemptsPerSecond
	}
	// combinations = size^length, kept in log space so long passwords do not overflow
	return float64(length)*math.Log10(float64(size)) - math.Log10(attempts)
}

// FormatLog10Seconds renders a duration given as log10(seconds).
func FormatLog10Seconds(log10Seconds float64) string {
	logYears := log10Seconds - math.Log10(secondsPerYear)
	if logYears >= math.Log10(maxExactYears) {
		return fmt.Sprintf("about 10^%d years", int(math.Floor(logYears)))
	}
	return FormatSeconds(math.Pow(10, log10Seconds))
}

// FormatSeconds renders seconds as "Y years, D days, H hours, M minutes, S seconds",
// or with six decimals when under a second.
func FormatSeconds(sec float64) string {
	if sec < 1 {
		return fmt.Sprintf("%.6f seconds", sec)
	}

	y := math.Floor(sec / secondsPerYear)
	sec = math.Mod(sec, secondsPerYear)
	d := math.Floor(sec / secondsPerDay)
	sec = math.Mod(sec, secondsPerDay)
	h := math.Floor(sec / secondsPerHour)
	sec = math.Mod(sec, secondsPerHour)
	m := math.Floor(sec / secondsPerMinute)
	sec = math.Mod(sec, secondsPerMinute)

	return fmt.Sprintf("%d years, %d days, %d hours, %d minutes, %d seconds",
		int64(y), int64(d), int64(h), int64(m), int64(sec))
}
