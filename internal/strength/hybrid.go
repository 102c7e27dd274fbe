// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

import (
	"bufio"
	"errors"
	"fmt"
	"math"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Tiers only the hybrid checker produces.
const (
	Good           = "Good"
	VeryWeakCommon = "Very Weak (common password)"
	WeakPattern    = "Weak (predictable pattern)"
)

// TierOrder lists every tier from weakest to strongest.
var TierOrder = []string{VeryWeakCommon, VeryWeak, WeakPattern, Weak, Moderate, Good, Strong, VeryStrong}

// DefaultCommonPasswordsFile is read from the working directory.
const DefaultCommonPasswordsFile = "common_passwords.txt"

var (
	sequenceRegex     = regexp.MustCompile(`1234|abcd|qwerty|asdf`)
	substitutionRegex = regexp.MustCompile(`p[a@]ss[wv]0?rd`)
)

// upper bounds in seconds, log10
var hybridTiers = []struct {
	below float64
	tier  string
}{
	{0, VeryWeak},
	{math.Log10(secondsPerMinute), Weak},
	{math.Log10(secondsPerDay), Moderate},
	{math.Log10(31_557_600), Good},
	{math.Log10(315_576_000), Strong},
}

// HybridChecker rejects known and predictable passwords first and grades the
// rest by their brute force crack time.
type HybridChecker struct {
	common map[string]struct{}
	brute  BruteForceCalculator
}

// NewHybridChecker loads the common password list from path, or from
// DefaultCommonPasswordsFile when path is empty.
func NewHybridChecker(path string) (HybridChecker, error) {
	if path == "" {
		path = DefaultCommonPasswordsFile
	}

	common, err := LoadCommonPasswords(path)
	if err != nil {
		return HybridChecker{}, err
	}
	return NewHybridCheckerFrom(common), nil
}

func NewHybridCheckerFrom(common map[string]struct{}) HybridChecker {
	return HybridChecker{
		common: common,
		brute:  BruteForceCalculator{AttemptsPerSecond: DefaultAttemptsPerSecond},
	}
}

// LoadCommonPasswords reads one password per line, lowercased. A missing file is an empty list.
func LoadCommonPasswords(path string) (map[string]struct{}, error) {
	common := make(map[string]struct{})

	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return common, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading common passwords: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		common[strings.ToLower(strings.TrimSpace(scanner.Text()))] = struct{}{}
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading common passwords: %w", err)
	}
	return common, nil
}

func (h HybridChecker) Evaluate(password string) string {
	lower := strings.ToLower(password)

	if _, ok := h.common[lower]; ok {
		return VeryWeakCommon
	}
	if hasPattern(password, lower) {
		return WeakPattern
	}

	seconds := h.brute.Log10Seconds(password)
	for _, t := range hybridTiers {
		if seconds < t.below {
			return t.tier
		}
	}
	return VeryStrong
}

func hasPattern(password, lower string) bool {
	return isRepeated(password) || sequenceRegex.MatchString(lower) || substitutionRegex.MatchString(lower)
}

// isRepeated reports a password made of one character typed four or more times.
func isRepeated(password string) bool {
	if utf8.RuneCountInString(password) < 4 {
		return false
	}
	first, _ := utf8.DecodeRuneInString(password)
	for _, r := range password {
		if r != first {
			return false
		}
	}
	return true
}
