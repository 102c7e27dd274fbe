// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

// Package generator creates random passwords from a fixed character set.
package generator

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	// Charset holds the 80 characters a generated password is drawn from.
	Charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*()_-+=<>?"
	// DefaultLength is used by the generate button.
	DefaultLength = 12
)

var ErrInvalidLength = errors.New("password length must be at least 1")

// Generate returns a password of the given length using crypto/rand.
func Generate(length int) (string, error) {
	return GenerateFrom(rand.Reader, length)
}

// GenerateFrom draws one uint32 per character from r and reduces it modulo the
// charset size. 2^32 is not a multiple of 80, so the first 2^32 mod 80 = 16
// characters are picked with probability higher by about 1 in 2^26. The bias
// is accepted; r must be a cryptographically secure source.
func GenerateFrom(r io.Reader, length int) (string, error) {
	if length < 1 {
		return "", ErrInvalidLength
	}

	buf := make([]byte, 4*length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("reading random values: %w", err)
	}

	out := make([]byte, length)
	for i := range out {
		v := binary.LittleEndian.Uint32(buf[i*4:])
		out[i] = Charset[v%uint32(len(Charset))]
	}
	return string(out), nil
}
