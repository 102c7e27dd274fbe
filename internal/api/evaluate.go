// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package api

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"

	"github.com/alvinbaena/pwd-strength/internal/remote"
	"github.com/alvinbaena/pwd-strength/internal/strength"
	"github.com/dgraph-io/ristretto"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type evaluateApi struct {
	pair strength.Pair
	mode strength.Mode
	// nil when caching is disabled
	cache *ristretto.Cache
}

func newVerdictCache(size int64) (*ristretto.Cache, error) {
	if size <= 0 {
		return nil, nil
	}

	return ristretto.NewCache(&ristretto.Config{
		NumCounters:        size * 10,
		MaxCost:            size,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
}

// cacheKey never contains the password itself.
func (e *evaluateApi) cacheKey(password string) string {
	sum := sha256.Sum256([]byte(password))
	return string(e.mode) + ":" + hex.EncodeToString(sum[:])
}

func (e *evaluateApi) verdict(password string) strength.Verdict {
	if e.cache == nil {
		return e.pair.Evaluate(password)
	}

	key := e.cacheKey(password)
	if v, ok := e.cache.Get(key); ok {
		return v.(strength.Verdict)
	}

	v := e.pair.Evaluate(password)
	e.cache.Set(key, v, 1)
	return v
}

func (e *evaluateApi) evaluatePassword(c *gin.Context) {
	var req evaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}

	if req.Action != remote.ActionEvaluate {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing action"})
		return
	}

	password, ok := passwordString(req.Password)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be a string"})
		return
	}

	v := e.verdict(password)
	log.Debug().Str("request_id", c.GetString(requestIDKey)).Str("strength", v.Strength).Msg("password evaluated")

	c.JSON(http.StatusOK, evaluateResponse{
		Strength:    v.Strength,
		TimeToCrack: v.TimeToCrack,
		Properties:  strength.Inspect(password),
	})
}

// passwordString accepts only a JSON string. Missing, null, numbers and the like are rejected.
func passwordString(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", false
	}

	var password string
	if err := json.Unmarshal(raw, &password); err != nil {
		return "", false
	}
	return password, true
}

// RegisterEvaluateApi serves the evaluation contract on the group root and on /v1/evaluate.
func RegisterEvaluateApi(group *gin.RouterGroup, mode strength.Mode, settings strength.Settings, cacheSize int64) error {
	pair, err := strength.ForMode(mode, settings)
	if err != nil {
		return err
	}

	cache, err := newVerdictCache(cacheSize)
	if err != nil {
		return err
	}

	e := &evaluateApi{pair: pair, mode: mode, cache: cache}

	group.POST("/", e.evaluatePassword)
	group.Group("/v1").POST("/evaluate", e.evaluatePassword)

	return nil
}
