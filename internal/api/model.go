package api

import (
	"encoding/json"

	"github.com/alvinbaena/pwd-strength/internal/strength"
	"github.com/alvinbaena/pwd-strength/internal/util"
)

type evaluateRequest struct {
	Action string `json:"action"`
	// raw so a missing or non-string password can be told apart from an empty one
	Password json.RawMessage `json:"password"`
}

type evaluateResponse struct {
	Strength    string              `json:"strength"`
	TimeToCrack string              `json:"time_to_crack"`
	Properties  strength.Properties `json:"properties"`
}

type healthResponse struct {
	Status   string       `json:"status"`
	Strategy string       `json:"strategy"`
	Memory   *util.Memory `json:"memory,omitempty"`
}
