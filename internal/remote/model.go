package remote

// ActionEvaluate is the only action understood by the evaluation service.
const ActionEvaluate = "evaluate_password"

type evaluateRequest struct {
	Action   string `json:"action"`
	Password string `json:"password"`
}

// Verdict is the service's opinion of a password. Both fields are shown verbatim.
type Verdict struct {
	Strength    string `json:"strength"`
	TimeToCrack string `json:"time_to_crack"`
}
