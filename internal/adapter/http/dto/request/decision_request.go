package request

import "strings"

// DecisionRequest is the manual manager override payload.
type DecisionRequest struct {
	Decision string `json:"decision" binding:"required"`
	Comment  string `json:"comment"`
}

func (r DecisionRequest) ResolveDecision() string {
	return strings.ToUpper(strings.TrimSpace(r.Decision))
}
