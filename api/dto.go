package api

import (
	"time"

	"github.com/cronwhen/cronwhen"
)

// ValidateRequest is the body of POST /api/v1/validate. Count is the
// number of upcoming run times to report; zero means the server default.
type ValidateRequest struct {
	Expression string `json:"expression" binding:"required"`
	Count      int    `json:"count"`
}

// FieldView is one resolved cron field in a ValidateResponse.
type FieldView struct {
	Label    string `json:"label"`
	Values   []int  `json:"values"`
	Wildcard bool   `json:"wildcard"`
}

// ValidateResponse is the success body of POST /api/v1/validate.
type ValidateResponse struct {
	RequestID  string      `json:"request_id"`
	Expression string      `json:"expression"`
	Summary    string      `json:"summary"`
	NextRuns   []string    `json:"next_runs"`
	Fields     []FieldView `json:"fields"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	RequestID string `json:"request_id"`
	Error     string `json:"error"`
}

func toValidateResponse(requestID string, result cronwhen.Result) ValidateResponse {
	resp := ValidateResponse{
		RequestID:  requestID,
		Expression: result.Parsed.Raw(),
		Summary:    result.Summary,
		NextRuns:   make([]string, 0, len(result.NextRuns)),
	}
	for _, run := range result.NextRuns {
		resp.NextRuns = append(resp.NextRuns, run.Format(time.RFC3339))
	}
	for _, field := range result.Parsed.Fields() {
		resp.Fields = append(resp.Fields, FieldView{
			Label:    field.Label(),
			Values:   field.Values(),
			Wildcard: field.Wildcard(),
		})
	}
	return resp
}
