// Package apierror writes the JSON error envelope returned by every endpoint:
//
//	{"error":{"code":"NOT_FOUND","message":"user not found"}}
package apierror

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes carried in the envelope.
const (
	CodeTeamExists     = "TEAM_EXISTS"
	CodePRExists       = "PR_EXISTS"
	CodePRMerged       = "PR_MERGED"
	CodeNotAssigned    = "NOT_ASSIGNED"
	CodeNoCandidate    = "NO_CANDIDATE"
	CodeNotFound       = "NOT_FOUND"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInternal       = "INTERNAL_ERROR"
)

// Detail is the body of the envelope.
type Detail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Response is the error envelope.
type Response struct {
	Error Detail `json:"error"`
}

// Rule maps a sentinel error to a status and code. An empty Message reuses the error text.
type Rule struct {
	Err     error
	Status  int
	Code    string
	Message string
}

// Abort writes the envelope and stops the handler chain.
func Abort(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, Response{Error: Detail{Code: code, Message: message}})
}

// InvalidRequest answers 400 INVALID_REQUEST.
func InvalidRequest(c *gin.Context, message string) {
	Abort(c, http.StatusBadRequest, CodeInvalidRequest, message)
}

// Internal answers 500 INTERNAL_ERROR without leaking the cause.
func Internal(c *gin.Context) {
	Abort(c, http.StatusInternalServerError, CodeInternal, "internal server error")
}

// Match answers with the first rule err matches and reports whether one did.
func Match(c *gin.Context, err error, rules []Rule) bool {
	for _, rule := range rules {
		if !errors.Is(err, rule.Err) {
			continue
		}
		message := rule.Message
		if message == "" {
			message = err.Error()
		}
		Abort(c, rule.Status, rule.Code, message)
		return true
	}
	return false
}
