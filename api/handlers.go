package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cronwhen/cronwhen"
)

func (s *Server) handleValidate(c *gin.Context) {
	requestID := c.GetString(requestIDKey)

	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			RequestID: requestID,
			Error:     "invalid request body: " + err.Error(),
		})
		return
	}

	count := req.Count
	if count == 0 {
		count = s.cfg.RunCount
	}
	if count < 0 || count > s.cfg.MaxRunCount {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			RequestID: requestID,
			Error:     fmt.Sprintf("count must be between 1 and %d", s.cfg.MaxRunCount),
		})
		return
	}

	validator, err := cronwhen.NewValidator(
		cronwhen.WithRunCount(count),
		cronwhen.WithIterationCap(s.cfg.IterationCap),
		cronwhen.WithLogger(cronwhen.NewZapLogger(s.logger)),
		cronwhen.WithTelemetry(),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			RequestID: requestID,
			Error:     err.Error(),
		})
		return
	}

	result := validator.Validate(req.Expression)
	if !result.OK() {
		// A bad expression is the caller's problem, not a server fault.
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			RequestID: requestID,
			Error:     result.Err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, toValidateResponse(requestID, result))
}

func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
