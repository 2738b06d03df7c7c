package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emojisense/emojisense-backend/internal/common"
	"github.com/emojisense/emojisense-backend/internal/domain"
	"github.com/emojisense/emojisense-backend/internal/middleware"
	"github.com/emojisense/emojisense-backend/internal/service"
	"github.com/emojisense/emojisense-backend/pkg/logger"
)

// clientIDHeader identifies a client installation for quota tracking.
// Opaque to the server; a missing header falls back to the client IP.
const clientIDHeader = "X-Client-ID"

// InterpretHandler serves the interpretation endpoint and quota status
type InterpretHandler struct {
	interpreter service.InterpreterService
	quota       service.QuotaService
}

// NewInterpretHandler creates a new InterpretHandler
func NewInterpretHandler(interpreter service.InterpreterService, quota service.QuotaService) *InterpretHandler {
	return &InterpretHandler{interpreter: interpreter, quota: quota}
}

func clientID(c *gin.Context) string {
	if id := c.GetHeader(clientIDHeader); id != "" && len(id) <= 64 {
		return id
	}
	return "ip:" + c.ClientIP()
}

// Interpret runs one message through the interpretation pipeline
// @Summary      Interpret a message
// @Description  Extracts emojis, asks the model what the message really conveys, and returns the structured interpretation
// @Tags         interpret
// @Accept       json
// @Produce      json
// @Param        request  body  domain.InterpretRequest  true  "Message, platform, and relationship context"
// @Success      200  {object}  common.APIResponse{data=domain.InterpretResult}
// @Failure      400  {object}  common.APIResponse
// @Failure      429  {object}  common.APIResponse
// @Failure      503  {object}  common.APIResponse
// @Router       /interpret [post]
func (h *InterpretHandler) Interpret(c *gin.Context) {
	var req domain.InterpretRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	id := clientID(c)
	if !h.quota.CanUse(id) {
		middleware.CountInterpretation("rejected")
		common.ErrorResponse(c, http.StatusTooManyRequests, "daily interpretation quota exhausted", nil)
		return
	}

	result, err := h.interpreter.Interpret(c.Request.Context(), &req)
	if err != nil {
		middleware.CountInterpretation("failed")
		h.respondError(c, err)
		return
	}

	middleware.CountInterpretation("served")
	remaining := h.quota.RecordUse(id)
	c.Header("X-Quota-Remaining", strconv.Itoa(remaining))
	common.SuccessResponse(c, result, nil)
}

// Quota reports the caller's remaining daily allowance
// @Summary      Get quota status
// @Tags         interpret
// @Produce      json
// @Success      200  {object}  common.APIResponse{data=domain.QuotaStatus}
// @Router       /interpret/quota [get]
func (h *InterpretHandler) Quota(c *gin.Context) {
	common.SuccessResponse(c, h.quota.Status(clientID(c)), nil)
}

// respondError maps error kinds to HTTP statuses. Configuration and
// upstream failures stay behind a generic message; validation details are
// echoed back field-scoped.
func (h *InterpretHandler) respondError(c *gin.Context, err error) {
	var valErr *common.ValidationError
	if errors.As(err, &valErr) {
		common.ErrorResponse(c, http.StatusBadRequest, "request validation failed", valErr)
		return
	}

	switch common.KindOf(err) {
	case common.KindConfig:
		logger.Error("interpret: configuration error: %v", err)
		common.ErrorResponse(c, http.StatusServiceUnavailable, "interpretation service unavailable", nil)
	case common.KindUpstreamTransient, common.KindUpstreamPermanent:
		logger.Error("interpret: upstream failure: %v", err)
		common.ErrorResponse(c, http.StatusServiceUnavailable, "interpretation service unavailable", nil)
	case common.KindParse:
		logger.Error("interpret: contract violation: %v", err)
		common.ErrorResponse(c, http.StatusBadGateway, "model returned an unusable reply", nil)
	default:
		logger.Error("interpret: unexpected failure: %v", err)
		common.ErrorResponse(c, http.StatusInternalServerError, "internal error", nil)
	}
}
