package service

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"

	"github.com/emojisense/emojisense-backend/internal/common"
	"github.com/emojisense/emojisense-backend/internal/config"
)

func TestModelClient_MissingKeyFailsBeforeNetwork(t *testing.T) {
	client := NewModelClient(config.ModelConfig{Name: "gpt-4o-mini", MaxAttempts: 3})

	_, err := client.Complete(context.Background(), "system", "user")

	assert.Error(t, err)
	assert.Equal(t, common.KindConfig, common.KindOf(err))
}

func TestClassifyUpstreamError_RateLimitIsTransient(t *testing.T) {
	err := classifyUpstreamError(&openai.APIError{HTTPStatusCode: 429})
	assert.Equal(t, common.KindUpstreamTransient, common.KindOf(err))
}

func TestClassifyUpstreamError_ServerErrorIsTransient(t *testing.T) {
	for _, status := range []int{500, 502, 503} {
		err := classifyUpstreamError(&openai.APIError{HTTPStatusCode: status})
		assert.Equal(t, common.KindUpstreamTransient, common.KindOf(err), "status %d", status)
	}
}

func TestClassifyUpstreamError_ClientErrorIsPermanent(t *testing.T) {
	for _, status := range []int{400, 401, 404} {
		err := classifyUpstreamError(&openai.APIError{HTTPStatusCode: status})
		assert.Equal(t, common.KindUpstreamPermanent, common.KindOf(err), "status %d", status)
	}
}

func TestClassifyUpstreamError_TransportFailureIsTransient(t *testing.T) {
	err := classifyUpstreamError(errors.New("dial tcp: connection refused"))
	assert.Equal(t, common.KindUpstreamTransient, common.KindOf(err))
}
