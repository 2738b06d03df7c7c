package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emojisense/emojisense-backend/internal/common"
	"github.com/emojisense/emojisense-backend/internal/domain"
)

func TestNormalize_ValidRequest(t *testing.T) {
	req := &domain.InterpretRequest{
		Message:  "Hey, are we still on for tonight? 😀",
		Platform: domain.PlatformIMessage,
		Context:  domain.RelationshipRomanticPartner,
	}

	norm, err := NormalizeInterpretRequest(req)

	assert.NoError(t, err)
	assert.Equal(t, req.Message, norm.Message)
	assert.Len(t, norm.Occurrences, 1)
	assert.Equal(t, "😀", norm.Occurrences[0].Character)
}

func TestNormalize_MessageTooShort(t *testing.T) {
	req := &domain.InterpretRequest{
		Message:  "hi 😀",
		Platform: domain.PlatformSlack,
		Context:  domain.RelationshipCoworker,
	}

	_, err := NormalizeInterpretRequest(req)

	var valErr *common.ValidationError
	assert.ErrorAs(t, err, &valErr)
	assert.Contains(t, valErr.Fields, "message")
	assert.Contains(t, valErr.Fields["message"], "between 10 and 1000")
}

func TestNormalize_MessageTooLong(t *testing.T) {
	req := &domain.InterpretRequest{
		Message:  "😀" + strings.Repeat("a", MaxMessageLength),
		Platform: domain.PlatformSlack,
		Context:  domain.RelationshipCoworker,
	}

	_, err := NormalizeInterpretRequest(req)

	var valErr *common.ValidationError
	assert.ErrorAs(t, err, &valErr)
	assert.Contains(t, valErr.Fields, "message")
}

func TestNormalize_BoundaryLengthsAccepted(t *testing.T) {
	for _, length := range []int{MinMessageLength, MaxMessageLength} {
		msg := "😀" + strings.Repeat("a", length-1)
		req := &domain.InterpretRequest{
			Message:  msg,
			Platform: domain.PlatformSlack,
			Context:  domain.RelationshipFriend,
		}

		_, err := NormalizeInterpretRequest(req)
		assert.NoError(t, err, "length %d should be accepted", length)
	}
}

func TestNormalize_NoEmoji(t *testing.T) {
	req := &domain.InterpretRequest{
		Message:  "a perfectly ordinary sentence with no pictures",
		Platform: domain.PlatformWhatsApp,
		Context:  domain.RelationshipFamily,
	}

	_, err := NormalizeInterpretRequest(req)

	var valErr *common.ValidationError
	assert.ErrorAs(t, err, &valErr)
	assert.Equal(t, "message must contain at least one emoji", valErr.Fields["message"])
}

func TestNormalize_UnknownPlatformIsFieldScoped(t *testing.T) {
	req := &domain.InterpretRequest{
		Message:  "what did he mean by this 🤔",
		Platform: "INVALID_PLATFORM",
		Context:  domain.RelationshipFriend,
	}

	_, err := NormalizeInterpretRequest(req)

	var valErr *common.ValidationError
	assert.ErrorAs(t, err, &valErr)
	assert.Contains(t, valErr.Fields, "platform")
	assert.NotContains(t, valErr.Fields, "message")
	assert.NotContains(t, valErr.Fields, "context")
}

func TestNormalize_OtherPlatformAcceptedOnRequests(t *testing.T) {
	req := &domain.InterpretRequest{
		Message:  "what did he mean by this 🤔",
		Platform: domain.PlatformOther,
		Context:  domain.RelationshipStranger,
	}

	_, err := NormalizeInterpretRequest(req)
	assert.NoError(t, err)
}

func TestNormalize_AllFailuresReportedTogether(t *testing.T) {
	req := &domain.InterpretRequest{
		Message:  "short",
		Platform: "CARRIER_PIGEON",
		Context:  "NEMESIS",
	}

	_, err := NormalizeInterpretRequest(req)

	var valErr *common.ValidationError
	assert.ErrorAs(t, err, &valErr)
	assert.Len(t, valErr.Fields, 3)
	assert.Contains(t, valErr.Fields, "message")
	assert.Contains(t, valErr.Fields, "platform")
	assert.Contains(t, valErr.Fields, "context")
}
