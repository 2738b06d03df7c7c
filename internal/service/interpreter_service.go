package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/emojisense/emojisense-backend/internal/domain"
	"github.com/emojisense/emojisense-backend/internal/repository"
	"github.com/emojisense/emojisense-backend/pkg/cache"
	"github.com/emojisense/emojisense-backend/pkg/logger"
)

// detachedWriteTimeout bounds the background cache write, which runs
// after the response is already on its way to the caller.
const detachedWriteTimeout = 5 * time.Second

// InterpreterService runs the interpretation pipeline: normalize, cache
// lookup, model call, contract validation, assembly, detached cache write.
type InterpreterService interface {
	Interpret(ctx context.Context, req *domain.InterpretRequest) (*domain.InterpretResult, error)
}

// cachedInterpretation is the reusable portion of a result. ID and
// timestamp are deliberately absent: they are regenerated on every serve,
// cache hit or not.
type cachedInterpretation struct {
	Message        string                 `json:"message"`
	Emojis         []domain.DetectedEmoji `json:"emojis"`
	Interpretation string                 `json:"interpretation"`
	Metrics        domain.Metrics         `json:"metrics"`
	RedFlags       []domain.RedFlag       `json:"redFlags"`
}

type interpreterService struct {
	emojiRepo repository.EmojiRepository
	model     ModelClient
	cache     cache.Service

	now   func() time.Time
	newID func() string
}

// NewInterpreterService creates an InterpreterService
func NewInterpreterService(emojiRepo repository.EmojiRepository, model ModelClient, cacheService cache.Service) InterpreterService {
	return &interpreterService{
		emojiRepo: emojiRepo,
		model:     model,
		cache:     cacheService,
		now:       time.Now,
		newID:     func() string { return uuid.New().String() },
	}
}

// Interpret runs one request through the pipeline. Validation always
// precedes the external call; the cache write never delays the response.
func (s *interpreterService) Interpret(ctx context.Context, req *domain.InterpretRequest) (*domain.InterpretResult, error) {
	norm, err := NormalizeInterpretRequest(req)
	if err != nil {
		return nil, err
	}

	key := CacheKey(norm.Message, norm.Platform, norm.Context)

	var hit cachedInterpretation
	cacheErr := s.cache.GetInterpretation(ctx, key, &hit)
	if cacheErr == nil {
		return s.assemble(&hit), nil
	}
	if !errors.Is(cacheErr, cache.ErrMiss) {
		// Cache trouble is never the caller's problem.
		logger.Warn("interpret: cache read failed: %v (treating as miss)", cacheErr)
	}

	rawText, err := s.model.Complete(ctx, systemPrompt, BuildPrompt(norm))
	if err != nil {
		return nil, err
	}

	reply, err := parseAndValidate(rawText)
	if err != nil {
		return nil, err
	}

	payload := s.resolve(norm.Message, reply)
	s.storeDetached(key, payload)

	return s.assemble(payload), nil
}

// resolve turns a validated model reply into the cacheable payload,
// resolving each detected emoji to its canonical content slug. The
// repository lookup by character wins; the model's own slug guess is the
// fallback; neither leaves the slug empty.
func (s *interpreterService) resolve(message string, reply *modelReply) *cachedInterpretation {
	detected := make([]domain.DetectedEmoji, 0, len(reply.Emojis))
	for _, e := range reply.Emojis {
		slug := e.Slug
		if canonical, ok := s.emojiRepo.ByCharacter(e.Character); ok {
			slug = canonical.Slug
		}
		detected = append(detected, domain.DetectedEmoji{
			Character: e.Character,
			Meaning:   e.Meaning,
			Slug:      slug,
		})
	}

	redFlags := make([]domain.RedFlag, 0, len(reply.RedFlags))
	for _, f := range reply.RedFlags {
		redFlags = append(redFlags, domain.RedFlag{
			Type:        f.Type,
			Description: f.Description,
			Severity:    domain.Severity(f.Severity),
		})
	}

	return &cachedInterpretation{
		Message:        message,
		Emojis:         detected,
		Interpretation: reply.Interpretation,
		Metrics: domain.Metrics{
			SarcasmProbability:           reply.Metrics.SarcasmProbability,
			PassiveAggressionProbability: reply.Metrics.PassiveAggressionProbability,
			OverallTone:                  domain.Tone(reply.Metrics.OverallTone),
			Confidence:                   reply.Metrics.Confidence,
		},
		RedFlags: redFlags,
	}
}

// assemble stamps a fresh identifier and timestamp onto a payload. Cache
// hits reuse everything else verbatim.
func (s *interpreterService) assemble(payload *cachedInterpretation) *domain.InterpretResult {
	return &domain.InterpretResult{
		ID:             s.newID(),
		Message:        payload.Message,
		Emojis:         payload.Emojis,
		Interpretation: payload.Interpretation,
		Metrics:        payload.Metrics,
		RedFlags:       payload.RedFlags,
		Timestamp:      s.now().UTC(),
	}
}

// storeDetached writes the payload to the cache in the background. The
// outcome is observed only for logging; the caller's response path never
// waits on it.
func (s *interpreterService) storeDetached(key string, payload *cachedInterpretation) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), detachedWriteTimeout)
		defer cancel()
		if err := s.cache.SetInterpretation(ctx, key, payload); err != nil {
			logger.Warn("interpret: cache write failed: %v (dropped)", err)
		}
	}()
}
