package service

import (
	"time"

	"github.com/emojisense/emojisense-backend/internal/domain"
	"github.com/emojisense/emojisense-backend/internal/repository"
	"github.com/emojisense/emojisense-backend/pkg/logger"
)

// QuotaService tracks per-client daily interpretation allowances
type QuotaService interface {
	CanUse(clientID string) bool
	Status(clientID string) domain.QuotaStatus
	// RecordUse increments the counter and returns the new remaining
	// count. Once the maximum is reached it is a no-op returning zero.
	RecordUse(clientID string) int
	Reset(clientID string)
}

// quotaService implements QuotaService over a durable store. When the
// store is nil or failing, it degrades to always-permitted / zero-used
// rather than surfacing an error.
type quotaService struct {
	repo    repository.QuotaRepository
	maxUses int
	now     func() time.Time
}

// NewQuotaService creates a QuotaService. repo may be nil.
func NewQuotaService(repo repository.QuotaRepository, maxUses int) QuotaService {
	return &quotaService{repo: repo, maxUses: maxUses, now: time.Now}
}

func (s *quotaService) today() string {
	return s.now().UTC().Format("2006-01-02")
}

// usedToday reads the current counter, treating a stale date as zero.
// Store failures degrade to zero used.
func (s *quotaService) usedToday(clientID string) int {
	if s.repo == nil {
		return 0
	}
	usage, err := s.repo.Get(clientID)
	if err != nil {
		logger.Warn("quota: read failed for %s: %v (treating as unused)", clientID, err)
		return 0
	}
	if usage == nil || usage.Date != s.today() {
		return 0
	}
	return usage.Used
}

// CanUse reports whether another interpretation is currently permitted
func (s *quotaService) CanUse(clientID string) bool {
	return s.usedToday(clientID) < s.maxUses
}

// Status reports the client's current allowance
func (s *quotaService) Status(clientID string) domain.QuotaStatus {
	used := s.usedToday(clientID)
	remaining := s.maxUses - used
	if remaining < 0 {
		remaining = 0
	}
	return domain.QuotaStatus{
		Allowed:   used < s.maxUses,
		Used:      used,
		Remaining: remaining,
		Max:       s.maxUses,
	}
}

// RecordUse increments the counter and returns the new remaining count
func (s *quotaService) RecordUse(clientID string) int {
	used := s.usedToday(clientID)
	if used >= s.maxUses {
		return 0
	}

	used++
	if s.repo != nil {
		err := s.repo.Save(&domain.QuotaUsage{
			ClientID:  clientID,
			Date:      s.today(),
			Used:      used,
			UpdatedAt: s.now().UTC(),
		})
		if err != nil {
			logger.Warn("quota: write failed for %s: %v (continuing)", clientID, err)
		}
	}

	return s.maxUses - used
}

// Reset clears the client's counter for today
func (s *quotaService) Reset(clientID string) {
	if s.repo == nil {
		return
	}
	err := s.repo.Save(&domain.QuotaUsage{
		ClientID:  clientID,
		Date:      s.today(),
		Used:      0,
		UpdatedAt: s.now().UTC(),
	})
	if err != nil {
		logger.Warn("quota: reset failed for %s: %v", clientID, err)
	}
}
