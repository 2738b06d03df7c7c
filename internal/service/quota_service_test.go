package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/emojisense/emojisense-backend/internal/domain"
)

// --- Mock QuotaRepository ---

type mockQuotaRepo struct {
	mock.Mock
}

func (m *mockQuotaRepo) Get(clientID string) (*domain.QuotaUsage, error) {
	args := m.Called(clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuotaUsage), args.Error(1)
}

func (m *mockQuotaRepo) Save(usage *domain.QuotaUsage) error {
	return m.Called(usage).Error(0)
}

// memQuotaRepo is an in-memory store for sequence tests
type memQuotaRepo struct {
	rows map[string]*domain.QuotaUsage
}

func newMemQuotaRepo() *memQuotaRepo {
	return &memQuotaRepo{rows: map[string]*domain.QuotaUsage{}}
}

func (m *memQuotaRepo) Get(clientID string) (*domain.QuotaUsage, error) {
	return m.rows[clientID], nil
}

func (m *memQuotaRepo) Save(usage *domain.QuotaUsage) error {
	m.rows[usage.ClientID] = usage
	return nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// --- Tests ---

func TestRecordUse_CountsDownToZero(t *testing.T) {
	svc := &quotaService{repo: newMemQuotaRepo(), maxUses: 3, now: time.Now}

	assert.Equal(t, 2, svc.RecordUse("client-a"))
	assert.Equal(t, 1, svc.RecordUse("client-a"))
	assert.Equal(t, 0, svc.RecordUse("client-a"))
	assert.False(t, svc.CanUse("client-a"))

	// Exhausted: further calls are no-ops still returning zero
	assert.Equal(t, 0, svc.RecordUse("client-a"))

	status := svc.Status("client-a")
	assert.False(t, status.Allowed)
	assert.Equal(t, 3, status.Used)
	assert.Equal(t, 0, status.Remaining)
	assert.Equal(t, 3, status.Max)
}

func TestQuota_ClientsAreIndependent(t *testing.T) {
	svc := &quotaService{repo: newMemQuotaRepo(), maxUses: 2, now: time.Now}

	svc.RecordUse("client-a")
	svc.RecordUse("client-a")

	assert.False(t, svc.CanUse("client-a"))
	assert.True(t, svc.CanUse("client-b"))
	assert.Equal(t, 0, svc.Status("client-b").Used)
}

func TestQuota_ResetsOnDateChange(t *testing.T) {
	repo := newMemQuotaRepo()
	day1 := time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC)
	svc := &quotaService{repo: repo, maxUses: 2, now: fixedClock(day1)}

	svc.RecordUse("client-a")
	svc.RecordUse("client-a")
	assert.False(t, svc.CanUse("client-a"))

	svc.now = fixedClock(day1.Add(2 * time.Hour)) // past midnight UTC
	assert.True(t, svc.CanUse("client-a"))
	assert.Equal(t, 0, svc.Status("client-a").Used)
	assert.Equal(t, 1, svc.RecordUse("client-a"))
}

func TestQuota_NilStoreDegradesToPermissive(t *testing.T) {
	svc := &quotaService{repo: nil, maxUses: 3, now: time.Now}

	assert.True(t, svc.CanUse("client-a"))
	assert.Equal(t, 2, svc.RecordUse("client-a"))
	// Nothing persisted, so usage never accumulates
	assert.Equal(t, 2, svc.RecordUse("client-a"))
	assert.Equal(t, 0, svc.Status("client-a").Used)
}

func TestQuota_ReadFailureDegradesToPermissive(t *testing.T) {
	repo := new(mockQuotaRepo)
	repo.On("Get", "client-a").Return(nil, errors.New("connection refused"))
	repo.On("Save", mock.Anything).Return(errors.New("connection refused"))

	svc := &quotaService{repo: repo, maxUses: 3, now: time.Now}

	assert.True(t, svc.CanUse("client-a"))
	assert.Equal(t, 2, svc.RecordUse("client-a"))
	repo.AssertExpectations(t)
}

func TestQuota_Reset(t *testing.T) {
	repo := newMemQuotaRepo()
	svc := &quotaService{repo: repo, maxUses: 2, now: time.Now}

	svc.RecordUse("client-a")
	svc.RecordUse("client-a")
	assert.False(t, svc.CanUse("client-a"))

	svc.Reset("client-a")
	assert.True(t, svc.CanUse("client-a"))
	assert.Equal(t, 0, svc.Status("client-a").Used)
}
