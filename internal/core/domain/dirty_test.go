package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/anvil/internal/core/domain"
)

func TestDirtyState_CleanByDefault(t *testing.T) {
	assert.False(t, domain.CleanState().Stale())
}

func TestDirtyState_MarkIsMonotonic(t *testing.T) {
	s := domain.CleanState().Mark()
	assert.True(t, s.Stale())

	// No operation lowers the cascade again.
	assert.True(t, s.Mark().Stale())
	assert.True(t, s.Or(domain.CleanState()).Stale())
}

func TestDirtyState_Or(t *testing.T) {
	clean := domain.CleanState()
	stale := domain.CleanState().Mark()

	assert.False(t, clean.Or(clean).Stale())
	assert.True(t, clean.Or(stale).Stale())
	assert.True(t, stale.Or(clean).Stale())
	assert.True(t, stale.Or(stale).Stale())
}
