package clock_test

import (
	"testing"
	"time"

	"catalog-admin/internal/shared/clock"

	"github.com/stretchr/testify/assert"
)

func TestStepping_AdvancesEveryCall(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := clock.NewStepping(start, time.Second)

	assert.Equal(t, start, c.Now())
	assert.Equal(t, start.Add(time.Second), c.Now())
	assert.Equal(t, start.Add(2*time.Second), c.Now())
}

func TestFixed_NeverMoves(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	c := clock.Fixed(at)

	assert.Equal(t, at, c.Now())
	assert.Equal(t, at, c.Now())
}

func TestSystem_ReturnsUTC(t *testing.T) {
	assert.Equal(t, time.UTC, clock.System().Now().Location())
}
