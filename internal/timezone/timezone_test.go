package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocation_FallsBackToLocal(t *testing.T) {
	assert.Equal(t, time.Local, Location(""))
	assert.Equal(t, time.Local, Location("Not/AZone"))
	assert.Equal(t, "UTC", Location("UTC").String())
}

func TestClocks(t *testing.T) {
	at := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, at, FixedClock{At: at}.Now())

	c := NewSystemClock("UTC")
	assert.Equal(t, time.UTC, c.Now().Location())
}
