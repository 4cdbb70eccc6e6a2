package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fixedClock always returns the same instant.
type fixedClock struct{ t time.Time }

func (f fixedClock) Now() time.Time { return f.t }

func TestBrazilClockOffset(t *testing.T) {
	now := BrazilClock{}.Now()
	assert.False(t, now.IsZero())

	_, offset := now.Zone()
	// São Paulo não tem horário de verão desde 2019: sempre UTC-3.
	assert.Equal(t, -3*60*60, offset)
}
