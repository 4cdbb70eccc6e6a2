package scheduling

import "time"

// Clock supplies "now" so the resolver can be tested against fixed instants.
type Clock interface {
	Now() time.Time
}

// brazilOffset is the fixed São Paulo offset. No DST rules since 2019.
var brazilOffset = time.FixedZone("-03", -3*60*60)

// BrazilClock resolves the current time in São Paulo civil time. When the
// tzdata database is unavailable it degrades to a fixed -3h offset from
// UTC. It never fails: callers always get some timestamp.
type BrazilClock struct{}

func (BrazilClock) Now() time.Time {
	if loc, err := time.LoadLocation("America/Sao_Paulo"); err == nil {
		return time.Now().In(loc)
	}
	return time.Now().UTC().In(brazilOffset)
}
