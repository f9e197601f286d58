package service

import "time"

// SetTokenClock replaces the issuer's clock for tests.
func SetTokenClock(ti *TokenIssuer, now func() time.Time) {
	ti.now = now
}
