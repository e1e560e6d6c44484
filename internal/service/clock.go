package service

import "time"

// Clock supplies the current time to expiry and status decisions
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// SystemClock returns a Clock backed by time.Now in UTC
func SystemClock() Clock { return systemClock{} }
