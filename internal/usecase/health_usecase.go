package usecase

import (
	"context"
	"time"
)

type HealthUsecase interface {
	Check(ctx context.Context) (map[string]string, bool)
}

// Pinger is anything that can report its own liveness, such as a pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a plain function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

type healthUsecase struct {
	required map[string]Pinger
	optional map[string]Pinger
}

// NewHealthUsecase reports unhealthy when a required dependency fails;
// optional ones only show up as "degraded".
func NewHealthUsecase(required, optional map[string]Pinger) HealthUsecase {
	return &healthUsecase{required: required, optional: optional}
}

func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status := map[string]string{"status": "ok"}
	healthy := true

	for name, p := range u.required {
		if p == nil || p.Ping(ctx) != nil {
			status[name] = "down"
			status["status"] = "unavailable"
			healthy = false
			continue
		}
		status[name] = "up"
	}
	for name, p := range u.optional {
		if p == nil {
			status[name] = "disabled"
			continue
		}
		if p.Ping(ctx) != nil {
			status[name] = "degraded"
			continue
		}
		status[name] = "up"
	}
	return status, healthy
}
