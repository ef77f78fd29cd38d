package audit_test

import (
	"context"
	"testing"

	"go-talent-intake/pkg/audit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMaskPhone(t *testing.T) {
	assert.Equal(t, "******3210", audit.MaskPhone("9876543210"))
	assert.Equal(t, "***", audit.MaskPhone("123"))
	assert.Equal(t, "", audit.MaskPhone(""))
}

func TestLogger_Log(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := audit.New(zap.New(core), "intake", "test")

	l.Log(context.Background(), audit.Event{
		Event:       audit.EventStatusChanged,
		ActorID:     "admin-1",
		CandidateID: 42,
		Details:     map[string]any{"status": "contacted"},
	})
	l.Log(context.Background(), audit.Event{Event: audit.EventAccessDenied, IP: "10.0.0.1"})

	entries := logs.All()
	require.Len(t, entries, 2)

	first := entries[0].ContextMap()
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "candidate_status_changed", first["event"])
	assert.Equal(t, "admin-1", first["actor_id"])
	assert.Equal(t, int64(42), first["candidate_id"])
	assert.Equal(t, "intake", first["service"])

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "10.0.0.1", entries[1].ContextMap()["ip"])
}

func TestLogger_NilSafe(t *testing.T) {
	var l *audit.Logger
	assert.NotPanics(t, func() {
		l.Log(context.Background(), audit.Event{Event: audit.EventCandidateDeleted})
	})
}
