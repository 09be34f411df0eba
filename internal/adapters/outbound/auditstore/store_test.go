package auditstore_test

import (
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillcoder/kguard/internal/adapters/outbound/auditstore"
	"github.com/skillcoder/kguard/internal/logic/remediation"
)

func openStore(t *testing.T) *auditstore.Store {
	t.Helper()

	store, err := auditstore.Open(slog.Default(), filepath.Join(t.TempDir(), "audit.db"))
	require.NoError(t, err)

	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestStore_RecordAndListRecent(t *testing.T) {
	t.Parallel()

	store := openStore(t)
	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	for i, action := range []remediation.Action{
		remediation.ActionRestart,
		remediation.ActionScaleDown,
		remediation.ActionPatchImage,
	} {
		err := store.Record(t.Context(), remediation.AuditEntry{
			ID:        "id-" + string(action),
			Time:      base.Add(time.Duration(i) * time.Minute),
			Principal: "alice",
			Action:    action,
			Namespace: "team",
			Target:    "web-7f9c-xk2p1",
			Workload:  "web",
			Value:     "1",
			Status:    remediation.ResultSuccess,
			Message:   "ok",
		})
		require.NoError(t, err)
	}

	got, err := store.ListRecent(t.Context(), 2)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, remediation.ActionPatchImage, got[0].Action)
	assert.Equal(t, remediation.ActionScaleDown, got[1].Action)
	assert.Equal(t, "alice", got[0].Principal)
	assert.Equal(t, "web", got[0].Workload)
	assert.True(t, base.Add(2*time.Minute).Equal(got[0].Time))
}

func TestStore_RecordFillsDefaults(t *testing.T) {
	t.Parallel()

	store := openStore(t)

	require.NoError(t, store.Record(t.Context(), remediation.AuditEntry{
		Action: remediation.ActionRestart,
		Status: remediation.ResultError,
	}))

	got, err := store.ListRecent(t.Context(), 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.NotEmpty(t, got[0].ID)
	assert.False(t, got[0].Time.IsZero())
}

func TestStore_Close(t *testing.T) {
	t.Parallel()

	store := openStore(t)

	require.NoError(t, store.Shutdown(t.Context()))
	require.NoError(t, store.Close())

	err := store.Record(t.Context(), remediation.AuditEntry{Action: remediation.ActionRestart})
	require.ErrorIs(t, err, auditstore.ErrClosed)

	_, err = store.ListRecent(t.Context(), 1)
	require.ErrorIs(t, err, auditstore.ErrClosed)
}

func TestStore_CloseDuringRecord(t *testing.T) {
	t.Parallel()

	store := openStore(t)

	const writes = 50

	errs := make(chan error, writes)
	started := make(chan struct{})

	go func() {
		defer close(errs)

		for i := range writes {
			if i == 1 {
				close(started)
			}

			errs <- store.Record(t.Context(), remediation.AuditEntry{Action: remediation.ActionRestart})
		}
	}()

	<-started
	require.NoError(t, store.Close())

	closed := false

	for err := range errs {
		if closed {
			require.ErrorIs(t, err, auditstore.ErrClosed)

			continue
		}

		if err != nil {
			require.ErrorIs(t, err, auditstore.ErrClosed)

			closed = true
		}
	}

	err := store.Record(t.Context(), remediation.AuditEntry{Action: remediation.ActionRestart})
	require.ErrorIs(t, err, auditstore.ErrClosed)
}
