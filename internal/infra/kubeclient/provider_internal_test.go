package kubeclient

import (
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/client-go/kubernetes/fake"
	metricsfake "k8s.io/metrics/pkg/client/clientset/versioned/fake"
)

func TestProvider_Get(t *testing.T) {
	t.Parallel()

	t.Run("failure is not cached", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32

		want := &Clients{Core: fake.NewClientset()}
		p := &Provider{
			logger: slog.Default(),
			build: func() (*Clients, error) {
				if calls.Add(1) == 1 {
					return nil, errors.New("apiserver down")
				}

				return want, nil
			},
		}

		_, err := p.Get()
		require.Error(t, err)

		got, err := p.Get()
		require.NoError(t, err)
		assert.Same(t, want, got)

		got, err = p.Get()
		require.NoError(t, err)
		assert.Same(t, want, got)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("concurrent callers build once", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32

		p := &Provider{
			logger: slog.Default(),
			build: func() (*Clients, error) {
				calls.Add(1)

				return &Clients{Core: fake.NewClientset()}, nil
			},
		}

		var wg sync.WaitGroup
		for range 16 {
			wg.Add(1)

			go func() {
				defer wg.Done()

				_, err := p.Get()
				assert.NoError(t, err)
			}()
		}

		wg.Wait()
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("static", func(t *testing.T) {
		t.Parallel()

		core := fake.NewClientset()
		metrics := metricsfake.NewSimpleClientset()

		got, err := NewStatic(core, metrics).Get()
		require.NoError(t, err)
		assert.Same(t, core, got.Core)
		assert.Same(t, metrics, got.Metrics)
	})
}

func TestBuildRestConfig_ExplicitMaster(t *testing.T) {
	t.Parallel()

	cfg, err := BuildRestConfig("", "https://127.0.0.1:6443")
	require.NoError(t, err)
	assert.Equal(t, "https://127.0.0.1:6443", cfg.Host)
}
