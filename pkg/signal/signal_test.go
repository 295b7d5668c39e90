package signal_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signals/pkg/signal"
)

// recorder collects delivered values for asynchronous assertions.
type recorder[T any] struct {
	mu     sync.Mutex
	values []T
}

func (r *recorder[T]) record(value T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, value)
}

func (r *recorder[T]) snapshot() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]T, len(r.values))
	copy(out, r.values)
	return out
}

func (r *recorder[T]) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.values)
}

const (
	eventually = time.Second
	tick       = 5 * time.Millisecond
)

func TestSignalConnect(t *testing.T) {
	t.Parallel()

	t.Run("delivers fired values in order", func(t *testing.T) {
		t.Parallel()

		s := signal.New[int]()
		rec := &recorder[int]{}
		conn := s.Connect(rec.record)
		require.True(t, conn.Connected())
		require.NotEmpty(t, conn.ID())

		s.Fire(1)
		s.Fire(2)

		require.Eventually(t, func() bool {
			return rec.len() == 2
		}, eventually, tick)
		assert.Equal(t, []int{1, 2}, rec.snapshot())
	})

	t.Run("every live connection visited exactly once per fire", func(t *testing.T) {
		t.Parallel()

		s := signal.New[string]()
		recs := make([]*recorder[string], 3)
		for i := range recs {
			recs[i] = &recorder[string]{}
			s.Connect(recs[i].record)
		}
		require.Equal(t, 3, s.ConnectionCount())

		s.Fire("ping")

		require.Eventually(t, func() bool {
			for _, rec := range recs {
				if rec.len() != 1 {
					return false
				}
			}
			return true
		}, eventually, tick)

		// No late duplicates.
		time.Sleep(20 * time.Millisecond)
		for _, rec := range recs {
			assert.Equal(t, []string{"ping"}, rec.snapshot())
		}
	})

	t.Run("fire with no connections is a no-op", func(t *testing.T) {
		t.Parallel()

		s := signal.New[int]()
		assert.NotPanics(t, func() { s.Fire(42) })
	})
}

func TestSignalOnce(t *testing.T) {
	t.Parallel()

	t.Run("at most one delivery", func(t *testing.T) {
		t.Parallel()

		s := signal.New[int]()
		rec := &recorder[int]{}
		conn := s.Once(rec.record)

		s.Fire(1)
		s.Fire(2)

		require.Eventually(t, func() bool {
			return rec.len() == 1
		}, eventually, tick)
		time.Sleep(20 * time.Millisecond)
		assert.Equal(t, []int{1}, rec.snapshot())
		assert.False(t, conn.Connected())
		assert.Equal(t, 0, s.ConnectionCount())
	})

	t.Run("handler re-firing the signal is not re-invoked", func(t *testing.T) {
		t.Parallel()

		s := signal.New[int]()
		rec := &recorder[int]{}
		s.Once(func(v int) {
			rec.record(v)
			if v < 10 {
				s.Fire(v + 1)
			}
		})

		s.Fire(1)

		require.Eventually(t, func() bool {
			return rec.len() == 1
		}, eventually, tick)
		time.Sleep(20 * time.Millisecond)
		assert.Equal(t, []int{1}, rec.snapshot())
	})
}

func TestConnectionDisconnect(t *testing.T) {
	t.Parallel()

	t.Run("no deliveries after disconnect", func(t *testing.T) {
		t.Parallel()

		s := signal.New[int]()
		rec := &recorder[int]{}
		conn := s.Connect(rec.record)

		conn.Disconnect()
		require.False(t, conn.Connected())
		s.Fire(1)

		time.Sleep(20 * time.Millisecond)
		assert.Zero(t, rec.len())
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()

		s := signal.New[int]()
		conn := s.Connect(func(int) {})
		other := s.Connect(func(int) {})

		conn.Disconnect()
		conn.Disconnect()

		assert.Equal(t, 1, s.ConnectionCount())
		assert.True(t, other.Connected())
	})

	t.Run("self-disconnect during dispatch leaves others intact", func(t *testing.T) {
		t.Parallel()

		s := signal.New[int]()
		selfRec := &recorder[int]{}
		otherRec := &recorder[int]{}

		var self *signal.Connection[int]
		self = s.Connect(func(v int) {
			selfRec.record(v)
			self.Disconnect()
		})
		s.Connect(otherRec.record)

		s.Fire(1)
		require.Eventually(t, func() bool {
			return selfRec.len() == 1 && otherRec.len() == 1
		}, eventually, tick)

		s.Fire(2)
		require.Eventually(t, func() bool {
			return otherRec.len() == 2
		}, eventually, tick)

		time.Sleep(20 * time.Millisecond)
		assert.Equal(t, []int{1}, selfRec.snapshot())
		assert.Equal(t, []int{1, 2}, otherRec.snapshot())
	})
}

func TestSignalDisconnectAll(t *testing.T) {
	t.Parallel()

	t.Run("fire after disconnect all reaches nothing", func(t *testing.T) {
		t.Parallel()

		s := signal.New[int]()
		rec := &recorder[int]{}
		first := s.Connect(rec.record)
		second := s.Connect(rec.record)

		s.DisconnectAll()

		assert.Equal(t, 0, s.ConnectionCount())
		assert.False(t, first.Connected())
		assert.False(t, second.Connected())

		s.Fire(1)
		time.Sleep(20 * time.Millisecond)
		assert.Zero(t, rec.len())
	})

	t.Run("empty signal is a no-op", func(t *testing.T) {
		t.Parallel()

		s := signal.New[int]()
		assert.NotPanics(t, s.DisconnectAll)
	})

	t.Run("signal stays usable afterwards", func(t *testing.T) {
		t.Parallel()

		s := signal.New[int]()
		s.Connect(func(int) {})
		s.DisconnectAll()

		rec := &recorder[int]{}
		s.Connect(rec.record)
		s.Fire(7)

		require.Eventually(t, func() bool {
			return rec.len() == 1
		}, eventually, tick)
	})
}

func TestSignalHandlerIsolation(t *testing.T) {
	t.Parallel()

	t.Run("panicking handler does not disturb others", func(t *testing.T) {
		t.Parallel()

		s := signal.New[int]()
		rec := &recorder[int]{}
		s.Connect(func(int) { panic("boom") })
		s.Connect(rec.record)

		s.Fire(1)
		s.Fire(2)

		require.Eventually(t, func() bool {
			return rec.len() == 2
		}, eventually, tick)
		assert.Equal(t, []int{1, 2}, rec.snapshot())
	})

	t.Run("panicking handler keeps receiving later fires", func(t *testing.T) {
		t.Parallel()

		s := signal.New[int]()
		rec := &recorder[int]{}
		s.Connect(func(v int) {
			rec.record(v)
			panic("boom")
		})

		s.Fire(1)
		s.Fire(2)

		require.Eventually(t, func() bool {
			return rec.len() == 2
		}, eventually, tick)
	})

	t.Run("slow handler does not block the firer", func(t *testing.T) {
		t.Parallel()

		s := signal.New[int]()
		release := make(chan struct{})
		rec := &recorder[int]{}
		s.Connect(func(v int) {
			<-release
			rec.record(v)
		})

		done := make(chan struct{})
		go func() {
			s.Fire(1)
			s.Fire(2)
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(eventually):
			t.Fatal("Fire blocked on a busy handler")
		}

		close(release)
		require.Eventually(t, func() bool {
			return rec.len() == 2
		}, eventually, tick)
		assert.Equal(t, []int{1, 2}, rec.snapshot())
	})
}

func TestSignalConcurrency(t *testing.T) {
	t.Parallel()

	s := signal.New[int]()
	rec := &recorder[int]{}
	s.Connect(rec.record)

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for range 100 {
				s.Fire(n)
			}
		}(i)
	}
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			conn := s.Connect(func(int) {})
			conn.Disconnect()
		}()
	}
	wg.Wait()

	require.Eventually(t, func() bool {
		return rec.len() == 1000
	}, eventually, tick)
	assert.Equal(t, 1, s.ConnectionCount())
}
