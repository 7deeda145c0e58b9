//go:build unit

// Copyright 2024 Alexandre Mahdhaoui
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package portalloc_test

import (
	"net"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexandremahdhaoui/chmigrate/pkg/portalloc"
)

func TestNew(t *testing.T) {
	for name, r := range map[string][2]int{
		"Inverted":   {49215, 49152},
		"Zero":       {0, 10},
		"OutOfRange": {65000, 70000},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := portalloc.New(r[0], r[1])
			assert.ErrorIs(t, err, portalloc.ErrInvalidRange)
		})
	}
}

func TestAllocator(t *testing.T) {
	t.Run("AcquireRelease", func(t *testing.T) {
		a, err := portalloc.New(49152, 49153)
		require.NoError(t, err)

		p1, err := a.Acquire()
		require.NoError(t, err)
		p2, err := a.Acquire()
		require.NoError(t, err)

		assert.Equal(t, 49152, p1)
		assert.Equal(t, 49153, p2)
		assert.Equal(t, 2, a.InUse())

		_, err = a.Acquire()
		assert.ErrorIs(t, err, portalloc.ErrPortExhausted)

		require.NoError(t, a.Release(p1))
		assert.Equal(t, 1, a.InUse())

		p3, err := a.Acquire()
		require.NoError(t, err)
		assert.Equal(t, p1, p3)
	})

	t.Run("DoubleRelease", func(t *testing.T) {
		a, err := portalloc.New(49152, 49152)
		require.NoError(t, err)

		p, err := a.Acquire()
		require.NoError(t, err)

		require.NoError(t, a.Release(p))
		assert.ErrorIs(t, a.Release(p), portalloc.ErrPortNotLeased)
		assert.ErrorIs(t, a.Release(1), portalloc.ErrPortNotLeased)
	})

	t.Run("ConcurrentAcquireIsUnique", func(t *testing.T) {
		const n = 64

		a, err := portalloc.New(40000, 40000+n-1)
		require.NoError(t, err)

		var (
			wg    sync.WaitGroup
			mu    sync.Mutex
			ports = make(map[int]int)
		)

		for range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				p, err := a.Acquire()
				assert.NoError(t, err)

				mu.Lock()
				ports[p]++
				mu.Unlock()
			}()
		}
		wg.Wait()

		assert.Len(t, ports, n)
		for p, count := range ports {
			assert.Equal(t, 1, count, "port %d leased twice", p)
		}
	})

	t.Run("AvailabilityFunc", func(t *testing.T) {
		a, err := portalloc.New(49152, 49154, portalloc.WithAvailabilityFunc(func(port int) bool {
			return port != 49152
		}))
		require.NoError(t, err)

		p, err := a.Acquire()
		require.NoError(t, err)
		assert.Equal(t, 49153, p)
	})

	t.Run("BindCheck", func(t *testing.T) {
		l, err := net.Listen("tcp", ":0")
		require.NoError(t, err)
		defer func() { _ = l.Close() }()

		busy := l.Addr().(*net.TCPAddr).Port
		if busy == 65535 {
			t.Skip("ephemeral port at the top of the range")
		}

		a, err := portalloc.New(busy, busy+1, portalloc.WithBindCheck())
		require.NoError(t, err)

		p, err := a.Acquire()
		if err != nil {
			t.Skipf("port %s unavailable: %v", strconv.Itoa(busy+1), err)
		}
		assert.Equal(t, busy+1, p)
	})
}
