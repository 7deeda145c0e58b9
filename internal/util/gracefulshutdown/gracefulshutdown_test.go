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

package gracefulshutdown_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexandremahdhaoui/chmigrate/internal/util/gracefulshutdown"
)

type exitRecorder struct {
	mu    sync.Mutex
	codes []int
}

func (r *exitRecorder) exit(code int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.codes = append(r.codes, code)
}

func (r *exitRecorder) calls() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.codes...)
}

func TestGracefulShutdown(t *testing.T) {
	t.Run("ContextIsLiveUntilShutdown", func(t *testing.T) {
		rec := &exitRecorder{}
		gs := gracefulshutdown.NewWithExit("test", rec.exit)
		gs.Ready()

		require.NoError(t, gs.Context().Err())

		gs.Shutdown(0)

		assert.Error(t, gs.Context().Err())
		assert.Equal(t, []int{0}, rec.calls())
	})

	t.Run("WaitsForWaitGroup", func(t *testing.T) {
		rec := &exitRecorder{}
		gs := gracefulshutdown.NewWithExit("test", rec.exit)

		var finished bool
		gs.WaitGroup().Add(1)
		go func() {
			defer gs.WaitGroup().Done()
			<-gs.Context().Done()
			time.Sleep(10 * time.Millisecond)
			finished = true
		}()
		gs.Ready()

		gs.Shutdown(3)

		assert.True(t, finished)
		assert.Equal(t, []int{3}, rec.calls())
	})

	t.Run("HooksRunInReverseOrder", func(t *testing.T) {
		rec := &exitRecorder{}
		gs := gracefulshutdown.NewWithExit("test", rec.exit)

		var order []string
		gs.OnShutdown("first", func(ctx context.Context) error {
			_, ok := ctx.Deadline()
			assert.True(t, ok)
			order = append(order, "first")
			return nil
		})
		gs.OnShutdown("second", func(context.Context) error {
			order = append(order, "second")
			return nil
		})
		gs.Ready()

		gs.Shutdown(0)

		assert.Equal(t, []string{"second", "first"}, order)
		assert.Equal(t, []int{0}, rec.calls())
	})

	t.Run("FailedHookChangesExitCode", func(t *testing.T) {
		rec := &exitRecorder{}
		gs := gracefulshutdown.NewWithExit("test", rec.exit)
		gs.SetHookTimeout(time.Second)

		ran := false
		gs.OnShutdown("ok", func(context.Context) error {
			ran = true
			return nil
		})
		gs.OnShutdown("broken", func(context.Context) error {
			return errors.New("boom")
		})
		gs.Ready()

		gs.Shutdown(0)

		assert.True(t, ran)
		assert.Equal(t, []int{1}, rec.calls())
	})

	t.Run("Idempotent", func(t *testing.T) {
		rec := &exitRecorder{}
		gs := gracefulshutdown.NewWithExit("test", rec.exit)
		gs.Ready()

		var wg sync.WaitGroup
		for i := range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				gs.Shutdown(i)
			}()
		}
		wg.Wait()

		assert.Len(t, rec.calls(), 1)
	})

	t.Run("CancelTriggersShutdown", func(t *testing.T) {
		rec := &exitRecorder{}
		gs := gracefulshutdown.NewWithExit("test", rec.exit)
		gs.Ready()

		gs.CancelFunc()()

		assert.Eventually(t, func() bool { return len(rec.calls()) == 1 }, time.Second, 5*time.Millisecond)
	})
}
