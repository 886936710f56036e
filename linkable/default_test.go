// Copyright 2025 The Rivaas Authors
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

package linkable

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsSingleton(t *testing.T) {
	t.Parallel()

	assert.Same(t, Default(), Default())
}

func TestLazy_BuildsOnce(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	get := Lazy(func(r *Registry) error {
		calls.Add(1)
		return r.Register(Descriptor{ID: "root", Path: "/", Method: MethodGet})
	})

	var wg sync.WaitGroup
	regs := make([]*Registry, 16)
	for i := range regs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reg, err := get()
			assert.NoError(t, err)
			regs[i] = reg
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, reg := range regs {
		assert.Same(t, regs[0], reg)
	}
	assert.True(t, regs[0].Frozen())
	assert.True(t, regs[0].Has("root"))
}

func TestLazy_Error(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	get := Lazy(func(*Registry) error { return boom })

	_, err := get()
	require.ErrorIs(t, err, boom)
	_, err = get()
	require.ErrorIs(t, err, boom)
}
