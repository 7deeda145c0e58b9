/*
Copyright 2024 Alexandre Mahdhaoui

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cookie_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexandremahdhaoui/chmigrate/pkg/cookie"
)

func TestBake(t *testing.T) {
	t.Run("EmptyCookie", func(t *testing.T) {
		b, err := cookie.Bake(cookie.New())
		require.NoError(t, err)
		assert.Empty(t, b)
	})

	t.Run("NilCookie", func(t *testing.T) {
		b, err := cookie.Bake(nil)
		require.NoError(t, err)
		assert.Nil(t, b)
	})

	t.Run("NilOutput", func(t *testing.T) {
		assert.NoError(t, cookie.BakeTo(cookie.New(), nil))
	})

	t.Run("Output", func(t *testing.T) {
		out := []byte("previous")
		require.NoError(t, cookie.BakeTo(cookie.New(), &out))
		assert.Empty(t, out)
	})
}

func TestEat(t *testing.T) {
	for name, payload := range map[string][]byte{
		"Nil":           nil,
		"Empty":         {},
		"Whitespace":    []byte(" \n"),
		"EmptyObject":   []byte("{}"),
		"UnknownFields": []byte(`{"hostname":"hostA","hostuuid":"2f1b"}`),
		"Malformed":     []byte("{not: [valid"),
		"XML":           []byte(`<qemu-migration><name>vm0</name><hostname>hostA</hostname></qemu-migration>`),
		"Binary":        {0x00, 0xff, 0xfe, 0x1f, 0x8b, 0x08, 0x00, 0x7f},
		"YAMLList":      []byte("- a\n- b\n"),
		"Scalar":        []byte("42"),
	} {
		t.Run(name, func(t *testing.T) {
			c := cookie.Eat(payload)
			require.NotNil(t, c)
			assert.True(t, c.IsEmpty())
		})
	}
}

func TestRoundTrip(t *testing.T) {
	c := cookie.New()

	b, err := cookie.Bake(c)
	require.NoError(t, err)

	assert.Equal(t, c, cookie.Eat(b))
}
