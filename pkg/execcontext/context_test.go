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

package execcontext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexandremahdhaoui/chmigrate/pkg/execcontext"
)

func TestCommand(t *testing.T) {
	t.Run("NoPrepend", func(t *testing.T) {
		cmd := execcontext.Command(execcontext.Empty(), "ch-remote", "resume")
		assert.Equal(t, []string{"ch-remote", "resume"}, cmd.Args)
		assert.Nil(t, cmd.Env)
	})

	t.Run("NilContext", func(t *testing.T) {
		cmd := execcontext.Command(nil, "socat", "-")
		assert.Equal(t, []string{"socat", "-"}, cmd.Args)
	})

	t.Run("WithPrependAndEnvs", func(t *testing.T) {
		ctx := execcontext.New(map[string]string{"RUST_LOG": "debug"}, []string{"sudo", "-E"})
		cmd := execcontext.Command(ctx, "ch-remote", "resume")

		require.Len(t, cmd.Args, 4)
		assert.Equal(t, []string{"sudo", "-E", "ch-remote", "resume"}, cmd.Args)
		assert.Contains(t, cmd.Env, "RUST_LOG=debug")
		// the parent environment is kept.
		assert.Greater(t, len(cmd.Env), 1)
	})
}

func TestFormatCmd(t *testing.T) {
	ctx := execcontext.New(map[string]string{"B": "2", "A": "1"}, []string{"sudo"})

	actual := execcontext.FormatCmd(ctx, "socat", "TCP-LISTEN:49152,reuseaddr", "UNIX-CLIENT:/run/x")
	assert.Equal(t, `A="1" B="2" "sudo" "socat" "TCP-LISTEN:49152,reuseaddr" "UNIX-CLIENT:/run/x"`, actual)

	assert.Equal(t, `"a" && "b"`, execcontext.FormatCmd(nil, "a", "&&", "b"))
}

func TestContextCopies(t *testing.T) {
	envs := map[string]string{"A": "1"}
	prepend := []string{"sudo"}
	ctx := execcontext.New(envs, prepend)

	got := ctx.Envs()
	got["A"] = "mutated"
	p := ctx.PrependCmd()
	p[0] = "doas"

	assert.Equal(t, "1", ctx.Envs()["A"])
	assert.Equal(t, []string{"sudo"}, ctx.PrependCmd())
}
