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

// Package execcontext carries the environment and command prefix (e.g. "sudo") that every
// command spawned by chmigrate must be run with.
package execcontext

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"sort"
	"strings"
)

type Context interface {
	Envs() map[string]string
	PrependCmd() []string
}

func New(envs map[string]string, prependCmd []string) Context {
	return &context{
		prependCmd: prependCmd,
		envs:       envs,
	}
}

// Empty returns a Context that neither sets variables nor prefixes commands.
func Empty() Context {
	return New(nil, nil)
}

type context struct {
	envs       map[string]string
	prependCmd []string
}

// Envs implements Context.
func (c *context) Envs() map[string]string {
	out := make(map[string]string, len(c.envs))
	maps.Copy(out, c.envs)
	return out
}

// PrependCmd implements Context.
func (c *context) PrependCmd() []string {
	out := make([]string, len(c.prependCmd))
	copy(out, c.prependCmd)
	return out
}

// Command builds an *exec.Cmd for name and args with ctx applied. A nil ctx is treated as Empty().
func Command(ctx Context, name string, args ...string) *exec.Cmd {
	cmd := exec.Command(name, args...)
	if ctx != nil {
		ApplyToCmd(ctx, cmd)
	}
	return cmd
}

// ApplyToCmd sets the environment variables of ctx on cmd, on top of the current process
// environment, and rewrites cmd so that it runs behind the prepended command.
func ApplyToCmd(ctx Context, cmd *exec.Cmd) {
	envs := ctx.Envs()
	if len(envs) > 0 {
		if cmd.Env == nil {
			cmd.Env = os.Environ()
		}
		for _, k := range sortedKeys(envs) {
			cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", k, envs[k]))
		}
	}

	prependCmd := ctx.PrependCmd()
	if len(prependCmd) < 1 {
		return
	}

	tmpCmd := exec.Command(prependCmd[0], prependCmd[1:]...)
	cmd.Path = tmpCmd.Path
	cmd.Err = tmpCmd.Err
	cmd.Args = append(tmpCmd.Args, cmd.Args...)
}

// FormatCmd renders the command line as it would be typed in a shell. Used for logging.
func FormatCmd(ctx Context, cmd ...string) string {
	out := ""

	if ctx != nil {
		envs := ctx.Envs()
		for _, k := range sortedKeys(envs) {
			out = fmt.Sprintf("%s%s=%q ", out, k, envs[k])
		}

		for _, s := range ctx.PrependCmd() {
			out = safelyAppendToCmd(out, s)
		}
	}

	for _, s := range cmd {
		out = safelyAppendToCmd(out, s)
	}

	return strings.TrimSpace(out)
}

var unquottable = map[string]struct{}{
	"&&": {},
	"||": {},
	";":  {},
	"&":  {},
}

func safelyAppendToCmd(cmd string, s string) string {
	if _, ok := unquottable[s]; ok {
		return fmt.Sprintf("%s%s ", cmd, s)
	}
	return fmt.Sprintf("%s%q ", cmd, s)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
