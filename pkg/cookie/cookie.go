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

// Package cookie encodes the opaque metadata exchanged between the source and the
// destination of a migration.
//
// The cookie carries no field yet. It exists so that handshake metadata can be added without
// changing the phase signatures: any payload decodes to a valid Cookie. Fields unknown to the
// decoder are ignored, and a payload that cannot be decoded at all yields an empty Cookie.
package cookie

import (
	"bytes"
	"errors"
	"log/slog"

	"sigs.k8s.io/yaml"
)

// ErrCookieEncode is returned by Bake when a cookie cannot be serialized.
var ErrCookieEncode = errors.New("cannot encode migration cookie")

// Cookie is the migration handshake metadata.
type Cookie struct{}

// New returns an empty cookie.
func New() *Cookie {
	return &Cookie{}
}

// IsEmpty reports whether the cookie carries no data.
func (c *Cookie) IsEmpty() bool {
	return c == nil || *c == Cookie{}
}

// Bake serializes c. An empty or nil cookie bakes to a nil payload.
func Bake(c *Cookie) ([]byte, error) {
	if c.IsEmpty() {
		return nil, nil
	}

	b, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Join(err, ErrCookieEncode)
	}

	return b, nil
}

// BakeTo serializes c into out. A nil out means that the caller does not want a cookie, in
// which case nothing is done.
func BakeTo(c *Cookie, out *[]byte) error {
	if out == nil {
		return nil
	}

	b, err := Bake(c)
	if err != nil {
		return err
	}

	*out = b

	return nil
}

// Eat deserializes a payload. It never fails: an empty payload, or one that is not a YAML or
// JSON object, yields an empty cookie.
func Eat(b []byte) *Cookie {
	if len(bytes.TrimSpace(b)) == 0 {
		return New()
	}

	c := New()
	if err := yaml.Unmarshal(b, c); err != nil {
		slog.Debug("migration_cookie_ignored", "size", len(b), "error", err.Error())
		return New()
	}

	return c
}
