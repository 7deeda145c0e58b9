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

package domain

import "context"

type ownerContextKey struct{}

// ContextWithOwner attaches the identity of the caller, recorded as the owner of the jobs it
// begins.
func ContextWithOwner(ctx context.Context, owner string) context.Context {
	return context.WithValue(ctx, ownerContextKey{}, owner)
}

// OwnerFromContext returns the identity set by ContextWithOwner, or "unknown".
func OwnerFromContext(ctx context.Context) string {
	if owner, ok := ctx.Value(ownerContextKey{}).(string); ok && owner != "" {
		return owner
	}
	return "unknown"
}
