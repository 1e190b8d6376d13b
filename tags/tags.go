// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package tags provides the key/value tag model that map-data callers use
// to drive geometry generation. The geometry core itself never inspects
// tags; they live here so feature code layered on top of it shares one
// representation.
package tags

// Tags is an immutable-by-convention key to value mapping.
type Tags map[string]string

// Value returns the value for key, or the empty string.
func (t Tags) Value(key string) string {
	return t[key]
}

// Contains reports whether key is present.
func (t Tags) Contains(key string) bool {
	_, ok := t[key]
	return ok
}

// Inherit merges own tags with parent tags. Keys from both sides are
// retained; where a key is present in both, the own value wins.
func Inherit(own, parent Tags) Tags {
	out := make(Tags, len(own)+len(parent))
	for k, v := range parent {
		out[k] = v
	}
	for k, v := range own {
		out[k] = v
	}
	return out
}
