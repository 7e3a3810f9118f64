// Package runtimegen produces the fixed companion runtime-helper Go
// source file the emitter's generated code calls into: the
// optional-chaining guard, the reflection-based `typeof` helper, the
// `.includes()` helper, and generic tagged-union scaffolding. Gated by
// config.Config.GenerateRuntime (spec.md §6's `generateRuntime` key).
//
// The companion file shares the emitted module's own package — it is a
// sibling file dropped alongside the generated source, not a separate
// importable module — so its helper names match the bare identifiers
// internal/emitter's expr.go already calls (safeDeref, runtimeTypeName,
// containsValue).
//
// Grounded on the same strings.Builder-then-go/format.Source idiom as
// internal/emitter, since this is also fixed text assembled and laid out
// by the Go toolchain rather than a parsed/derived artefact.
package runtimegen

import (
	"fmt"
	"go/format"
)

const body = `
import "reflect"

// safeDeref implements the optional-chaining guard: a nil receiver along
// an optional member-access chain yields the zero value of T instead of
// panicking.
func safeDeref[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}

// coalesce implements the nullish-coalescing operator: the first non-nil
// argument wins.
func coalesce[T any](primary *T, fallback T) T {
	if primary == nil {
		return fallback
	}
	return *primary
}

// runtimeTypeName implements the 'typeof' unary operator against Go's
// reflection package, returning the source language's runtime type tag
// rather than Go's own type name.
func runtimeTypeName(v interface{}) string {
	if v == nil {
		return "undefined"
	}
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int64, float64:
		return "number"
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Func:
		return "function"
	default:
		return "object"
	}
}

// containsValue implements 'Array.prototype.includes' for a generic slice.
func containsValue[T comparable](coll []T, needle T) bool {
	for _, item := range coll {
		if item == needle {
			return true
		}
	}
	return false
}

// isType reports whether v holds a T, scaffolding a generated tagged-
// union's Is{Variant} helper can delegate to for a variant mapped to
// interface{} rather than to its own struct field.
func isType[T any](v interface{}) bool {
	_, ok := v.(T)
	return ok
}

// asType asserts v as a T, the companion to isType for a generated
// tagged-union's As{Variant} helper.
func asType[T any](v interface{}) T {
	t, _ := v.(T)
	return t
}
`

// Generate returns the formatted companion runtime source file, declared
// under pkgName so it compiles alongside the module it was generated for.
func Generate(pkgName string) (string, error) {
	if pkgName == "" {
		pkgName = "main"
	}
	src := "package " + pkgName + "\n" + body
	formatted, err := format.Source([]byte(src))
	if err != nil {
		return "", fmt.Errorf("runtimegen: generated source did not parse cleanly: %w", err)
	}
	return string(formatted), nil
}
