package runtimegen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semloom/ts2go/internal/runtimegen"
)

func TestGenerate_ProducesWellFormedPackage(t *testing.T) {
	src, err := runtimegen.Generate("widgets")
	require.NoError(t, err)
	assert.Contains(t, src, "package widgets")
	assert.Contains(t, src, "func safeDeref")
	assert.Contains(t, src, "func coalesce")
	assert.Contains(t, src, "func runtimeTypeName")
	assert.Contains(t, src, "func containsValue")
	assert.Contains(t, src, "func isType")
	assert.Contains(t, src, "func asType")
}

func TestGenerate_EmptyPackageNameDefaultsToMain(t *testing.T) {
	src, err := runtimegen.Generate("")
	require.NoError(t, err)
	assert.Contains(t, src, "package main")
}

func TestGenerate_IsDeterministic(t *testing.T) {
	first, err := runtimegen.Generate("widgets")
	require.NoError(t, err)
	second, err := runtimegen.Generate("widgets")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerate_NoTrailingWhitespaceLines(t *testing.T) {
	src, err := runtimegen.Generate("widgets")
	require.NoError(t, err)
	for _, line := range strings.Split(src, "\n") {
		assert.Equal(t, strings.TrimRight(line, " \t"), line)
	}
}
