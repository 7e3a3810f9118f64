package tast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semloom/ts2go/pkg/tast"
)

func TestParseFile_DecodesMinimalDocument(t *testing.T) {
	f, err := tast.ParseFile([]byte(`{"name":"widgets","path":"widgets.ts","items":[]}`))
	require.NoError(t, err)
	assert.Equal(t, "widgets", f.Name)
	assert.Empty(t, f.Items)
}

func TestLoadFromGJSON_BackfillsMissingItems(t *testing.T) {
	f, err := tast.LoadFromGJSON([]byte(`{"path":"widgets.ts"}`))
	require.NoError(t, err)
	assert.Equal(t, "widgets.ts", f.Path)
	assert.Empty(t, f.Name)
	assert.NotNil(t, f.Items)
	assert.Empty(t, f.Items)
}

func TestLoadFromGJSON_LeavesFullDocumentUnchanged(t *testing.T) {
	raw := []byte(`{"name":"widgets","path":"widgets.ts","items":[{"stmt":{"loc":{"file":"widgets.ts"}}}]}`)
	strict, err := tast.ParseFile(raw)
	require.NoError(t, err)
	lenient, err := tast.LoadFromGJSON(raw)
	require.NoError(t, err)
	assert.Equal(t, strict, lenient)
}

func TestQueryPath_ExtractsRawField(t *testing.T) {
	raw, err := tast.QueryPath([]byte(`{"name":"widgets"}`), "name")
	require.NoError(t, err)
	assert.Equal(t, `"widgets"`, raw)
}

func TestQueryPath_ErrorsOnMissingPath(t *testing.T) {
	_, err := tast.QueryPath([]byte(`{"name":"widgets"}`), "missing")
	assert.Error(t, err)
}
