package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/chemicaljson/pkg/cjson"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), cjson.SchemaFileName)
	require.NoError(t, generate(path))

	got, err := os.ReadFile(path)
	require.NoError(t, err)

	want, err := cjson.Schema()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.Error(t, generate(filepath.Join(t.TempDir(), "missing", cjson.SchemaFileName)))
}
