package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jsnanigans/vardiff/pkg/vardiff"
)

func TestRunComparePlain(t *testing.T) {
	logger = zap.NewNop()
	plain = true
	compareJSON = false

	basePath := writeFile(t, "base.txt", "the quick fox")
	variantPath := writeFile(t, "variant.txt", "the fast fox")

	var buf bytes.Buffer
	compareCmd.SetOut(&buf)
	defer compareCmd.SetOut(nil)

	require.NoError(t, runCompare(compareCmd, []string{basePath, variantPath}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "the -quick +fast fox", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "similarity: "), "got %q", lines[1])
}

func TestRunCompareJSON(t *testing.T) {
	logger = zap.NewNop()
	compareJSON = true
	defer func() { compareJSON = false }()

	basePath := writeFile(t, "base.txt", "hello")
	variantPath := writeFile(t, "variant.txt", "hello world")

	var buf bytes.Buffer
	compareCmd.SetOut(&buf)
	defer compareCmd.SetOut(nil)

	require.NoError(t, runCompare(compareCmd, []string{basePath, variantPath}))

	var got struct {
		Tokens     []vardiff.Token `json:"tokens"`
		Similarity float64         `json:"similarity"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []vardiff.Token{
		{Text: "hello", Kind: vardiff.Same},
		{Text: "world", Kind: vardiff.Added},
	}, got.Tokens)
	assert.Greater(t, got.Similarity, 0.0)
}

func TestRunCompareMissingFile(t *testing.T) {
	logger = zap.NewNop()

	variantPath := writeFile(t, "variant.txt", "text")
	err := runCompare(compareCmd, []string{"/does/not/exist.txt", variantPath})
	assert.Error(t, err)
}
