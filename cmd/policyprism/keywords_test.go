package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	main "github.com/fwojciec/policyprism/cmd/policyprism"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints top keywords from a file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "text.txt")
		require.NoError(t, os.WriteFile(path,
			[]byte("rider rider rider coverage coverage premium"), 0644))

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
		}

		cmd := &main.KeywordsCmd{File: path, Limit: 2}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "rider\ncoverage\n", stdout.String())
	})

	t.Run("no keywords", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "text.txt")
		require.NoError(t, os.WriteFile(path, []byte("the and for"), 0644))

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
		}

		cmd := &main.KeywordsCmd{File: path, Limit: 5}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No keywords found.")
	})
}
