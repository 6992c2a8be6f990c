// Copyright (c) 2026 The Liftscript Authors. All rights reserved.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadExerciseLibraryBareList(t *testing.T) {
	path := writeTemp(t, "exercises.yaml", "- Bench Press\n- Squat\n")

	got, err := loadExerciseLibrary(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bench Press", "Squat"}, got)
}

func TestLoadExerciseLibraryDocumentForm(t *testing.T) {
	path := writeTemp(t, "exercises.yaml", "exercises:\n  - Bench Press\n  - Squat\n")

	got, err := loadExerciseLibrary(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bench Press", "Squat"}, got)
}

func TestLoadExerciseLibraryInvalid(t *testing.T) {
	path := writeTemp(t, "exercises.yaml", "not: [valid")

	_, err := loadExerciseLibrary(path)
	assert.Error(t, err)
}
