package input

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PatentScraper/internal/domain"
)

func TestRead(t *testing.T) {
	t.Parallel()

	numbers, err := Read(strings.NewReader("5000000\n\n  RE31,234 \r\n\t\n4,123,456"))
	require.NoError(t, err)
	assert.Equal(t, []domain.PatentNumber{"5000000", "RE31,234", "4,123,456"}, numbers)
}

func TestReadEmpty(t *testing.T) {
	t.Parallel()

	numbers, err := Read(strings.NewReader("\n\n"))
	require.NoError(t, err)
	assert.Empty(t, numbers)
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "numbers.txt")
	require.NoError(t, os.WriteFile(path, []byte("5000000\n"), 0o644))

	numbers, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []domain.PatentNumber{"5000000"}, numbers)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
