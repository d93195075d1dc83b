package database

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var numericColumn = regexp.MustCompile(`(\w+)\s+NUMERIC\((\d+),\s*(\d+)\)`)

func TestMigrations_MoneyColumnsShareOnePrecision(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("..", "..", "migrations", "*.up.sql"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	var columns int
	for _, f := range files {
		raw, err := os.ReadFile(f)
		require.NoError(t, err)
		for _, m := range numericColumn.FindAllStringSubmatch(string(raw), -1) {
			columns++
			assert.Equal(t, "15", m[2], "%s %s precision", filepath.Base(f), m[1])
			assert.Equal(t, "2", m[3], "%s %s scale", filepath.Base(f), m[1])
		}
	}
	assert.Equal(t, 4, columns)
}
