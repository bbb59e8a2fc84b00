package util

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGatherFiles(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	assert.NoError(os.MkdirAll(filepath.Join(dir, "nested"), 0755))
	for _, name := range []string{"a.mid", "b.mid", "c.png", filepath.Join("nested", "d.mid")} {
		assert.NoError(os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}

	got := GatherFiles(dir, "*.mid")
	assert.Len(got, 3)

	got = GatherFiles(dir, "*.png")
	assert.Len(got, 1)

	got = GatherFiles(dir, "*.wav")
	assert.Empty(got)
}

func TestGetKeys(t *testing.T) {
	m := map[string]int{"b": 2, "a": 1}
	keys := GetKeys(m)
	sort.Strings(keys)
	assert.Equal(t, []string{"a", "b"}, keys)
}
