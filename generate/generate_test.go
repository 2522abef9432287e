package generate

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomBounds(t *testing.T) {
	data := Random(NewFaker(), 100, 999).Generate(1000)
	require.Len(t, data, 1000)
	for _, v := range data {
		assert.GreaterOrEqual(t, v, 100)
		assert.Less(t, v, 999)
	}
}

func TestSeededIsDeterministic(t *testing.T) {
	gen := Seeded(0xDEADBEEF, 10000, 99999)
	a := gen.Generate(500)
	b := gen.Generate(500)
	assert.Equal(t, a, b)

	for _, v := range a {
		assert.GreaterOrEqual(t, v, 10000)
		assert.Less(t, v, 99999)
	}

	other := Seeded(0xCAFEBABE, 10000, 99999).Generate(500)
	assert.NotEqual(t, a, other)
}

func TestSortedAndReversed(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3}, Sorted().Generate(4))
	assert.Equal(t, []int{4, 3, 2, 1}, Reversed().Generate(4))
	assert.Empty(t, Sorted().Generate(0))
}

func TestFewUnique(t *testing.T) {
	data := FewUnique(NewFaker(), 3).Generate(200)
	seen := map[int]bool{}
	for _, v := range data {
		seen[v] = true
	}
	assert.LessOrEqual(t, len(seen), 3)
	for v := range seen {
		assert.True(t, v >= 0 && v < 3)
	}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, WriteFile(path, []int{5, -3, 12}))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []int{5, -3, 12}, got)

	gen, err := File(path)
	require.NoError(t, err)
	assert.Equal(t, []int{5, -3, 12, 5, -3}, gen.Generate(5))
	assert.Equal(t, []int{5}, gen.Generate(1))
}

func TestFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := File(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, WriteFile(empty, nil))
	_, err = File(empty)
	assert.ErrorIs(t, err, ErrEmptyDataset)
}
