package pkg

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSpill(t *testing.T) {
	t.Run("created inside the given directory", func(t *testing.T) {
		dir := t.TempDir()

		spill, err := NewFileSpill[int](dir)
		require.NoError(t, err)
		defer spill.Close()

		assert.Equal(t, dir, filepath.Dir(spill.Path()))
	})

	t.Run("empty directory uses the default", func(t *testing.T) {
		spill, err := NewFileSpill[int]("")
		require.NoError(t, err)
		defer spill.Remove()

		assert.Equal(t, DefaultSpillDir(), filepath.Dir(spill.Path()))
	})

	t.Run("Append and Get", func(t *testing.T) {
		spill, err := NewFileSpill[string](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		require.NoError(t, spill.Append("first"))
		require.NoError(t, spill.Append("second"))

		val, err := spill.Get(0)
		require.NoError(t, err)
		assert.Equal(t, "first", val)

		val, err = spill.Get(1)
		require.NoError(t, err)
		assert.Equal(t, "second", val)

		val, err = spill.Get(3)
		require.Error(t, err)
		assert.Empty(t, val)
	})

	t.Run("AppendBatch and Len", func(t *testing.T) {
		spill, err := NewFileSpill[[]int](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		assert.Equal(t, uint64(0), spill.Len())

		require.NoError(t, spill.AppendBatch([][]int{{1}, {1, 2}, {}}))
		assert.Equal(t, uint64(3), spill.Len())

		val, err := spill.Get(1)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, val)
	})

	t.Run("Range visits items in order and stops on error", func(t *testing.T) {
		spill, err := NewFileSpill[int](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		require.NoError(t, spill.AppendBatch([]int{100, 200, 300}))

		var collected []int
		require.NoError(t, spill.Range(func(_ uint64, item int) error {
			collected = append(collected, item)
			return nil
		}))
		assert.Equal(t, []int{100, 200, 300}, collected)

		count := 0
		stop := errors.New("stop")
		err = spill.Range(func(index uint64, _ int) error {
			count++
			if index == 1 {
				return stop
			}

			return nil
		})
		assert.ErrorIs(t, err, stop)
		assert.Equal(t, 2, count)
	})

	t.Run("closed spill stays readable but rejects writes", func(t *testing.T) {
		spill, err := NewFileSpill[int](t.TempDir())
		require.NoError(t, err)

		require.NoError(t, spill.Append(1))
		require.NoError(t, spill.Close())
		require.NoError(t, spill.Close())

		val, err := spill.Get(0)
		require.NoError(t, err)
		assert.Equal(t, 1, val)

		assert.ErrorIs(t, spill.Append(2), ErrSpillClosed)
	})

	t.Run("Remove deletes the file", func(t *testing.T) {
		spill, err := NewFileSpill[int](t.TempDir())
		require.NoError(t, err)
		require.NoError(t, spill.Append(1))

		require.NoError(t, spill.Remove())

		_, statErr := os.Stat(spill.Path())
		assert.True(t, os.IsNotExist(statErr))
		assert.Equal(t, uint64(0), spill.Len())
	})

	t.Run("structs round trip", func(t *testing.T) {
		type point struct {
			X, Y int
		}

		spill, err := NewFileSpill[point](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		require.NoError(t, spill.AppendBatch([]point{{X: 10, Y: 20}, {X: 30, Y: 40}}))

		got, err := spill.Get(1)
		require.NoError(t, err)
		assert.Equal(t, point{X: 30, Y: 40}, got)
	})
}

func BenchmarkAppend(b *testing.B) {
	spill, err := NewFileSpill[int](b.TempDir())
	if err != nil {
		b.Fatalf("failed to create spill: %v", err)
	}
	defer spill.Close()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = spill.Append(i)
	}
}
