package tmpfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/afs"
	"github.com/viant/gnuplot/errs"
	"github.com/viant/gnuplot/internal/idgen"
)

func stubIDs(t *testing.T) {
	t.Helper()
	counter := 0
	previous := idgen.NewFunc
	idgen.NewFunc = func() string {
		counter++
		return fmt.Sprintf("id%d", counter)
	}
	t.Cleanup(func() { idgen.NewFunc = previous })
}

func TestStore_Create(t *testing.T) {
	stubIDs(t)
	ctx := context.Background()
	dir := t.TempDir()
	store := New(afs.New(), dir)

	name, err := store.Create(ctx, []byte("1\n2\n3\n"))
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "gnuplot-id1.dat"), name)
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, []string{name}, store.Names())

	data, err := os.ReadFile(name)
	assert.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n", string(data))
}

func TestStore_Limit(t *testing.T) {
	ctx := context.Background()
	store := New(afs.New(), t.TempDir(), WithLimit(2))

	for i := 0; i < 2; i++ {
		_, err := store.Create(ctx, []byte("1\n"))
		assert.NoError(t, err)
	}
	_, err := store.Create(ctx, []byte("1\n"))
	assert.ErrorIs(t, err, errs.ErrResourceLimit)
	assert.Equal(t, 2, store.Len())

	assert.NoError(t, store.RemoveAll(ctx))
	_, err = store.Create(ctx, []byte("1\n"))
	assert.NoError(t, err)
}

func TestStore_RemoveAll(t *testing.T) {
	ctx := context.Background()
	store := New(afs.New(), t.TempDir(), WithPrefix("test-"))

	first, err := store.Create(ctx, []byte("1\n"))
	assert.NoError(t, err)
	second, err := store.Create(ctx, []byte("2\n"))
	assert.NoError(t, err)
	assert.Contains(t, filepath.Base(first), "test-")

	assert.NoError(t, store.RemoveAll(ctx))
	assert.Equal(t, 0, store.Len())
	for _, name := range []string{first, second} {
		_, statErr := os.Stat(name)
		assert.True(t, os.IsNotExist(statErr))
	}

	// nothing left to do on the second call
	assert.NoError(t, store.RemoveAll(ctx))
}

func TestStore_RemoveAll_Missing(t *testing.T) {
	ctx := context.Background()
	store := New(afs.New(), t.TempDir())

	var names []string
	for i := 0; i < 3; i++ {
		name, err := store.Create(ctx, []byte("1\n"))
		assert.NoError(t, err)
		names = append(names, name)
	}
	assert.NoError(t, os.Remove(names[0]))

	err := store.RemoveAll(ctx)
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.Contains(t, err.Error(), names[0])
	assert.Equal(t, 0, store.Len())
	for _, name := range names[1:] {
		_, statErr := os.Stat(name)
		assert.True(t, os.IsNotExist(statErr), name)
	}

	assert.NoError(t, store.RemoveAll(ctx))
}
