package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchReportsWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.geom")
	require.NoError(t, os.WriteFile(path, []byte("1 0 0 0\n"), 0o644))

	fw, err := NewFileWatcher(20 * time.Millisecond)
	require.NoError(t, err)
	defer fw.Close()

	changed := make(chan string, 4)
	require.NoError(t, fw.Watch([]string{path}, func(file string) {
		changed <- file
	}))
	fw.Start()

	require.NoError(t, os.WriteFile(path, []byte("2 0 0 0\n"), 0o644))

	select {
	case file := <-changed:
		assert.Equal(t, path, file)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatchDebounces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.geom")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	fw, err := NewFileWatcher(200 * time.Millisecond)
	require.NoError(t, err)
	defer fw.Close()

	changed := make(chan string, 8)
	require.NoError(t, fw.Watch([]string{path}, func(file string) {
		changed <- file
	}))
	fw.Start()

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte{byte('0' + i)}, 0o644))
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	select {
	case <-changed:
		t.Error("burst of writes should be reported once")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatchMissingFile(t *testing.T) {
	fw, err := NewFileWatcher(10 * time.Millisecond)
	require.NoError(t, err)
	defer fw.Close()

	err = fw.Watch([]string{filepath.Join(t.TempDir(), "missing.geom")}, func(string) {})
	assert.Error(t, err)
}
