package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cours-de-latin/conjugator/internal/config"
	"github.com/cours-de-latin/conjugator/internal/lemmaindex"
)

func TestLoadData(t *testing.T) {
	t.Parallel()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dir := t.TempDir()

	t.Run("missing index tolerated", func(t *testing.T) {
		cfg := &config.Config{Index: config.IndexConfig{Path: filepath.Join(dir, "none.csv")}}
		endings, index, err := loadData(cfg, logger)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 4}, endings.Conjugations())
		assert.Zero(t, index.Len())
	})

	t.Run("index loaded", func(t *testing.T) {
		path := filepath.Join(dir, "uri.csv")
		require.NoError(t, lemmaindex.WriteFile(path, []lemmaindex.Entry{{Lemma: "amo", URI: "a2233"}}))
		cfg := &config.Config{Index: config.IndexConfig{Path: path}}
		_, index, err := loadData(cfg, logger)
		require.NoError(t, err)
		assert.Equal(t, 1, index.Len())
	})

	t.Run("bad ending table", func(t *testing.T) {
		path := filepath.Join(dir, "endings.yaml")
		require.NoError(t, os.WriteFile(path, []byte("conjugations: {}\n"), 0o644))
		cfg := &config.Config{
			Index:   config.IndexConfig{Path: filepath.Join(dir, "none.csv")},
			Endings: config.EndingsConfig{Path: path},
		}
		_, _, err := loadData(cfg, logger)
		assert.Error(t, err)
	})
}

func TestReloadOnSignal(t *testing.T) {
	t.Parallel()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	path := filepath.Join(t.TempDir(), "uri.csv")
	require.NoError(t, lemmaindex.WriteFile(path, []lemmaindex.Entry{{Lemma: "amo", URI: "a2233"}}))
	index, err := lemmaindex.Load(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	sig := make(chan os.Signal)
	done := make(chan struct{})
	go func() {
		reloadOnSignal(ctx, sig, index, path, logger)
		close(done)
	}()

	require.NoError(t, lemmaindex.WriteFile(path, []lemmaindex.Entry{
		{Lemma: "amo", URI: "a2233"},
		{Lemma: "moneo", URI: "m2491"},
	}))
	sig <- syscall.SIGHUP
	assert.Eventually(t, func() bool { return index.Len() == 2 }, time.Second, 5*time.Millisecond)

	// A broken file leaves the loaded index in place.
	require.NoError(t, os.WriteFile(path, []byte("word,id\n"), 0o644))
	sig <- syscall.SIGHUP
	sig <- syscall.SIGHUP // unbuffered: returns once the previous reload finished
	assert.Equal(t, 2, index.Len())
	uri, err := index.Lookup("moneo")
	require.NoError(t, err)
	assert.Equal(t, "m2491", uri)

	cancel()
	<-done
}
