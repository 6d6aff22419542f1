// Command update-index downloads the LatinWordNet verb index and writes it
// as the lemma,uri CSV the server loads at startup.
//
// The index changes rarely; there is no need to run this often.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/cours-de-latin/conjugator/internal/app"
	"github.com/cours-de-latin/conjugator/internal/config"
	"github.com/cours-de-latin/conjugator/internal/latinwordnet"
	"github.com/cours-de-latin/conjugator/internal/lemmaindex"
)

func main() {
	out := flag.String("o", "", "output path (default: index.path from config)")
	flag.Parse()

	if err := run(*out); err != nil {
		fmt.Fprintln(os.Stderr, "update-index:", err)
		os.Exit(1)
	}
}

func run(out string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.Log)
	if out == "" {
		out = cfg.Index.Path
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := latinwordnet.NewClientWithURL(cfg.LexicalService.BaseURL, cfg.LexicalService.Timeout, logger)
	n, err := update(ctx, client, out)
	if err != nil {
		return err
	}
	logger.Info("index written", slog.String("path", out), slog.Int("lemmas", n))
	return nil
}

type indexFetcher interface {
	FetchIndex(ctx context.Context) ([]lemmaindex.Entry, error)
}

// update fetches the index and replaces the file at path. An empty
// download leaves the existing file alone.
func update(ctx context.Context, f indexFetcher, path string) (int, error) {
	entries, err := f.FetchIndex(ctx)
	if err != nil {
		return 0, err
	}
	if len(entries) == 0 {
		return 0, errors.New("service returned an empty index")
	}
	if err := lemmaindex.WriteFile(path, entries); err != nil {
		return 0, err
	}
	return len(entries), nil
}
