// Command server exposes the Latin verb conjugator as a JSON REST API.
//
// Endpoints (each verb endpoint takes verb=<dictionary form> or uri=<id>):
//
//	GET /api/conjugate?verb=amo&code=200314110
//	GET /api/conjugate?verb=amo&mood=1&tense=4&voice=1&person=3&number=1
//	GET /api/chart?verb=amo
//	GET /api/principal-parts?verb=amo
//	GET /api/translate?tag=v3spia----
//	GET /healthz
//
// SIGHUP reloads the lemma index file without a restart.
package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/cours-de-latin/conjugator"
	"github.com/cours-de-latin/conjugator/internal/app"
	"github.com/cours-de-latin/conjugator/internal/config"
	"github.com/cours-de-latin/conjugator/internal/latinwordnet"
	"github.com/cours-de-latin/conjugator/internal/lemmaindex"
	"github.com/cours-de-latin/conjugator/internal/middleware"
)

const lexemeCacheSize = 4096

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is normal outside development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.Log)

	endings, index, err := loadData(cfg, logger)
	if err != nil {
		return err
	}

	client := latinwordnet.NewClientWithURL(cfg.LexicalService.BaseURL, cfg.LexicalService.Timeout, logger)
	lexemes, err := newLexemeCache(client, lexemeCacheSize)
	if err != nil {
		return err
	}
	srv := &server{
		conj:    conjugator.NewWithEndings(endings),
		index:   index,
		lexemes: lexemes,
		log:     logger,
	}

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(srv.routes())

	httpSrv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)
	go reloadOnSignal(ctx, hup, index, cfg.Index.Path, logger)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", slog.String("addr", httpSrv.Addr))
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}

// loadData reads the ending table and the lemma index in parallel. A
// missing index file is tolerated: lookups by uri= still work.
func loadData(cfg *config.Config, logger *slog.Logger) (*conjugator.Endings, *lemmaindex.Index, error) {
	var (
		endings *conjugator.Endings
		index   *lemmaindex.Index
		g       errgroup.Group
	)

	g.Go(func() error {
		var err error
		if endings, err = loadEndings(cfg.Endings); err != nil {
			return err
		}
		logger.Info("ending table loaded",
			slog.String("path", cfg.Endings.Path),
			slog.Any("conjugations", endings.Conjugations()),
		)
		return nil
	})

	g.Go(func() error {
		var err error
		index, err = lemmaindex.Load(cfg.Index.Path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			logger.Warn("lemma index missing; only uri= lookups will work",
				slog.String("path", cfg.Index.Path))
			index = lemmaindex.New(nil)
		case err != nil:
			return err
		default:
			logger.Info("lemma index loaded", slog.Int("lemmas", index.Len()))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return endings, index, nil
}

// reloadOnSignal re-reads the lemma index from path each time sig fires,
// until ctx ends. A failed reload keeps the current index.
func reloadOnSignal(ctx context.Context, sig <-chan os.Signal, index *lemmaindex.Index, path string, logger *slog.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-sig:
			if err := index.Reload(path); err != nil {
				logger.Error("lemma index reload failed",
					slog.String("path", path),
					slog.String("error", err.Error()),
					slog.Int("lemmas", index.Len()),
				)
				continue
			}
			logger.Info("lemma index reloaded", slog.String("path", path), slog.Int("lemmas", index.Len()))
		}
	}
}

func loadEndings(cfg config.EndingsConfig) (*conjugator.Endings, error) {
	if cfg.Path == "" {
		return conjugator.DefaultEndings()
	}
	return conjugator.LoadEndings(cfg.Path)
}
