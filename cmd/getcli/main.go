package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/samvad-hq/getlite/internal/config"
	"github.com/samvad-hq/getlite/internal/logger"
	"github.com/samvad-hq/getlite/pkg/httpclient"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "getcli failed: %v\n", err)
		os.Exit(1)
	}
}

func run(urls []string) error {
	if len(urls) == 0 {
		return fmt.Errorf("usage: getcli URL [URL...]")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	logger.InfoObj("getcli starting", "config", cfg)

	headers, err := buildHeaders(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := httpclient.NewNetClient(cfg.RequestTimeout)

	var failed int
	for _, url := range urls {
		text, err := fetch(ctx, client, url, headers)
		if err != nil {
			logger.WarnObj("fetch failed", "fetch_error", map[string]any{
				"url":   url,
				"error": err.Error(),
			})
			failed++
			if ctx.Err() != nil {
				break
			}
			continue
		}
		fmt.Fprint(os.Stdout, text)
		log.Infow("fetched", "url", url, "bytes", len(text))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d fetches failed", failed, len(urls))
	}
	return nil
}

// buildHeaders merges the configured user agent with the optional header file.
func buildHeaders(cfg *config.Config) (map[string]string, error) {
	headers := map[string]string{}
	if cfg.UserAgent != "" {
		headers["User-Agent"] = cfg.UserAgent
	}

	if cfg.HeaderFile != "" {
		extra, err := httpclient.LoadHeaderFile(cfg.HeaderFile)
		if err != nil {
			return nil, fmt.Errorf("load headers: %w", err)
		}
		headers = httpclient.MergeHeaders(headers, extra)
	}

	return headers, nil
}

func fetch(ctx context.Context, client httpclient.Client, url string, headers map[string]string) (string, error) {
	resp, err := client.Get(ctx, url, headers)
	if err != nil {
		return "", err
	}
	if resp.StatusCode() >= 400 {
		return "", &httpclient.StatusError{URL: url, StatusCode: resp.StatusCode()}
	}
	return resp.Text()
}
