// Command testhelper drives a ZeroEntropy account from the command
// line for cross-SDK compatibility tests. Each command reads its input
// from argv or stdin and writes a single JSON document to stdout.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	zeroentropy "github.com/zeroentropy/client-go"
)

// Config carries the helper's I/O streams so tests can substitute
// buffers.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func DefaultConfig() *Config {
	return &Config{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

var exitFunc = os.Exit

var clientFactory = func() (*zeroentropy.Client, error) {
	return zeroentropy.New(
		os.Getenv(zeroentropy.EnvAPIKey),
		zeroentropy.WithBaseURL(os.Getenv(zeroentropy.EnvBaseURL)),
	)
}

func run(args []string, cfg *Config) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: testhelper <command> [args]")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := clientFactory()
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	switch args[1] {
	case "create-collection":
		if len(args) < 3 {
			return fmt.Errorf("usage: testhelper create-collection <name>")
		}
		return runCreateCollection(ctx, client, cfg, args[2])
	case "add-document":
		if len(args) < 4 {
			return fmt.Errorf("usage: testhelper add-document <collection> <path>")
		}
		return runAddDocument(ctx, client, cfg, args[2], args[3])
	case "wait-indexed":
		if len(args) < 4 {
			return fmt.Errorf("usage: testhelper wait-indexed <collection> <path>")
		}
		return runWaitIndexed(ctx, client, cfg, args[2], args[3])
	case "query":
		if len(args) < 4 {
			return fmt.Errorf("usage: testhelper query <collection> <query> [k]")
		}
		k := 5
		if len(args) > 4 {
			k, err = strconv.Atoi(args[4])
			if err != nil {
				return fmt.Errorf("parse k: %w", err)
			}
		}
		return runQuery(ctx, client, cfg, args[2], args[3], k)
	case "cleanup":
		if len(args) < 3 {
			return fmt.Errorf("usage: testhelper cleanup <collection>")
		}
		return runCleanup(ctx, client, cfg, args[2])
	default:
		return fmt.Errorf("unknown command: %s", args[1])
	}
}

func runCreateCollection(ctx context.Context, client *zeroentropy.Client, cfg *Config, name string) error {
	if err := client.Collections.Add(ctx, name); err != nil {
		return fmt.Errorf("create collection: %w", err)
	}
	return json.NewEncoder(cfg.Stdout).Encode(map[string]bool{"success": true})
}

// runAddDocument reads the document text from stdin.
func runAddDocument(ctx context.Context, client *zeroentropy.Client, cfg *Config, collection, path string) error {
	text, err := io.ReadAll(cfg.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	if err := client.Documents.AddText(ctx, collection, path, string(text)); err != nil {
		return fmt.Errorf("add document: %w", err)
	}
	return json.NewEncoder(cfg.Stdout).Encode(map[string]bool{"success": true})
}

type DocumentOutput struct {
	Path        string `json:"path"`
	IndexStatus string `json:"indexStatus"`
}

func runWaitIndexed(ctx context.Context, client *zeroentropy.Client, cfg *Config, collection, path string) error {
	info, err := client.Documents.WaitUntilIndexed(ctx, collection, path)
	if err != nil {
		return fmt.Errorf("wait for indexing: %w", err)
	}

	return json.NewEncoder(cfg.Stdout).Encode(DocumentOutput{
		Path:        info.Path,
		IndexStatus: string(info.IndexStatus),
	})
}

type SnippetOutput struct {
	Path       string  `json:"path"`
	Content    string  `json:"content"`
	Score      float64 `json:"score"`
	PageNumber *int    `json:"pageNumber,omitempty"`
}

func runQuery(ctx context.Context, client *zeroentropy.Client, cfg *Config, collection, query string, k int) error {
	snippets, err := client.Queries.TopSnippets(ctx, zeroentropy.TopSnippetsParams{
		Collection: collection,
		Query:      query,
		K:          k,
	})
	if err != nil {
		return fmt.Errorf("query snippets: %w", err)
	}

	output := struct {
		Results []SnippetOutput `json:"results"`
	}{
		Results: convertSnippets(snippets),
	}
	return json.NewEncoder(cfg.Stdout).Encode(output)
}

func convertSnippets(snippets []zeroentropy.SnippetResult) []SnippetOutput {
	out := make([]SnippetOutput, 0, len(snippets))
	for _, s := range snippets {
		out = append(out, SnippetOutput{
			Path:       s.Path,
			Content:    s.Content,
			Score:      s.Score,
			PageNumber: s.PageNumber,
		})
	}
	return out
}

func runCleanup(ctx context.Context, client *zeroentropy.Client, cfg *Config, collection string) error {
	if err := client.Collections.Delete(ctx, collection); err != nil {
		return fmt.Errorf("delete collection: %w", err)
	}
	return json.NewEncoder(cfg.Stdout).Encode(map[string]bool{"success": true})
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	exitFunc(1)
}
