package collector

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"alpha-trade-tracker/internal/logger"
	"alpha-trade-tracker/internal/store"
	"alpha-trade-tracker/internal/types"
)

// CollectDir replays a directory of captured pages into a session: saved
// *.html order-history pages feed the DOM path, intercepted *.json API
// responses feed the API path. Files are processed in name order so a
// capture can be replayed deterministically.
func CollectDir(ctx context.Context, dir string, sess *store.Session) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read capture dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	total := 0
	page := 0
	for _, name := range names {
		path := filepath.Join(dir, name)
		switch strings.ToLower(filepath.Ext(name)) {
		case ".html", ".htm":
			records, err := parseHTMLFile(path)
			if err != nil {
				logger.Warn(ctx, "Skipping unreadable page capture", "file", name, "error", err)
				continue
			}
			page++
			sess.Merge(records, types.ProvenanceDOM)
			logger.Page(ctx, page, len(records), "file", name)
			total += len(records)
		case ".json":
			raw, err := os.ReadFile(path)
			if err != nil {
				logger.Warn(ctx, "Skipping unreadable API capture", "file", name, "error", err)
				continue
			}
			records, err := NormalizeAPIPayload(raw)
			if err != nil {
				logger.Warn(ctx, "Skipping malformed API capture", "file", name, "error", err)
				continue
			}
			sess.Merge(records, types.ProvenanceAPI)
			logger.Debug(ctx, "API capture merged", "file", name, "records", len(records))
			total += len(records)
		}
	}
	return total, nil
}

func parseHTMLFile(path string) ([]types.RawTradeRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, err
	}
	return ParseOrderTable(doc.Selection)
}
