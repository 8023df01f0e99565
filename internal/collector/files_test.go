package collector

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"alpha-trade-tracker/internal/store"
)

func TestCollectDirReplaysCaptures(t *testing.T) {
	dir := t.TempDir()

	page := `
<table>
<thead><tr><th>Time</th><th>Symbol</th><th>Side</th><th>Executed</th><th>Quote</th><th>Status</th></tr></thead>
<tbody>
<tr><td>2025-08-14 10:00:00</td><td>KOGE/USDT</td><td>BUY</td><td>10 KOGE</td><td>100 USDT</td><td>FILLED</td></tr>
</tbody>
</table>`
	apiCapture := `{"list":[{"orderId":"9","updateTime":1755207637000,"symbol":"KOGE","side":"SELL","status":"FILLED","executedQty":"4","cummulativeQuoteQty":"44"}]}`

	if err := os.WriteFile(filepath.Join(dir, "page_001.html"), []byte(page), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "api_001.json"), []byte(apiCapture), 0o644); err != nil {
		t.Fatal(err)
	}
	// Unrelated files are ignored.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	sess := store.NewSession(time.UTC)
	n, err := CollectDir(context.Background(), dir, sess)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 records replayed, got %d", n)
	}
	if len(sess.DOM()) != 1 {
		t.Errorf("expected 1 DOM record, got %d", len(sess.DOM()))
	}
	if len(sess.API()) != 1 {
		t.Errorf("expected 1 API record, got %d", len(sess.API()))
	}
}

func TestCollectDirMissing(t *testing.T) {
	sess := store.NewSession(time.UTC)
	if _, err := CollectDir(context.Background(), "/nonexistent/capture/dir", sess); err == nil {
		t.Error("expected error for missing directory")
	}
}
