package collector

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"

	"alpha-trade-tracker/internal/config"
	"alpha-trade-tracker/internal/logger"
	"alpha-trade-tracker/internal/store"
	"alpha-trade-tracker/internal/types"
)

// nextPageSelectors are tried in document order to find the pagination
// link; the venue has shipped several pager variants.
var nextPageSelectors = []string{
	`a[aria-label*="下一页"]`,
	`li[title*="下一页"] a`,
	`a[aria-label*="Next"]`,
	`li.ant-pagination-next a`,
	`a[rel="next"]`,
}

// Collector walks the venue's paginated order-history pages and merges
// each page's table rows into a session. Each page is merged exactly once:
// colly's visited-URL tracking guarantees that, which matters because DOM
// records are not deduplicated downstream.
type Collector struct {
	cfg *config.Config
}

func New(cfg *config.Config) *Collector {
	return &Collector{cfg: cfg}
}

// Collect runs one collection pass starting at the configured history URL
// and following next-page links up to scrape.max_pages.
func (c *Collector) Collect(ctx context.Context, sess *store.Session) error {
	scrape := c.cfg.Scrape
	startURL := scrape.BaseURL + scrape.HistoryPath
	u, err := url.Parse(startURL)
	if err != nil {
		return fmt.Errorf("invalid history URL %s: %w", startURL, err)
	}

	col := colly.NewCollector(
		colly.AllowedDomains(u.Hostname()),
		colly.Async(false),
	)
	col.SetRequestTimeout(time.Duration(scrape.TimeoutSeconds) * time.Second)
	_ = col.Limit(&colly.LimitRule{
		DomainGlob: "*",
		Delay:      time.Duration(scrape.RateLimitMS) * time.Millisecond,
	})

	col.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", scrape.UserAgent)
	})

	pages := 0
	col.OnHTML("table", func(e *colly.HTMLElement) {
		records, err := ParseOrderTable(e.DOM)
		if err != nil {
			logger.Debug(ctx, "Skipping non-order table", "url", e.Request.URL.String())
			return
		}
		pages++
		sess.Merge(records, types.ProvenanceDOM)
		logger.Page(ctx, pages, len(records), "url", e.Request.URL.String())
	})

	col.OnHTML(strings.Join(nextPageSelectors, ", "), func(e *colly.HTMLElement) {
		if pages >= scrape.MaxPages {
			return
		}
		if e.Attr("aria-disabled") == "true" {
			return
		}
		href := e.Attr("href")
		if href == "" {
			return
		}
		_ = e.Request.Visit(href)
	})

	col.OnError(func(r *colly.Response, err error) {
		logger.ErrorWithErr(ctx, "Page fetch failed", err, "url", r.Request.URL.String())
	})

	if err := col.Visit(startURL); err != nil {
		return fmt.Errorf("failed to visit %s: %w", startURL, err)
	}
	col.Wait()

	logger.Info(ctx, "Collection finished", "pages", pages, "records", sess.Len())
	return nil
}
