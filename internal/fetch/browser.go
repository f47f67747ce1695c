package fetch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/anthonysuherli/featherweight/internal/logger"
)

// Browser fetches pages through headless Chrome. Some sources fingerprint
// and block plain HTTP clients; rendering the page in a real browser gets
// past that at the cost of a much heavier dependency, so it is opt-in via
// the fetch-strategy configuration.
type Browser struct {
	allocCtx context.Context
	cancel   context.CancelFunc
	interval time.Duration

	mu          sync.Mutex
	lastRequest time.Time
}

// NewBrowser starts a headless Chrome allocator. interval is the minimum
// spacing between navigations. Close must be called to release the
// browser.
func NewBrowser(interval time.Duration) (*Browser, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(UserAgent),
	)

	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)

	return &Browser{
		allocCtx: allocCtx,
		cancel:   cancel,
		interval: interval,
	}, nil
}

// Close releases the browser allocator.
func (b *Browser) Close() {
	if b.cancel != nil {
		b.cancel()
	}
}

// Fetch navigates to url and returns the rendered document HTML.
func (b *Browser) Fetch(ctx context.Context, url string) ([]byte, error) {
	b.mu.Lock()
	if !b.lastRequest.IsZero() {
		if elapsed := time.Since(b.lastRequest); elapsed < b.interval {
			wait := b.interval - elapsed
			logger.Get().WithField("wait", wait.String()).Debug("browser rate limit")
			time.Sleep(wait)
		}
	}
	b.lastRequest = time.Now()
	b.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	browserCtx, cancelBrowser := chromedp.NewContext(b.allocCtx)
	defer cancelBrowser()

	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, RequestTimeout)
	defer cancelTimeout()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitVisible(`body`, chromedp.ByQuery),
		chromedp.Sleep(1*time.Second), // allow JS to render
		chromedp.OuterHTML(`html`, &html, chromedp.ByQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("chromedp error: %w", err)
	}
	if html == "" {
		return nil, fmt.Errorf("empty HTML content returned")
	}

	return []byte(html), nil
}
