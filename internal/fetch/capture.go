// Package fetch acquires the raw itinerary document by driving a real
// browser session. It is the only networked part of the repository; the
// converter consumes the captured file and never goes online itself.
package fetch

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"

	appLog "tripcal/internal/log"
)

// DefaultTimeout bounds one capture including the interactive sign-in.
const DefaultTimeout = 5 * time.Minute

// Options defines parameters for one itinerary capture.
type Options struct {
	// PlansURL is the trip-plans page to open.
	PlansURL string

	// APIMatch is the substring identifying the itinerary API response
	// whose body will be captured.
	APIMatch string

	// OutputPath is where the captured JSON body is written.
	OutputPath string

	// Headless hides the browser window. Sign-in is interactive, so this
	// only works with a pre-authenticated profile.
	Headless bool

	// Timeout bounds the entire capture. If zero, DefaultTimeout is used.
	Timeout time.Duration
}

// CaptureItinerary opens the plans page, lets the user complete the
// sign-in in the browser window, and writes the body of the first network
// response whose URL matches opts.APIMatch to opts.OutputPath.
//
// The page issues the itinerary API call on its own once the session is
// authenticated; no credentials are read, stored, or filled by this code.
func CaptureItinerary(parentCtx context.Context, opts Options) error {
	if opts.PlansURL == "" {
		return fmt.Errorf("fetch: PlansURL is required")
	}
	if opts.APIMatch == "" {
		return fmt.Errorf("fetch: APIMatch is required")
	}
	if opts.OutputPath == "" {
		return fmt.Errorf("fetch: OutputPath is required")
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	allocOpts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	if !opts.Headless {
		allocOpts = append(allocOpts, chromedp.Flag("headless", false))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(parentCtx, allocOpts...)
	defer allocCancel()

	ctx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	ctx, timeoutCancel := context.WithTimeout(ctx, opts.Timeout)
	defer timeoutCancel()

	bodyCh := make(chan []byte, 1)

	var mu sync.Mutex
	pending := make(map[network.RequestID]bool)

	chromedp.ListenTarget(ctx, func(ev any) {
		switch e := ev.(type) {
		case *network.EventResponseReceived:
			if strings.Contains(e.Response.URL, opts.APIMatch) {
				mu.Lock()
				pending[e.RequestID] = true
				mu.Unlock()
			}
		case *network.EventLoadingFinished:
			mu.Lock()
			matched := pending[e.RequestID]
			delete(pending, e.RequestID)
			mu.Unlock()
			if !matched {
				return
			}
			// Body retrieval issues CDP commands, so it must not run
			// on the event goroutine.
			go func(id network.RequestID) {
				c := chromedp.FromContext(ctx)
				body, err := network.GetResponseBody(id).Do(cdp.WithExecutor(ctx, c.Target))
				if err != nil {
					// The page may retry the call; keep waiting.
					appLog.Error("fetch: reading itinerary response body failed", err)
					return
				}
				select {
				case bodyCh <- body:
				default:
				}
			}(e.RequestID)
		}
	})

	if err := chromedp.Run(ctx,
		network.Enable(),
		chromedp.Navigate(opts.PlansURL),
	); err != nil {
		return fmt.Errorf("fetch: open plans page: %w", err)
	}

	appLog.Info("waiting for sign-in and itinerary response",
		"plans_url", opts.PlansURL, "api_match", opts.APIMatch)

	select {
	case body := <-bodyCh:
		if err := os.WriteFile(opts.OutputPath, body, 0o600); err != nil {
			return fmt.Errorf("fetch: write %s: %w", opts.OutputPath, err)
		}
		appLog.Info("itinerary captured", "path", opts.OutputPath, "bytes", len(body))
		return nil
	case <-ctx.Done():
		return fmt.Errorf("fetch: no itinerary response captured: %w", ctx.Err())
	}
}
