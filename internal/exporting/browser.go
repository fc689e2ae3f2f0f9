// Package exporting - browser.go provides headless browser rasterization of rendered surfaces.
package exporting

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

// DefaultCaptureTimeout bounds a single rasterization run.
const DefaultCaptureTimeout = 30 * time.Second

// Rasterizer captures a rendered document as a PNG image at a given scale.
// The chromedp implementation is the production path; tests substitute fakes.
type Rasterizer interface {
	Capture(ctx context.Context, html string, width, height int, scale float64) ([]byte, error)
}

// ChromeRasterizer renders HTML in a headless browser and screenshots the
// full page. Requires Chrome/Chromium to be installed on the system.
type ChromeRasterizer struct {
	Timeout time.Duration
}

// NewChromeRasterizer creates a rasterizer with the default capture timeout.
func NewChromeRasterizer() *ChromeRasterizer {
	return &ChromeRasterizer{Timeout: DefaultCaptureTimeout}
}

// Capture loads the HTML into a fresh browser context sized to the document
// geometry and returns a PNG screenshot scaled by the given factor.
func (c *ChromeRasterizer) Capture(ctx context.Context, html string, width, height int, scale float64) ([]byte, error) {
	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultCaptureTimeout
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	// The surface is self-contained HTML, so a data URI avoids any need for
	// a file or network round trip.
	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(html))

	var png []byte
	err := chromedp.Run(browserCtx,
		chromedp.EmulateViewport(int64(width), int64(height), chromedp.EmulateScale(scale)),
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body"),
		chromedp.FullScreenshot(&png, 100),
	)
	if err != nil {
		return nil, fmt.Errorf("browser rasterization failed: %w", err)
	}

	return png, nil
}
