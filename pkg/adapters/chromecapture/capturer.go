// Package chromecapture captures web pages with a headless Chrome through
// chromedp.
package chromecapture

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/chromedp"

	"github.com/user/shotframe/pkg/ports"
)

var goos = runtime.GOOS

// Capturer implements ports.ScreenCapturer. Each capture launches and
// closes its own browser.
type Capturer struct {
	logger ports.Logger
}

// New creates a Capturer.
func New(logger ports.Logger) *Capturer {
	return &Capturer{logger: logger}
}

// allocatorOptions builds the Chrome flags for a capture.
func allocatorOptions(opts ports.CaptureOptions, chromePath string) []chromedp.ExecAllocatorOption {
	o := []chromedp.ExecAllocatorOption{
		chromedp.NoFirstRun,
		chromedp.NoDefaultBrowserCheck,
		chromedp.ExecPath(chromePath),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-sync", true),
		chromedp.Flag("mute-audio", true),
		chromedp.Flag("hide-scrollbars", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.WindowSize(opts.ViewportWidth, opts.ViewportHeight),
	}
	if opts.Headless {
		o = append(o, chromedp.Flag("headless", "new"))
	}
	if opts.IgnoreHTTPSErrors {
		o = append(o,
			chromedp.Flag("ignore-certificate-errors", true),
			chromedp.Flag("allow-insecure-localhost", true))
	}
	if opts.ProxyServer != "" {
		o = append(o, chromedp.Flag("proxy-server", opts.ProxyServer))
	}
	return o
}

func withDefaults(opts ports.CaptureOptions) ports.CaptureOptions {
	if opts.ViewportWidth <= 0 {
		opts.ViewportWidth = 1280
	}
	if opts.ViewportHeight <= 0 {
		opts.ViewportHeight = 800
	}
	if opts.DeviceScaleFactor <= 0 {
		opts.DeviceScaleFactor = 1
	}
	return opts
}

// Capture navigates to opts.URL and returns a PNG screenshot.
func (c *Capturer) Capture(ctx context.Context, opts ports.CaptureOptions) ([]byte, error) {
	if opts.URL == "" {
		return nil, fmt.Errorf("capture: empty url")
	}
	opts = withDefaults(opts)

	chromePath := ResolveChromePath(opts.ChromePath)
	if chromePath == "" {
		return nil, fmt.Errorf("chrome not found: install Chrome/Chromium, set CHROME_PATH, or use --chrome-path")
	}

	if opts.Headless {
		c.logger.Debug("Launching browser in headless mode")
	} else {
		c.logger.Debug("Launching browser in visible mode")
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, allocatorOptions(opts, chromePath)...)
	defer allocCancel()
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	c.logger.Info("Navigating to %s", opts.URL)
	tasks := chromedp.Tasks{
		emulation.SetDeviceMetricsOverride(int64(opts.ViewportWidth), int64(opts.ViewportHeight), opts.DeviceScaleFactor, false),
		chromedp.Navigate(opts.URL),
	}
	if opts.DelayMs > 0 {
		tasks = append(tasks, chromedp.Sleep(time.Duration(opts.DelayMs)*time.Millisecond))
	}

	var buf []byte
	if opts.FullPage {
		tasks = append(tasks, chromedp.FullScreenshot(&buf, 100))
	} else {
		tasks = append(tasks, chromedp.CaptureScreenshot(&buf))
	}
	if err := chromedp.Run(browserCtx, tasks); err != nil {
		return nil, fmt.Errorf("capture %s: %w", opts.URL, err)
	}
	c.logger.Debug("Captured %s (%d bytes)", opts.URL, len(buf))
	return buf, nil
}

var _ ports.ScreenCapturer = (*Capturer)(nil)
