package render

import (
	"context"
	"errors"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// imageLoadTimeout bounds how long a render waits for remote figures before
// screenshotting whatever has arrived.
const imageLoadTimeout = 8 * time.Second

// settleDelay lets layout finish after the last image decode.
const settleDelay = 200 * time.Millisecond

const imagesCompleteJS = `(() => {
  const imgs = Array.from(document.images || []);
  if (!imgs.length) return true;
  return imgs.every(i => i.complete && i.naturalWidth > 0);
})()`

// newBrowserContext launches an isolated headless Chromium for one render.
// Both returned cancel funcs must run on every exit path; together they tear
// the browser process down even when the render itself fails.
func newBrowserContext(ctx context.Context) (context.Context, context.CancelFunc) {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, chromedp.DefaultExecAllocatorOptions[:]...)
	tabCtx, cancelTab := chromedp.NewContext(allocCtx)
	cancel := func() {
		cancelTab()
		cancelAlloc()
	}
	return tabCtx, cancel
}

// setDocument replaces the blank page's content with the assembled HTML.
func setDocument(html string) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		frameTree, err := page.GetFrameTree().Do(ctx)
		if err != nil {
			return err
		}
		return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
	})
}

// waitForImages polls until every <img> has decoded, giving up after
// imageLoadTimeout. A slow figure degrades the output, it does not fail the
// render.
func waitForImages() chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		var done bool
		err := chromedp.Poll(imagesCompleteJS, &done, chromedp.WithPollingTimeout(imageLoadTimeout)).Do(ctx)
		if err != nil && errors.Is(err, chromedp.ErrPollingTimeout) {
			return nil
		}
		return err
	})
}
