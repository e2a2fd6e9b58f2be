package render

import (
	"context"
	"fmt"

	"github.com/chromedp/chromedp"
)

// ImageRenderer produces a single tall PNG of the whole summary.
type ImageRenderer struct {
	opts Options
}

func NewImageRenderer(opts Options) *ImageRenderer {
	return &ImageRenderer{opts: opts}
}

func (r *ImageRenderer) Render(ctx context.Context, markdown string) (*Artifact, error) {
	doc, err := document(markdown, imageCSS(r.opts.WidthPx))
	if err != nil {
		return nil, err
	}

	browserCtx, cancel := newBrowserContext(ctx)
	defer cancel()

	var shot []byte
	err = chromedp.Run(browserCtx,
		chromedp.EmulateViewport(int64(r.opts.WidthPx), 900, chromedp.EmulateScale(r.opts.Scale)),
		chromedp.Navigate("about:blank"),
		setDocument(doc),
		waitForImages(),
		chromedp.Sleep(settleDelay),
		// quality 100 selects lossless PNG encoding
		chromedp.FullScreenshot(&shot, 100),
	)
	if err != nil {
		return nil, fmt.Errorf("rendering png: %w", err)
	}

	return &Artifact{
		Data:     shot,
		Filename: ImageFilename,
		MIMEType: "image/png",
	}, nil
}
