package render

import (
	"context"
	"fmt"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// PDFRenderer produces an A2 portrait poster PDF of the summary.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) Render(ctx context.Context, markdown string) (*Artifact, error) {
	doc, err := document(markdown, posterCSS)
	if err != nil {
		return nil, err
	}

	browserCtx, cancel := newBrowserContext(ctx)
	defer cancel()

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		setDocument(doc),
		waitForImages(),
		chromedp.Sleep(settleDelay),
		chromedp.ActionFunc(func(ctx context.Context) error {
			// @page in the stylesheet supplies the A2 size and margins
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("rendering pdf: %w", err)
	}

	return &Artifact{
		Data:     pdf,
		Filename: PDFFilename,
		MIMEType: "application/pdf",
	}, nil
}
