// Package report genera el informe PDF profesional a partir de un
// resultado de análisis y los encabezados del proyecto. El render usa
// Chrome headless (chromedp) imprimiendo el HTML del informe a PDF.
package report

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Renderer imprime HTML a PDF con una instancia de Chrome headless.
type Renderer struct {
	timeout time.Duration
}

// NewRenderer crea un renderer con el timeout por defecto de 30s.
func NewRenderer() *Renderer {
	return &Renderer{timeout: 30 * time.Second}
}

// RenderPDF imprime el HTML dado y devuelve los bytes del PDF.
// Cada render usa un contexto de Chrome propio; el allocator headless se
// configura igual que en producción (sin GPU ni sandbox).
func (r *Renderer) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	tabCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, r.timeout)
	defer cancelTimeout()

	var pdf []byte
	err := chromedp.Run(tabCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
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
		log.Printf("❌ [REPORT] Error renderizando PDF: %v", err)
		return nil, fmt.Errorf("error renderizando PDF: %w", err)
	}

	log.Printf("📄 [REPORT] PDF generado: %d bytes", len(pdf))
	return pdf, nil
}
