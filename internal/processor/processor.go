package processor

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/time/rate"

	"artify-backend/internal/models"
	"artify-backend/internal/provider"
	"artify-backend/internal/styles"
)

// OrderStore is the slice of the store the processor needs.
type OrderStore interface {
	GetOrder(orderID string) (*models.Order, error)
	ListOrdersInStatus(statuses ...string) ([]models.Order, error)
	MarkProcessing(orderID string) error
	AppendResultURL(orderID, resultURL string) error
	MarkCompleted(orderID string) error
	MarkFailed(orderID, errorMessage string) error
	TryAcquireOrderLock(ctx context.Context, orderID string) (release func(), acquired bool, err error)
	GetSourceImage(orderID string) (*models.SourceImage, error)
	DeleteResultImagesBefore(cutoff time.Time) (int64, error)
}

// Generator produces one portrait, retrying and falling back internally.
// An error from Generate is terminal for the image.
type Generator interface {
	Generate(ctx context.Context, req provider.Request) (*provider.Result, error)
}

// ResultSink persists a finished portrait and returns its public URL.
type ResultSink interface {
	Save(img *models.ResultImage) (string, error)
}

// Catalog resolves style references to prompts and customer-facing labels.
type Catalog interface {
	Lookup(styleID int, styleURL string) (*styles.Entry, bool)
	Prompt(entry *styles.Entry, mode string) string
	Labels(styleID, n int) [][2]string
}

// Notifier sends customer emails. Implementations must not return errors to
// the processing path; delivery problems are their own to log.
type Notifier interface {
	SendCompleted(orderID, email string, resultURLs []string, styleName string, labels [][2]string)
	SendFailed(orderID, email, reason string)
}

// Processor drives one order from paid to completed: generate each planned
// portrait in order, persist it, record progress, then finish the order.
// Progress is recorded per image, so a run can die anywhere and a later run
// resumes exactly where it stopped.
type Processor struct {
	store     OrderStore
	generator Generator
	sink      ResultSink
	catalog   Catalog
	notifier  Notifier
	inflight  *inflightSet

	baseURL           string
	interRequestDelay time.Duration
}

func NewProcessor(store OrderStore, generator Generator, sink ResultSink, catalog Catalog, notifier Notifier, baseURL string, interRequestDelay time.Duration) *Processor {
	return &Processor{
		store:             store,
		generator:         generator,
		sink:              sink,
		catalog:           catalog,
		notifier:          notifier,
		inflight:          newInflightSet(),
		baseURL:           baseURL,
		interRequestDelay: interRequestDelay,
	}
}

// Launch starts a processing run in the background unless one is already
// active for the order in this process.
func (p *Processor) Launch(ctx context.Context, orderID string) {
	if p.inflight.Contains(orderID) {
		return
	}
	go p.Run(ctx, orderID)
}

// Run processes an order to a terminal state or until it is interrupted.
// Safe to call for any order in any state; runs that lose the lock race or
// find nothing to do return quietly.
func (p *Processor) Run(ctx context.Context, orderID string) {
	if !p.inflight.TryBegin(orderID) {
		log.Printf("Order %s already has an active run in this process; skipping", orderID)
		return
	}
	defer p.inflight.End(orderID)

	defer func() {
		if r := recover(); r != nil {
			log.Printf("Panic while processing order %s: %v", orderID, r)
			if err := p.store.MarkFailed(orderID, "Internal error during processing"); err != nil {
				log.Printf("Failed to mark order %s failed after panic: %v", orderID, err)
			}
		}
	}()

	release, acquired, err := p.store.TryAcquireOrderLock(ctx, orderID)
	if err != nil {
		// Without the lock there is no cross-process exclusivity; the
		// supervisor retries on its next sweep.
		log.Printf("Could not acquire advisory lock for %s; skipping run: %v", orderID, err)
		return
	}
	if !acquired {
		log.Printf("Order %s is already being processed by another worker; skipping duplicate run", orderID)
		return
	}
	defer release()

	order, err := p.store.GetOrder(orderID)
	if err != nil {
		log.Printf("Order not found for processing: %s: %v", orderID, err)
		return
	}

	if order.Status != models.StatusPaid && order.Status != models.StatusProcessing {
		log.Printf("Order %s is %s; nothing to process", orderID, order.Status)
		return
	}

	if order.PlannedImageCount() == 0 {
		p.fail(order, "Style reference image missing")
		return
	}

	// A restart may have interrupted the run between the last image and the
	// completion update.
	if order.CompletedImageCount() >= order.PlannedImageCount() {
		p.complete(order)
		return
	}

	if err := p.store.MarkProcessing(orderID); err != nil {
		log.Printf("Failed to mark order %s processing: %v", orderID, err)
		return
	}

	skip := order.CompletedImageCount()
	if skip > 0 {
		log.Printf("Resuming order %s: skipping %d done, %d remaining",
			orderID, skip, order.PlannedImageCount()-skip)
	}

	sourceURL := p.sourceImageURL(order)
	mode := styles.NormalizeMode(order.PortraitMode)
	limiter := rate.NewLimiter(rate.Every(p.interRequestDelay), 1)

	for pos := skip; pos < order.PlannedImageCount(); pos++ {
		if err := limiter.Wait(ctx); err != nil {
			log.Printf("Order %s run interrupted before image %d: %v", orderID, pos+1, err)
			return
		}

		// Re-check status each iteration so an administrative cancel takes
		// effect at the next image boundary.
		current, err := p.store.GetOrder(orderID)
		if err != nil {
			log.Printf("Order %s vanished mid-run: %v", orderID, err)
			return
		}
		if current.Status != models.StatusProcessing {
			log.Printf("Order %s is now %s; stopping run", orderID, current.Status)
			return
		}

		styleURL := order.StyleImageURLs[pos]
		entry, found := p.catalog.Lookup(order.StyleID, styleURL)
		if !found {
			log.Printf("Order %s: style URL %s not in catalog, using generic prompt", orderID, styleURL)
		}

		result, err := p.generator.Generate(ctx, provider.Request{
			SourceImageURL: sourceURL,
			StyleImageURL:  styleURL,
			PromptText:     p.catalog.Prompt(entry, mode),
			Mode:           mode,
		})
		if err != nil {
			if ctx.Err() != nil {
				log.Printf("Order %s run interrupted at image %d: %v", orderID, pos+1, err)
				return
			}
			// The full backend error stays in the server log; customers see
			// only which image could not be produced.
			log.Printf("Order %s: image %d generation failed: %v", orderID, pos+1, err)
			p.fail(order, fmt.Sprintf("Image %d could not be generated", pos+1))
			return
		}

		resultURL, err := p.sink.Save(&models.ResultImage{
			OrderID:     orderID,
			Position:    pos + 1,
			ContentType: result.ContentType,
			Data:        result.Data,
		})
		if err != nil {
			log.Printf("Order %s: image %d could not be stored: %v", orderID, pos+1, err)
			p.fail(order, fmt.Sprintf("Image %d could not be stored", pos+1))
			return
		}

		if err := p.store.AppendResultURL(orderID, resultURL); err != nil {
			log.Printf("Order %s: image %d progress could not be recorded: %v", orderID, pos+1, err)
			p.fail(order, fmt.Sprintf("Image %d progress could not be recorded", pos+1))
			return
		}

		log.Printf("Order %s: image %d/%d done", orderID, pos+1, order.PlannedImageCount())
	}

	p.complete(order)
}

func (p *Processor) complete(order *models.Order) {
	if err := p.store.MarkCompleted(order.ID); err != nil {
		log.Printf("Failed to mark order %s completed: %v", order.ID, err)
		return
	}

	final, err := p.store.GetOrder(order.ID)
	if err != nil {
		log.Printf("Failed to reload order %s for notification: %v", order.ID, err)
		return
	}
	if final.Status != models.StatusCompleted {
		// A concurrent cancel beat the completion update.
		log.Printf("Order %s finished generation but is %s; skipping notification", order.ID, final.Status)
		return
	}

	log.Printf("Order %s completed with %d images", order.ID, final.CompletedImageCount())
	p.notifier.SendCompleted(final.ID, final.Email, final.ResultURLs,
		final.StyleName.String, p.catalog.Labels(final.StyleID, final.CompletedImageCount()))
}

func (p *Processor) fail(order *models.Order, reason string) {
	log.Printf("Order %s failed: %s", order.ID, reason)
	if err := p.store.MarkFailed(order.ID, reason); err != nil {
		log.Printf("Failed to mark order %s failed: %v", order.ID, err)
		return
	}

	final, err := p.store.GetOrder(order.ID)
	if err != nil {
		log.Printf("Failed to reload order %s after failure: %v", order.ID, err)
		return
	}
	if final.Status != models.StatusFailed {
		// A concurrent cancel or completion won the status race.
		log.Printf("Order %s is %s; skipping failure notification", order.ID, final.Status)
		return
	}
	p.notifier.SendFailed(final.ID, final.Email, reason)
}

// sourceImageURL prefers the copy persisted in the database, which survives
// redeploys that wipe the upload directory.
func (p *Processor) sourceImageURL(order *models.Order) string {
	if p.baseURL == "" {
		return order.SourceImageURL
	}
	if _, err := p.store.GetSourceImage(order.ID); err != nil {
		return order.SourceImageURL
	}
	return fmt.Sprintf("%s/api/orders/%s/source-image", p.baseURL, order.ID)
}
