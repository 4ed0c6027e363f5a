package results

import (
	"database/sql"
	"errors"
	"fmt"

	gocache "github.com/patrickmn/go-cache"

	"artify-backend/internal/models"
)

// PrimaryStore is the durable home of result and source image blobs.
type PrimaryStore interface {
	SaveResultImage(img *models.ResultImage) error
	GetResultImage(orderID string, position int) (*models.ResultImage, error)
}

// Persister writes each finished portrait to the primary store and mirrors
// it into an in-memory cache. The primary store is authoritative: reads
// resolve against it first, and the cache only answers when the primary is
// unavailable. A cache write can never fail an order.
type Persister struct {
	primary PrimaryStore
	cache   *gocache.Cache
	baseURL string
}

func NewPersister(primary PrimaryStore, cache *gocache.Cache, baseURL string) *Persister {
	return &Persister{
		primary: primary,
		cache:   cache,
		baseURL: baseURL,
	}
}

func cacheKey(orderID string, position int) string {
	return fmt.Sprintf("%s/%d", orderID, position)
}

// Save stores the image and returns its public URL. An error here means the
// durable write failed; the caller must treat the image as not produced.
func (p *Persister) Save(img *models.ResultImage) (string, error) {
	if err := p.primary.SaveResultImage(img); err != nil {
		return "", fmt.Errorf("failed to persist result image %s/%d: %w", img.OrderID, img.Position, err)
	}

	if p.cache != nil {
		p.cache.SetDefault(cacheKey(img.OrderID, img.Position), img)
	}

	return p.URLFor(img.OrderID, img.Position), nil
}

// Get serves a result image. The primary store is consulted first; a blob
// the reaper has deleted there is gone even while a cached copy lingers.
// The cache answers only when the primary store itself is unavailable.
func (p *Persister) Get(orderID string, position int) (*models.ResultImage, error) {
	img, err := p.primary.GetResultImage(orderID, position)
	if err == nil {
		if p.cache != nil {
			p.cache.SetDefault(cacheKey(orderID, position), img)
		}
		return img, nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		// Absent from the durable store means absent, full stop.
		if p.cache != nil {
			p.cache.Delete(cacheKey(orderID, position))
		}
		return nil, err
	}

	if p.cache != nil {
		if cached, found := p.cache.Get(cacheKey(orderID, position)); found {
			if cachedImg, ok := cached.(*models.ResultImage); ok {
				return cachedImg, nil
			}
		}
	}
	return nil, err
}

// URLFor is the public download URL for a stored result.
func (p *Persister) URLFor(orderID string, position int) string {
	return fmt.Sprintf("%s/api/orders/%s/results/%d", p.baseURL, orderID, position)
}
