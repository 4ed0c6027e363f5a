package results_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artify-backend/internal/models"
	"artify-backend/internal/results"
)

type fakePrimary struct {
	images   map[string]*models.ResultImage
	saveErr  error
	getErr   error
	getCalls int
}

func newFakePrimary() *fakePrimary {
	return &fakePrimary{images: make(map[string]*models.ResultImage)}
}

func key(orderID string, position int) string {
	return fmt.Sprintf("%s/%d", orderID, position)
}

func (f *fakePrimary) SaveResultImage(img *models.ResultImage) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.images[key(img.OrderID, img.Position)] = img
	return nil
}

func (f *fakePrimary) GetResultImage(orderID string, position int) (*models.ResultImage, error) {
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	img, ok := f.images[key(orderID, position)]
	if !ok {
		return nil, fmt.Errorf("failed to get result image: %w", sql.ErrNoRows)
	}
	return img, nil
}

func TestPersister_SaveReturnsPublicURL(t *testing.T) {
	primary := newFakePrimary()
	persister := results.NewPersister(primary, gocache.New(time.Minute, time.Minute), "https://artify.example")

	url, err := persister.Save(&models.ResultImage{
		OrderID: "ART-1-ABCD1234", Position: 2, ContentType: "image/jpeg", Data: []byte("img"),
	})

	require.NoError(t, err)
	assert.Equal(t, "https://artify.example/api/orders/ART-1-ABCD1234/results/2", url)
	assert.Len(t, primary.images, 1)
}

func TestPersister_SaveFailsWhenPrimaryFails(t *testing.T) {
	primary := newFakePrimary()
	primary.saveErr = errors.New("db down")
	persister := results.NewPersister(primary, gocache.New(time.Minute, time.Minute), "https://artify.example")

	_, err := persister.Save(&models.ResultImage{OrderID: "ART-1-ABCD1234", Position: 1})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestPersister_GetReadsPrimaryFirst(t *testing.T) {
	primary := newFakePrimary()
	persister := results.NewPersister(primary, gocache.New(time.Minute, time.Minute), "https://artify.example")

	_, err := persister.Save(&models.ResultImage{
		OrderID: "ART-1-ABCD1234", Position: 1, ContentType: "image/jpeg", Data: []byte("img"),
	})
	require.NoError(t, err)

	// The save populated the cache, but every read still goes to the
	// authoritative store.
	img, err := persister.Get("ART-1-ABCD1234", 1)
	require.NoError(t, err)
	assert.Equal(t, []byte("img"), img.Data)
	assert.Equal(t, 1, primary.getCalls)

	_, err = persister.Get("ART-1-ABCD1234", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, primary.getCalls)
}

func TestPersister_ReapedResultIsGone(t *testing.T) {
	primary := newFakePrimary()
	persister := results.NewPersister(primary, gocache.New(time.Minute, time.Minute), "https://artify.example")

	_, err := persister.Save(&models.ResultImage{
		OrderID: "ART-1-ABCD1234", Position: 1, ContentType: "image/jpeg", Data: []byte("img"),
	})
	require.NoError(t, err)

	// The reaper removes the blob from the durable store. A lingering cache
	// entry must not resurrect it.
	delete(primary.images, key("ART-1-ABCD1234", 1))

	_, err = persister.Get("ART-1-ABCD1234", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.Equal(t, 1, primary.getCalls)
}

func TestPersister_CacheServesWhenPrimaryUnavailable(t *testing.T) {
	primary := newFakePrimary()
	persister := results.NewPersister(primary, gocache.New(time.Minute, time.Minute), "https://artify.example")

	_, err := persister.Save(&models.ResultImage{
		OrderID: "ART-1-ABCD1234", Position: 1, ContentType: "image/webp", Data: []byte("img"),
	})
	require.NoError(t, err)

	primary.getErr = errors.New("db down")

	img, err := persister.Get("ART-1-ABCD1234", 1)
	require.NoError(t, err)
	assert.Equal(t, "image/webp", img.ContentType)
	assert.Equal(t, 1, primary.getCalls)
}

func TestPersister_WorksWithoutCache(t *testing.T) {
	primary := newFakePrimary()
	persister := results.NewPersister(primary, nil, "https://artify.example")

	_, err := persister.Save(&models.ResultImage{
		OrderID: "ART-1-ABCD1234", Position: 1, ContentType: "image/jpeg", Data: []byte("img"),
	})
	require.NoError(t, err)

	img, err := persister.Get("ART-1-ABCD1234", 1)
	require.NoError(t, err)
	assert.Equal(t, []byte("img"), img.Data)
}
