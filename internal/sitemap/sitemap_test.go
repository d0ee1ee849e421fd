//go:build unit

package sitemap_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/pkg/errs"
	"storefront/internal/sitemap"
	"storefront/internal/usecase/queries"
	"storefront/internal/usecase/shared"
)

type stubProductSource struct {
	page *shared.ProductPage
	err  error
}

func (s *stubProductSource) ListProducts(context.Context, queries.CatalogListParams) (*shared.ProductPage, error) {
	return s.page, s.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestGenerate(t *testing.T) {
	t.Run("emits static routes plus one entry per distinct product", func(t *testing.T) {
		source := &stubProductSource{page: &shared.ProductPage{Products: []shared.Product{
			{ID: "p1"},
			{ID: "p2"},
			{ID: "p1"}, // duplicate
			{ID: ""},   // no id
		}}}

		out := string(sitemap.Generate(context.Background(), source, "https://shop.example.com/", now, testLogger()))

		assert.Contains(t, out, "<loc>https://shop.example.com/</loc>")
		assert.Contains(t, out, "<loc>https://shop.example.com/products</loc>")
		assert.Contains(t, out, "<loc>https://shop.example.com/product/p1</loc>")
		assert.Contains(t, out, "<loc>https://shop.example.com/product/p2</loc>")
		assert.Equal(t, 4, strings.Count(out, "<loc>"))
		assert.Contains(t, out, "<lastmod>2025-06-01T12:00:00Z</lastmod>")
		assert.True(t, strings.HasPrefix(out, "<?xml"))
	})

	t.Run("a fetch failure degrades to the static routes", func(t *testing.T) {
		source := &stubProductSource{err: errs.ErrAPIFailure}

		out := string(sitemap.Generate(context.Background(), source, "https://shop.example.com", now, testLogger()))

		assert.Equal(t, 2, strings.Count(out, "<loc>"))
		assert.Contains(t, out, "<loc>https://shop.example.com/products</loc>")
	})

	t.Run("product ids are path-escaped", func(t *testing.T) {
		source := &stubProductSource{page: &shared.ProductPage{Products: []shared.Product{
			{ID: "id with space"},
		}}}

		out := string(sitemap.Generate(context.Background(), source, "https://shop.example.com", now, testLogger()))

		assert.Contains(t, out, "/product/id%20with%20space")
	})
}

func TestGenerateStatic(t *testing.T) {
	out := string(sitemap.GenerateStatic("https://shop.example.com", now))

	require.Contains(t, out, `xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"`)
	assert.Equal(t, 2, strings.Count(out, "<loc>"))
}
