// Package sitemap emits the build-time sitemap.xml: the two static routes
// plus one entry per distinct product id. Fetch failures degrade to the
// static routes instead of failing the build.
package sitemap

import (
	"context"
	"encoding/xml"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"storefront/internal/usecase/queries"
	"storefront/internal/usecase/shared"
)

const fetchLimit = 10000

type ProductSource interface {
	ListProducts(ctx context.Context, params queries.CatalogListParams) (*shared.ProductPage, error)
}

type urlEntry struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod"`
}

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	Xmlns   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

// Generate never fails: when the catalog cannot be fetched it emits the two
// static routes and logs the reason.
func Generate(ctx context.Context, source ProductSource, origin string, now time.Time, logger *slog.Logger) []byte {
	routes := []string{"/", "/products"}

	page, err := source.ListProducts(ctx, queries.CatalogListParams{Page: 1, Limit: fetchLimit})
	if err != nil {
		logger.Warn("sitemap product fetch failed, emitting static routes only", "error", err)
	} else {
		seen := make(map[string]struct{}, len(page.Products))
		for _, p := range page.Products {
			if p.ID == "" {
				continue
			}
			if _, ok := seen[p.ID]; ok {
				continue
			}
			seen[p.ID] = struct{}{}
			routes = append(routes, "/product/"+url.PathEscape(p.ID))
		}
	}

	return render(origin, routes, now)
}

// GenerateStatic is the degraded output when no catalog source is available
// at all.
func GenerateStatic(origin string, now time.Time) []byte {
	return render(origin, []string{"/", "/products"}, now)
}

func render(origin string, routes []string, now time.Time) []byte {
	origin = strings.TrimSuffix(origin, "/")
	lastMod := now.UTC().Format(time.RFC3339)

	set := urlSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, route := range routes {
		set.URLs = append(set.URLs, urlEntry{
			Loc:     origin + route,
			LastMod: lastMod,
		})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		// Marshalling fixed structs cannot fail; keep the build alive anyway.
		return []byte(xml.Header)
	}
	return append([]byte(xml.Header), append(out, '\n')...)
}
