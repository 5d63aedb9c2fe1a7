// Package sitemap lists the public routes of the site for discovery.
package sitemap

import (
	"encoding/xml"
	"io"
	"strings"
	"time"

	"github.com/ncecere/judgment-tools/internal/catalog"
)

// StaticRoutes are the content pages, in listing order.
var StaticRoutes = []string{"", "/tools", "/about", "/contact"}

const xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Entry is one sitemap URL.
type Entry struct {
	URL          string
	LastModified time.Time
}

// Routes returns the static routes followed by one route per registered
// tool.
func Routes(reg *catalog.Registry) []string {
	routes := make([]string, 0, len(StaticRoutes)+reg.Len())
	routes = append(routes, StaticRoutes...)
	for _, tool := range reg.All() {
		routes = append(routes, tool.Path())
	}
	return routes
}

// Build prefixes every route with baseURL.
func Build(baseURL string, reg *catalog.Registry, now time.Time) []Entry {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	routes := Routes(reg)
	entries := make([]Entry, 0, len(routes))
	for _, route := range routes {
		entries = append(entries, Entry{URL: base + route, LastModified: now.UTC()})
	}
	return entries
}

type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []urlXML `xml:"url"`
}

type urlXML struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod"`
}

// Encode writes entries as a sitemap urlset document.
func Encode(w io.Writer, entries []Entry) error {
	set := urlSet{Xmlns: xmlns, URLs: make([]urlXML, 0, len(entries))}
	for _, e := range entries {
		set.URLs = append(set.URLs, urlXML{Loc: e.URL, LastMod: e.LastModified.Format(time.RFC3339)})
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return err
	}
	return enc.Flush()
}
