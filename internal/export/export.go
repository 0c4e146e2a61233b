// Package export writes the site as static files for hosts without a Go
// runtime. Paths mirror the server routes: /terms is terms/index.html.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"kozytweaks/internal/domain/content"
	"kozytweaks/internal/ui"

	g "maragu.dev/gomponents"
)

type document struct {
	path string
	node g.Node
}

// Export renders every document into dir and returns the written paths in
// order.
func Export(dir string, ct *content.Content, now time.Time) ([]string, error) {
	docs := []document{{path: "index.html", node: ui.Landing(ct, now)}}
	for _, slug := range content.RequiredLegal {
		lp, ok := ct.FindLegal(slug)
		if !ok {
			return nil, fmt.Errorf("legal page %q not found", slug)
		}
		docs = append(docs, document{path: filepath.Join(lp.Slug, "index.html"), node: ui.LegalPage(ct, lp, now)})
	}
	docs = append(docs, document{path: "404.html", node: ui.NotFound(ct, now)})

	written := make([]string, 0, len(docs))
	for _, d := range docs {
		path := filepath.Join(dir, d.path)
		if err := writeDocument(path, d.node); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

func writeDocument(path string, node g.Node) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := node.Render(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("render %s: %w", path, err)
	}
	return f.Close()
}
