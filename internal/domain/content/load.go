package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"html"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Default returns the built-in KozyTweaks content.
func Default() (*Content, error) {
	c, err := Decode(bytes.NewReader(defaultYAML))
	if err != nil {
		return nil, fmt.Errorf("default content: %w", err)
	}
	return c, nil
}

// Load reads content from a YAML file. An empty path means the built-in
// content.
func Load(path string) (*Content, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open content file: %w", err)
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Decode parses a YAML document, strips markup from every text field and
// validates the result.
func Decode(r io.Reader) (*Content, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Content
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}

	problems := sanitize(&c, bluemonday.StrictPolicy())
	problems = append(problems, c.problems()...)
	if err := invalid(problems); err != nil {
		return nil, err
	}
	return &c, nil
}

// sanitize removes any HTML an editor may have typed into the content file.
// bluemonday returns entity-encoded text; the renderer escapes on output, so
// the entities are decoded again here. Checkout keys that collapse to the
// same plan name once cleaned are reported instead of silently merged.
func sanitize(c *Content, policy *bluemonday.Policy) []error {
	var problems []error
	clean := func(s *string) {
		*s = strings.TrimSpace(html.UnescapeString(policy.Sanitize(*s)))
	}

	clean(&c.Metadata.Title)
	clean(&c.Metadata.Description)
	clean(&c.Metadata.OpenGraph.Title)
	clean(&c.Metadata.OpenGraph.Description)

	clean(&c.Brand.Name)
	clean(&c.Brand.Tagline)
	clean(&c.Brand.SupportEmail)

	clean(&c.Hero.Title)
	clean(&c.Hero.Subtitle)
	for i := range c.Hero.Actions {
		clean(&c.Hero.Actions[i].Label)
		clean(&c.Hero.Actions[i].Style)
	}

	for i := range c.Features {
		f := &c.Features[i]
		clean(&f.Icon)
		clean(&f.Title)
		clean(&f.Description)
	}

	for i := range c.Plans {
		p := &c.Plans[i]
		clean(&p.Name)
		clean(&p.Price)
		for j := range p.Perks {
			clean(&p.Perks[j])
		}
	}

	for i := range c.Testimonials {
		clean(&c.Testimonials[i].Author)
		clean(&c.Testimonials[i].Quote)
	}

	if len(c.CheckoutLinks) > 0 {
		raw := make([]string, 0, len(c.CheckoutLinks))
		for key := range c.CheckoutLinks {
			raw = append(raw, key)
		}
		sort.Strings(raw)

		links := make(map[string]string, len(c.CheckoutLinks))
		origin := make(map[string]string, len(c.CheckoutLinks))
		for _, key := range raw {
			name, link := key, c.CheckoutLinks[key]
			clean(&name)
			clean(&link)
			if first, ok := origin[name]; ok {
				problems = append(problems, fmt.Errorf("checkout link %q: key %q also cleans to %q", first, key, name))
				continue
			}
			origin[name] = key
			links[name] = link
		}
		c.CheckoutLinks = links
	}

	for i := range c.Legal {
		page := &c.Legal[i]
		clean(&page.Slug)
		clean(&page.Title)
		for j := range page.Clauses {
			clean(&page.Clauses[j].Heading)
			clean(&page.Clauses[j].Body)
		}
	}

	return problems
}
