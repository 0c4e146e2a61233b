package content

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
)

// ErrInvalid wraps every validation failure returned by Validate.
var ErrInvalid = errors.New("invalid content")

// Legal page slugs the site always links to from the footer.
var RequiredLegal = []string{"terms", "privacy", "refund"}

// HeroActions is the number of call-to-action controls the hero renders.
const HeroActions = 2

// Validate checks the registry once at startup. After it succeeds every
// plan resolves to a checkout URL, so rendering never has to deal with a
// missing link. All problems are reported together.
func (c *Content) Validate() error {
	return invalid(c.problems())
}

func invalid(problems []error) error {
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(problems...))
}

func (c *Content) problems() []error {
	var problems []error
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Errorf(format, args...))
	}

	if c.Brand.Name == "" {
		add("brand name is empty")
	}

	for i, f := range c.Features {
		if !KnownIcon(f.Icon) {
			add("feature %d (%q): unknown icon %q", i, f.Title, f.Icon)
		}
	}

	if n := len(c.Hero.Actions); n != HeroActions {
		add("hero: want %d actions, got %d", HeroActions, n)
	}
	for i, a := range c.Hero.Actions {
		if a.Style != ActionPrimary && a.Style != ActionOutline {
			add("hero action %d (%q): unknown style %q", i, a.Label, a.Style)
		}
	}

	seen := make(map[string]bool, len(c.Plans))
	slugs := make(map[string]string, len(c.Plans))
	for i, p := range c.Plans {
		if p.Name == "" {
			add("plan %d: name is empty", i)
			continue
		}
		if seen[p.Name] {
			add("plan %q: duplicate name", p.Name)
			continue
		}
		seen[p.Name] = true

		// The slug is the card anchor and the /plans key.
		slug := Slug(p.Name)
		if slug == "" {
			add("plan %q: name has no URL-safe characters", p.Name)
		} else if other, ok := slugs[slug]; ok {
			add("plan %q: slug %q collides with plan %q", p.Name, slug, other)
		} else {
			slugs[slug] = p.Name
		}

		link, ok := c.CheckoutLinks[p.Name]
		if !ok {
			add("plan %q: no checkout link", p.Name)
			continue
		}
		if err := checkAbsoluteURL(link); err != nil {
			add("plan %q: checkout link: %v", p.Name, err)
		}
	}

	// Sorted so the report is stable across runs.
	names := make([]string, 0, len(c.CheckoutLinks))
	for name := range c.CheckoutLinks {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if !seen[name] {
			add("checkout link %q: no such plan", name)
		}
	}

	legalSeen := make(map[string]bool, len(c.Legal))
	for i, page := range c.Legal {
		if legalSeen[page.Slug] {
			add("legal page %d: duplicate slug %q", i, page.Slug)
		}
		legalSeen[page.Slug] = true
	}

	for _, slug := range RequiredLegal {
		page, ok := c.FindLegal(slug)
		if !ok {
			add("legal page %q is missing", slug)
			continue
		}
		if page.Title == "" {
			add("legal page %q: title is empty", slug)
		}
	}

	return problems
}

func checkAbsoluteURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%q is not an http(s) URL", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%q has no host", raw)
	}
	return nil
}
