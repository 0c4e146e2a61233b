package content

type Metadata struct {
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	OpenGraph   OpenGraph `yaml:"open_graph"`
}

type OpenGraph struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Brand struct {
	Name         string `yaml:"name"`
	Tagline      string `yaml:"tagline"`
	SupportEmail string `yaml:"support_email"`
}

// Action styles for hero call-to-action controls.
const (
	ActionPrimary = "primary"
	ActionOutline = "outline"
)

type Action struct {
	Label string `yaml:"label"`
	Style string `yaml:"style"` // "primary" | "outline"
}

type Hero struct {
	Title    string   `yaml:"title"`
	Subtitle string   `yaml:"subtitle"`
	Actions  []Action `yaml:"actions"`
}

type Feature struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Plan struct {
	Name     string   `yaml:"name"`
	Price    string   `yaml:"price"`
	Featured bool     `yaml:"featured"`
	Perks    []string `yaml:"perks"`
}

type Testimonial struct {
	Author string `yaml:"author"`
	Quote  string `yaml:"quote"`
}

type Clause struct {
	Heading string `yaml:"heading"`
	Body    string `yaml:"body"`
}

type LegalPage struct {
	Slug    string   `yaml:"slug"`
	Title   string   `yaml:"title"`
	Clauses []Clause `yaml:"clauses"`
}

// Path is the site path the page is served under, e.g. "/terms".
func (p LegalPage) Path() string {
	return "/" + p.Slug
}

// Content is the whole site registry. It is built once by Decode/Load and
// only read afterwards.
type Content struct {
	Metadata         Metadata          `yaml:"metadata"`
	Brand            Brand             `yaml:"brand"`
	Hero             Hero              `yaml:"hero"`
	Features         []Feature         `yaml:"features"`
	Plans            []Plan            `yaml:"plans"`
	Testimonials     []Testimonial     `yaml:"testimonials"`
	ShowTestimonials bool              `yaml:"show_testimonials"`
	CheckoutLinks    map[string]string `yaml:"checkout_links"`
	Legal            []LegalPage       `yaml:"legal"`
}

// CheckoutURL returns the checkout link for a plan. Validate guarantees an
// entry for every plan in c.Plans.
func (c *Content) CheckoutURL(p Plan) string {
	return c.CheckoutLinks[p.Name]
}

// Plan finds a plan by name.
func (c *Content) Plan(name string) (Plan, bool) {
	for _, p := range c.Plans {
		if p.Name == name {
			return p, true
		}
	}
	return Plan{}, false
}

// FindLegal finds a legal page by slug ("terms", "privacy", "refund").
func (c *Content) FindLegal(slug string) (LegalPage, bool) {
	for _, p := range c.Legal {
		if p.Slug == slug {
			return p, true
		}
	}
	return LegalPage{}, false
}
