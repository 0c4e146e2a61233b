package plans

import (
	"net/http"

	"kozytweaks/internal/domain/content"

	"github.com/gin-gonic/gin"
)

type PlanDTO struct {
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Price       string   `json:"price"`
	Featured    bool     `json:"featured"`
	Variant     string   `json:"variant"`
	Perks       []string `json:"perks"`
	CheckoutURL string   `json:"checkout_url"`
}

type ListPlansResponse struct {
	Plans []PlanDTO `json:"plans"`
}

type Handler struct {
	content *content.Content
}

func NewHandler(ct *content.Content) *Handler {
	return &Handler{content: ct}
}

// GET /plans
func (h *Handler) ListPlans(c *gin.Context) {
	out := ListPlansResponse{Plans: make([]PlanDTO, 0, len(h.content.Plans))}
	for _, p := range h.content.Plans {
		perks := p.Perks
		if perks == nil {
			perks = []string{}
		}
		out.Plans = append(out.Plans, PlanDTO{
			Name:        p.Name,
			Slug:        content.Slug(p.Name),
			Price:       p.Price,
			Featured:    p.Featured,
			Variant:     string(content.VariantOf(p)),
			Perks:       perks,
			CheckoutURL: h.content.CheckoutURL(p),
		})
	}

	c.JSON(http.StatusOK, out)
}
