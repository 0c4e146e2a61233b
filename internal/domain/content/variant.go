package content

type Variant string

// Variant constants (single source of truth for plan card styling)
const (
	VariantStandard Variant = "standard"
	VariantFeatured Variant = "featured"
)

// VariantOf returns the visual variant a plan card is rendered with.
func VariantOf(p Plan) Variant {
	if p.Featured {
		return VariantFeatured
	}
	return VariantStandard
}
