package ui

import "kozytweaks/internal/domain/content"

const cardBase = "bg-black/70 border border-red-900 rounded-2xl"

var planCardStyles = map[content.Variant]string{
	content.VariantStandard: cardBase,
	content.VariantFeatured: cardBase + " ring-2 ring-red-600",
}

var actionStyles = map[string]string{
	content.ActionPrimary: "rounded-2xl bg-red-600 px-8 py-3 text-lg font-medium text-white",
	content.ActionOutline: "rounded-2xl border border-red-600 px-8 py-3 text-lg font-medium text-red-500",
}

func planCardClass(v content.Variant) string {
	if s, ok := planCardStyles[v]; ok {
		return s
	}
	return planCardStyles[content.VariantStandard]
}

func actionClass(style string) string {
	if s, ok := actionStyles[style]; ok {
		return s
	}
	return actionStyles[content.ActionPrimary]
}
