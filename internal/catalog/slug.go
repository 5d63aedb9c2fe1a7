package catalog

import "strings"

var slugAliases = map[string]string{
	"tie-breaker":    "constraint-tie-breaker",
	"validity-check": "constraint-validity-check",
}

// NormalizeSlug canonicalizes tool identifiers so routes, navigation, and
// the API share the same names.
func NormalizeSlug(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Trim(slug, "/")
	slug = strings.ReplaceAll(slug, "_", "-")
	if slug == "" {
		return ""
	}
	if canonical, ok := slugAliases[slug]; ok {
		return canonical
	}
	return slug
}
