package utils

import (
	"regexp"
	"strings"
)

var legalSuffixes = []string{
	"s.a. de c.v.", "s. de r.l.", "s.a.s", "s.a.", "s.l.", "s.r.l.",
	"sa de cv", "de cv", "sas", "srl", "sa", "sl", "inc", "llc",
	"ltd", "ltda", "corp", "co", "gmbh", "group", "grupo",
}

var nonAlnumRegex = regexp.MustCompile(`[^a-z0-9 ]+`)
var spacesRegex = regexp.MustCompile(`\s+`)

var accentReplacer = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u",
	"à", "a", "è", "e", "ì", "i", "ò", "o", "ù", "u",
	"ä", "a", "ë", "e", "ï", "i", "ö", "o", "ü", "u",
	"â", "a", "ê", "e", "î", "i", "ô", "o", "û", "u",
	"ñ", "n", "ç", "c",
)

// NormalizeCompanyName reduce un nombre de empresa a su forma canónica:
// minúsculas, sin acentos, sin puntuación y sin sufijos legales.
func NormalizeCompanyName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = accentReplacer.Replace(normalized)
	normalized = nonAlnumRegex.ReplaceAllString(normalized, " ")
	normalized = spacesRegex.ReplaceAllString(normalized, " ")
	normalized = strings.TrimSpace(normalized)

	changed := true
	for changed {
		changed = false
		for _, suffix := range legalSuffixes {
			cleanSuffix := nonAlnumRegex.ReplaceAllString(suffix, " ")
			cleanSuffix = strings.TrimSpace(spacesRegex.ReplaceAllString(cleanSuffix, " "))
			if normalized != cleanSuffix && strings.HasSuffix(normalized, " "+cleanSuffix) {
				normalized = strings.TrimSpace(strings.TrimSuffix(normalized, " "+cleanSuffix))
				changed = true
			}
		}
	}

	return normalized
}

// IsCompanyPrefixMatch indica si un nombre normalizado extiende al otro
// únicamente con palabras adicionales (p.ej. "acme" y "acme farma").
func IsCompanyPrefixMatch(a, b string) bool {
	if a == "" || b == "" || a == b {
		return false
	}
	shorter, longer := a, b
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	return strings.HasPrefix(longer, shorter+" ")
}

// SearchRegex escapa el término de búsqueda para usarlo como subcadena
// literal dentro de un filtro $regex.
func SearchRegex(term string) string {
	return regexp.QuoteMeta(term)
}

var domainRegex = regexp.MustCompile(`^(?:https?://)?(?:www\.)?([a-z0-9][a-z0-9\-.]*\.[a-z]{2,})`)

// ExtractDomain obtiene el dominio de una URL o de una dirección de correo.
func ExtractDomain(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return ""
	}

	if at := strings.LastIndex(value, "@"); at != -1 {
		value = value[at+1:]
	}

	matches := domainRegex.FindStringSubmatch(value)
	if len(matches) < 2 {
		return ""
	}

	domain := matches[1]
	if slash := strings.Index(domain, "/"); slash != -1 {
		domain = domain[:slash]
	}
	return domain
}
