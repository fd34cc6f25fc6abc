package extract

import (
	"regexp"
	"strings"
)

var (
	keyTypeLabel  = regexp.MustCompile(`(?i)Tipo de Tecla:\s*(\w+)`)
	switchLabel   = regexp.MustCompile(`(?i)Switch:\s*([^\n\r<]+)`)
	knownKeyTypes = []string{"Mecânico", "Membrana", "Óptico"}
)

// KeyType returns the key mechanism, with the switch appended when present:
// "Mecânico, Switch: Gateron G Pro 3.0 Brown". A detected switch forces the
// type to "Mecânico" regardless of what the label said.
func KeyType(b Block, productName string) string {
	text := b.Text()
	keyType := ""

	if m := keyTypeLabel.FindStringSubmatch(text); m != nil {
		keyType = strings.TrimSpace(m[1])
	}
	if regexp.MustCompile(`(?i)\bMec[âa]nico\b`).MatchString(text) {
		keyType = "Mecânico"
	}
	if keyType == "" {
		keyType = matchKnownKeyType(text)
	}
	if keyType == "" {
		keyType = matchKnownKeyType(productName)
	}

	if m := switchLabel.FindStringSubmatch(text); m != nil {
		return "Mecânico, Switch: " + strings.TrimSpace(m[1])
	}
	return keyType
}

func matchKnownKeyType(text string) string {
	norm := normalizeKey(text)
	for _, t := range knownKeyTypes {
		if strings.Contains(norm, normalizeKey(t)) {
			return t
		}
	}
	return ""
}

var (
	layoutLabel = regexp.MustCompile(`(?i)Layout:\s*([^\s,]+)`)
	layoutBare  = regexp.MustCompile(`(?i)\b(ABNT2|ABNT|ANSI|US)\b`)
)

// Layout returns the key layout standard, ex "ABNT2".
func Layout(b Block) string {
	return FirstMatch(b,
		func(b Block) string {
			if m := layoutLabel.FindStringSubmatch(b.Text()); m != nil {
				return m[1]
			}
			return ""
		},
		func(b Block) string {
			if m := layoutBare.FindStringSubmatch(b.Text()); m != nil {
				return strings.ToUpper(m[1])
			}
			return ""
		},
	)
}

var (
	lengthLabel    = regexp.MustCompile(`(?i)Comprimento:\s*([^\n\r<]+)`)
	widthLabel     = regexp.MustCompile(`(?i)Largura:\s*([^\n\r<]+)`)
	heightLabel    = regexp.MustCompile(`(?i)Altura:\s*([^\n\r<]+)`)
	dimensionLabel = regexp.MustCompile(`(?i)Dimens[õo]es(?: do Teclado)?:\s*([^\n\r<]+)`)
	dimensionBare  = regexp.MustCompile(`(?i)\b(\d{1,4}(?:,\d)?\s*x\s*\d{1,4}(?:,\d)?\s*x\s*\d{1,4}(?:,\d)?\s*mm)\b`)
)

// Dimensions returns physical dimensions, preferring the joined
// length x width x height labels over a single "Dimensões" line.
func Dimensions(b Block) string {
	text := b.Text()

	l := lengthLabel.FindStringSubmatch(text)
	w := widthLabel.FindStringSubmatch(text)
	h := heightLabel.FindStringSubmatch(text)
	if l != nil && w != nil && h != nil {
		return strings.TrimSpace(l[1]) + " x " + strings.TrimSpace(w[1]) + " x " + strings.TrimSpace(h[1])
	}

	if m := dimensionLabel.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := dimensionBare.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}
