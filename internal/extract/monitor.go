package extract

import "regexp"

var inchesBare = regexp.MustCompile(`(?i)\b(\d{2}(?:[.,]\d)?)\s*(?:"|”|pol)`)

// Inches returns the screen size, ex `27"` reported as "27".
func Inches(b Block) string {
	return FirstMatch(b,
		func(b Block) string { return b.Lookup("Tamanho da tela", "Polegadas", "Tamanho") },
		func(b Block) string {
			if m := inchesBare.FindStringSubmatch(b.Text()); m != nil {
				return decimalComma(m[1])
			}
			return ""
		},
	)
}

var panelBare = regexp.MustCompile(`\b(IPS|VA|TN|OLED|QLED)\b`)

// PanelType returns the panel technology, ex "IPS".
func PanelType(b Block) string {
	return FirstMatch(b,
		func(b Block) string { return b.Lookup("Painel", "Tipo de painel", "Tipo Painel", "Tipo de luz de fundo") },
		func(b Block) string { return panelBare.FindString(b.Text()) },
	)
}

var proportionBare = regexp.MustCompile(`\b(\d{1,2}:\d{1,2})\b`)

// Proportion returns the aspect ratio, ex "16:9".
func Proportion(b Block) string {
	return FirstMatch(b,
		func(b Block) string { return b.Lookup("Proporção", "Aspect Ratio") },
		func(b Block) string { return proportionBare.FindString(b.Text()) },
	)
}

// Resolution returns the native resolution as "1920 x 1080".
func Resolution(b Block) string {
	return FirstMatch(b,
		func(b Block) string {
			v := b.Lookup("Resolução", "Resolução Máxima")
			if v == "" {
				return ""
			}
			if m := resolutionPair.FindStringSubmatch(v); m != nil {
				return m[1] + " x " + m[2]
			}
			return v
		},
		func(b Block) string {
			if m := resolutionPair.FindStringSubmatch(b.Text()); m != nil {
				return m[1] + " x " + m[2]
			}
			return ""
		},
	)
}

var refreshBare = regexp.MustCompile(`(?i)\b(\d{2,3})\s*Hz\b`)

// RefreshRate returns the refresh rate, ex "144Hz".
func RefreshRate(b Block) string {
	return FirstMatch(b,
		func(b Block) string { return b.Lookup("Taxa de atualização", "Frequência") },
		func(b Block) string {
			if m := refreshBare.FindStringSubmatch(b.Text()); m != nil {
				return m[1] + "Hz"
			}
			return ""
		},
	)
}

// ColorSupport returns the color gamut / count declaration.
func ColorSupport(b Block) string {
	return b.Lookup("Suporte a cores", "Cores", "RGB")
}
