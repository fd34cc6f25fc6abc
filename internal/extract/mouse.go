package extract

import (
	"regexp"
	"strings"
)

var (
	dpiLabel = regexp.MustCompile(`(?i)DPI:\s*([\d.,]+)`)
	dpiBare  = regexp.MustCompile(`(?i)\b([\d.,]+)\s*DPI\b`)
)

// DPI returns the sensor resolution as "8000 DPI".
func DPI(b Block) string {
	return FirstMatch(b,
		func(b Block) string {
			if m := dpiLabel.FindStringSubmatch(b.Text()); m != nil {
				return strings.ReplaceAll(m[1], ",", ".") + " DPI"
			}
			return ""
		},
		func(b Block) string {
			if m := dpiBare.FindStringSubmatch(b.Text()); m != nil {
				return strings.ReplaceAll(m[1], ",", ".") + " DPI"
			}
			return ""
		},
	)
}

var colorLine = regexp.MustCompile(`(?i)^(?:Cor|Color|Cor predominante)\s*:\s*(.+)$`)

// Color returns the declared color, ex "Preto" or "RGB Chroma Mk.II".
func Color(b Block) string {
	return b.LineValue(colorLine)
}
