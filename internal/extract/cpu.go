package extract

import (
	"regexp"
	"strings"
)

var integratedVideoLine = regexp.MustCompile(`(?i)^Gr[áa]ficos do processador\s*‡?\s*:\s*(.+)$`)

// IntegratedVideo returns the on-die GPU designation, ex "Intel UHD Graphics 770".
func IntegratedVideo(b Block) string {
	return FirstMatch(b,
		func(b Block) string { return b.Lookup("Vídeo Integrado", "Vídeo onboard", "GPU Integrada") },
		func(b Block) string { return b.HeadingSibling("Gráficos") },
		func(b Block) string { return b.LineValue(integratedVideoLine) },
	)
}

// Socket returns the CPU socket, ex "LGA1700" or "AM4".
func Socket(b Block) string {
	return b.Lookup(
		"Socket",
		"Soquete",
		"Soquetes suportados",
		"Pacote",
		"Soquete da CPU",
	)
}

var coreLine = regexp.MustCompile(`(?i)^N(?:[úu]mero de n[úu]cleos|[úu]cleos)[^:]*:\s*(.+)$`)

// CoreCount returns the core count, keeping hybrid forms like "10 (6P+4E)".
func CoreCount(b Block) string {
	return FirstMatch(b,
		func(b Block) string {
			return b.Lookup(
				"Núcleos do processador (P-cores + E-cores)",
				"Núcleos de CPU",
				"Núcleos",
				"Número de núcleos",
				"Nº de núcleos de CPU",
				"Cores",
			)
		},
		func(b Block) string { return b.LineValue(coreLine) },
	)
}

var threadDigits = regexp.MustCompile(`\d+`)

// ThreadCount returns the thread count as a bare number.
func ThreadCount(b Block) string {
	v := b.Lookup(
		"Threads do processador",
		"Threads",
		"Número de threads",
		"Nº de threads",
	)
	return threadDigits.FindString(v)
}

var (
	baseFreqPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Frequ[eê]ncia de base[:\s–-]*([\d,.]+\s*GHz)`),
		regexp.MustCompile(`(?i)Frequ[eê]ncia base[:\s–-]*([\d,.]+\s*GHz)`),
		regexp.MustCompile(`(?i)Rel[oó]gio b[aá]sico[:\s–-]*([\d,.]+\s*GHz)`),
		regexp.MustCompile(`(?i)Clock base[:\s–-]*([\d,.]+\s*GHz)`),
	}
	nameFreqRange  = regexp.MustCompile(`(?i)(\d+[.,]?\d*)\s*[-–—]\s*\d+[.,]?\d*\s*GHz`)
	nameFreqSingle = regexp.MustCompile(`(?i)(\d+[.,]?\d*)\s*GHz`)
)

// BaseFrequency returns the base clock ("3.6 GHz"), reading the block first
// and falling back to the product name ("... 3.6GHz - 5.0GHz Turbo ...").
func BaseFrequency(b Block, name string) string {
	for _, pat := range baseFreqPatterns {
		if m := pat.FindStringSubmatch(b.Text()); m != nil {
			return decimalComma(collapseSpaces(strings.TrimSuffix(m[1], "GHz"))) + " GHz"
		}
	}
	if m := nameFreqRange.FindStringSubmatch(name); m != nil {
		return decimalComma(m[1]) + " GHz"
	}
	if m := nameFreqSingle.FindStringSubmatch(name); m != nil {
		return decimalComma(m[1]) + " GHz"
	}
	return ""
}

var memSpeedPair = regexp.MustCompile(`(?i)(DDR[45])[-\s]?(\d{3,4})(?:\s*MT/s)?`)

// MemorySpeeds lists every supported memory speed found in the block,
// deduplicated in order of appearance: "DDR5 4800 | DDR4 3200".
func MemorySpeeds(b Block) string {
	raw := memSpeedPair.FindAllStringSubmatch(b.Text(), -1)
	seen := make(map[string]bool)
	var out []string
	for _, m := range raw {
		speed := strings.ToUpper(m[1]) + " " + m[2]
		if !seen[speed] {
			seen[speed] = true
			out = append(out, speed)
		}
	}
	return strings.Join(out, " | ")
}
