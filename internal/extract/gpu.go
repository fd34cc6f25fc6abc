package extract

import (
	"regexp"
	"strings"
)

// VRAM returns the video memory as one string, units retained ("16 GB GDDR6").
// The cascade covers the three layouts the retailer has used for GPU specs:
// a "- Chave: Valor" table, a <strong>Memória</strong> heading followed by the
// value paragraph, and a flat "Memória: ..." line.
func VRAM(b Block) string {
	return FirstMatch(b,
		vramFromSpecTable,
		vramFromHeading,
		vramFromMemoryLine,
	)
}

func vramFromSpecTable(b Block) string {
	size := b.Lookup("Capacidade", "Tamanho máximo da memória", "Tamanho da memória")
	if size != "" {
		size = collapseSpaces(size) // "8 GB" -> "8GB"
	}
	typ := b.Lookup("Tipo", "Tipo de memória")
	switch {
	case size != "" && typ != "":
		return size + " " + typ
	case size != "":
		return size
	default:
		return typ
	}
}

func vramFromHeading(b Block) string {
	return b.HeadingSibling("Memória", "relógio", "velocidade")
}

var memoryLine = regexp.MustCompile(`(?i)^(?:Tamanho da mem[óo]ria(?:/barramento)?|Mem[óo]ria)\s*:?\s+(.+)$`)

func vramFromMemoryLine(b Block) string {
	return b.LineValue(memoryLine)
}

var (
	nvidiaTokens = []string{"nvidia", "geforce", "rtx", "gtx"}
	amdTokens    = []string{"amd", "radeon", " rx ", "vega"}
)

// Chipset classifies the GPU vendor from the product name.
func Chipset(name string) string {
	lower := " " + strings.ToLower(name) + " "
	for _, t := range nvidiaTokens {
		if strings.Contains(lower, t) {
			return "NVIDIA"
		}
	}
	for _, t := range amdTokens {
		if strings.Contains(lower, t) {
			return "AMD"
		}
	}
	return ""
}

var resolutionPair = regexp.MustCompile(`(\d{3,4})\s*[x×]\s*(\d{3,4})`)

// MaxResolution returns the maximum output resolution as "7680 x 4320".
func MaxResolution(b Block) string {
	return FirstMatch(b,
		func(b Block) string {
			v := b.Lookup(
				"Resolução máxima digital",
				"Resolução digital máxima",
				"Resolução máxima",
				"Resolução",
			)
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

var outputCandidates = []string{"HDMI", "DisplayPort", "VGA", "DVI"}

// Outputs lists the video connectors mentioned anywhere in the block,
// ex: "HDMI, DisplayPort, DVI". Shared by the GPU and monitor templates.
func Outputs(b Block) string {
	text := strings.ToLower(b.Text())
	var found []string
	for _, c := range outputCandidates {
		if strings.Contains(text, strings.ToLower(c)) {
			found = append(found, c)
		}
	}
	return strings.Join(found, ", ")
}

var techSupportMap = []struct{ token, pretty string }{
	{"dlss", "DLSS"},
	{"ray tracing", "Ray Tracing"},
	{"vulkan", "Vulkan"},
	{"freesync", "FreeSync"},
	{"g-sync", "G-Sync"},
	{"opencl", "OpenCL"},
	{"opengl", "OpenGL"},
	{"directx", "DirectX"},
}

// TechSupport lists the GPU technologies detected in the block,
// ex: "DLSS, Ray Tracing, FreeSync".
func TechSupport(b Block) string {
	text := strings.ToLower(b.Text())
	var found []string
	for _, t := range techSupportMap {
		if strings.Contains(text, t.token) {
			found = append(found, t.pretty)
		}
	}
	return strings.Join(found, ", ")
}
