package extract

import "regexp"

var (
	ramCapacityLabel = regexp.MustCompile(`(?i)Capacidade:\s*(\d+\s*GB)`)
	ramCapacityBare  = regexp.MustCompile(`(?i)\b(\d+GB)\b`)
)

// RAMCapacity returns the module capacity, ex "16GB".
func RAMCapacity(b Block) string {
	return FirstMatch(b,
		func(b Block) string {
			if m := ramCapacityLabel.FindStringSubmatch(b.Text()); m != nil {
				return collapseSpaces(m[1])
			}
			return ""
		},
		func(b Block) string {
			if m := ramCapacityBare.FindStringSubmatch(b.Text()); m != nil {
				return m[1]
			}
			return ""
		},
	)
}

var (
	ddrLabel = regexp.MustCompile(`(?i)Tipo de mem[óo]ria:\s*(DDR[345])`)
	ddrBare  = regexp.MustCompile(`(?i)\b(DDR[345])\b`)
)

// DDRGeneration returns the memory generation, ex "DDR5".
func DDRGeneration(b Block) string {
	return FirstMatch(b,
		func(b Block) string {
			if m := ddrLabel.FindStringSubmatch(b.Text()); m != nil {
				return m[1]
			}
			return ""
		},
		func(b Block) string {
			if m := ddrBare.FindStringSubmatch(b.Text()); m != nil {
				return m[1]
			}
			return ""
		},
	)
}

var (
	speedLabel = regexp.MustCompile(`(?i)Velocidade:\s*(\d+\s*MHz)`)
	speedMHz   = regexp.MustCompile(`(?i)(\d{4,})\s*MHz`)
	speedMTs   = regexp.MustCompile(`(?i)(\d{4,})\s*MT/s`)
	speedDDR   = regexp.MustCompile(`(?i)DDR[345]-(\d{4,})`)
)

// RAMSpeed returns the rated speed, normalizing the retailer's three habits
// ("Velocidade: 4800 Mhz", "4800MT/s", "DDR5-5200") to one value.
func RAMSpeed(b Block) string {
	text := b.Text()
	if m := speedLabel.FindStringSubmatch(text); m != nil {
		return collapseSpaces(m[1])
	}
	if m := speedMHz.FindStringSubmatch(text); m != nil {
		return m[1] + "MHz"
	}
	if m := speedMTs.FindStringSubmatch(text); m != nil {
		return m[1] + "MT/s"
	}
	if m := speedDDR.FindStringSubmatch(text); m != nil {
		return m[1] + "MHz"
	}
	return ""
}
