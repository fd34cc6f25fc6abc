package extract

import (
	"regexp"
	"strings"
)

var (
	storageCapacityLabel = regexp.MustCompile(`(?i)Capacidade:\s*(\d+\s*[TG]B)`)
	storageCapacityBare  = regexp.MustCompile(`(?i)\b(\d+\s*[TG]B)\b`)
)

// StorageCapacity returns the drive capacity, ex "1TB" or "480GB".
func StorageCapacity(b Block) string {
	return FirstMatch(b,
		func(b Block) string {
			if m := storageCapacityLabel.FindStringSubmatch(b.Text()); m != nil {
				return collapseSpaces(m[1])
			}
			return ""
		},
		func(b Block) string {
			if m := storageCapacityBare.FindStringSubmatch(b.Text()); m != nil {
				return collapseSpaces(m[1])
			}
			return ""
		},
	)
}

// StorageType classifies the drive: NVMe before SSD, since NVMe listings
// mention both.
func StorageType(b Block) string {
	text := strings.ToLower(b.Text())
	switch {
	case strings.Contains(text, "nvme"):
		return "NVMe"
	case strings.Contains(text, "ssd"):
		return "SSD"
	case strings.Contains(text, "disco rígido"), strings.Contains(text, " hdd"), strings.Contains(text, " hd "):
		return "HDD"
	}
	return ""
}

var interfaceBare = regexp.MustCompile(`(?i)\b(SATA\s*(?:III|II|6\s*Gb/s)?|PCIe(?:\s*\d\.\d)?(?:\s*x\d)?|M\.2)\b`)

// StorageInterface returns the bus interface, ex "SATA III" or "PCIe 4.0 x4".
func StorageInterface(b Block) string {
	return FirstMatch(b,
		func(b Block) string { return b.Lookup("Interface", "Conexão") },
		func(b Block) string { return strings.TrimSpace(interfaceBare.FindString(b.Text())) },
	)
}

var formFactorBare = regexp.MustCompile(`(?i)\b(2[.,]5\s*"?|3[.,]5\s*"?|M\.2\s*2280|M\.2\s*2242|M\.2)\b`)

// StorageFormFactor returns the physical format, ex `2.5"` or "M.2 2280".
func StorageFormFactor(b Block) string {
	return FirstMatch(b,
		func(b Block) string { return b.Lookup("Formato", "Form Factor", "Fator de forma") },
		func(b Block) string { return strings.TrimSpace(formFactorBare.FindString(b.Text())) },
	)
}

var (
	readSpeedLine  = regexp.MustCompile(`(?i)Leitura[^:\d]*:?\s*(?:at[ée]\s*)?([\d.]+)\s*MB/s`)
	writeSpeedLine = regexp.MustCompile(`(?i)(?:Grava[çc][ãa]o|Escrita)[^:\d]*:?\s*(?:at[ée]\s*)?([\d.]+)\s*MB/s`)
)

// ReadSpeed returns the sequential read speed, ex "550 MB/s".
func ReadSpeed(b Block) string {
	if m := readSpeedLine.FindStringSubmatch(b.Text()); m != nil {
		return m[1] + " MB/s"
	}
	return ""
}

// WriteSpeed returns the sequential write speed, ex "500 MB/s".
func WriteSpeed(b Block) string {
	if m := writeSpeedLine.FindStringSubmatch(b.Text()); m != nil {
		return m[1] + " MB/s"
	}
	return ""
}
