package extract

import (
	"regexp"
	"strings"
)

// Model extracts the model designation from the spec table.
func Model(b Block) string {
	return b.Lookup("Modelo", "Model")
}

// knownBrands are the hardware vendors seen in the retailer's listings; used
// as a product-name fallback when the spec table omits the brand.
var knownBrands = []string{
	"NVIDIA", "AMD", "Intel", "ASUS", "Gigabyte", "MSI", "Galax", "Zotac",
	"EVGA", "Corsair", "Kingston", "Crucial", "XPG", "HyperX", "Logitech",
	"Razer", "Redragon", "Multilaser", "Fortrek", "HP", "Dell", "Samsung",
	"LG", "AOC", "Acer", "Lenovo", "Positivo", "WD", "Western Digital",
	"Seagate", "SanDisk", "Pichau", "Rise Mode", "PCYes",
}

// Brand extracts the manufacturer, first from the spec table and then by
// scanning the product name for a known vendor.
func Brand(b Block, name string) string {
	if v := b.Lookup("Marca", "Fabricante"); v != "" {
		return v
	}
	lower := strings.ToLower(name)
	for _, brand := range knownBrands {
		if strings.Contains(lower, strings.ToLower(brand)) {
			return brand
		}
	}
	return ""
}

var (
	connectivityLine  = regexp.MustCompile(`(?i)(?:Conectividade|Connectivity|Tipo de conex[ãa]o)\s*:\s*(.+)$`)
	connectivityToken = regexp.MustCompile(`(?i)\bUSB(?:-C)?\b|\bWireless\b|\bBluetooth\b|\bCabeado\b|\bSem fio\b`)
)

// Connectivity extracts the connection type (USB, Wireless, Bluetooth...),
// shared between keyboard and mouse extraction.
func Connectivity(b Block) string {
	return FirstMatch(b,
		func(b Block) string { return b.LineValue(connectivityLine) },
		func(b Block) string {
			found := connectivityToken.FindAllString(b.Text(), -1)
			seen := make(map[string]bool)
			var out []string
			for _, f := range found {
				norm := strings.ToUpper(f)
				if norm == "CABEADO" {
					norm = "Cabeado"
				}
				if norm == "SEM FIO" {
					norm = "Sem fio"
				}
				if !seen[norm] {
					seen[norm] = true
					out = append(out, norm)
				}
			}
			return strings.Join(out, " / ")
		},
	)
}
