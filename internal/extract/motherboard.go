package extract

import (
	"regexp"
	"strings"
)

// MotherboardChipset returns the board chipset, ex "B650" or "Z790".
func MotherboardChipset(b Block) string {
	return FirstMatch(b,
		func(b Block) string { return b.Lookup("Chipset") },
		func(b Block) string {
			return regexp.MustCompile(`\b([ABHXZ]\d{3}[A-Z]?)\b`).FindString(b.Text())
		},
	)
}

var formTypeBare = regexp.MustCompile(`(?i)\b(E-ATX|Micro[- ]?ATX|Mini[- ]?ITX|ATX|ITX)\b`)

// FormType returns the board form factor, ex "ATX" or "Mini-ITX".
func FormType(b Block) string {
	return FirstMatch(b,
		func(b Block) string { return b.Lookup("Formato", "Form Factor", "Fator de forma") },
		func(b Block) string { return formTypeBare.FindString(b.Text()) },
	)
}

var maxRAMLine = regexp.MustCompile(`(?i)(?:Capacidade m[áa]xima|M[áa]ximo de mem[óo]ria)[^:\d]*:?\s*(\d+)\s*GB`)

// MaxRAMCapacity returns the maximum supported memory in GB, ex "128".
func MaxRAMCapacity(b Block) string {
	if m := maxRAMLine.FindStringSubmatch(b.Text()); m != nil {
		return m[1]
	}
	return ""
}

// countLookup extracts a bare count from labeled lines like "Slots de memória: 4"
func countLookup(b Block, aliases ...string) string {
	v := b.Lookup(aliases...)
	return regexp.MustCompile(`\d+`).FindString(v)
}

// RAMSlots returns the number of memory slots.
func RAMSlots(b Block) string {
	return countLookup(b, "Slots de memória", "Slots de RAM", "Slots DIMM")
}

// PCIeSlots returns the number of PCIe slots.
func PCIeSlots(b Block) string {
	return countLookup(b, "Slots PCIe", "Slots PCI Express", "PCIe")
}

// SATAPorts returns the number of SATA ports.
func SATAPorts(b Block) string {
	return countLookup(b, "Portas SATA", "Conectores SATA", "SATA")
}

// M2Slots returns the number of M.2 slots.
func M2Slots(b Block) string {
	if v := countLookup(b, "Slots M.2", "Conectores M.2"); v != "" {
		return v
	}
	// count bare M.2 mentions as a last resort: one mention usually means one slot
	if strings.Contains(b.Text(), "M.2") {
		return "1"
	}
	return ""
}

// RAMType returns the memory generation the board accepts, ex "DDR5".
func RAMType(b Block) string {
	return DDRGeneration(b)
}
