package extract

import "strings"

// IsNotebook reports whether a complete-machine listing is a notebook, from
// the product name; desktop listings never say "notebook".
func IsNotebook(name string) string {
	if strings.Contains(strings.ToLower(name), "notebook") {
		return "true"
	}
	return "false"
}

// ComputerPart extracts one component line of a complete-machine spec table
// (motherboard, cpu, ram, storage, gpu).
func ComputerPart(b Block, part string) string {
	switch part {
	case "motherboard":
		return b.Lookup("Placa mãe", "Placa-mãe", "Motherboard")
	case "cpu":
		return b.Lookup("Processador", "CPU")
	case "ram":
		return b.Lookup("Memória RAM", "Memória", "RAM")
	case "storage":
		return b.Lookup("Armazenamento", "SSD", "HD", "Disco")
	case "gpu":
		return b.Lookup("Placa de vídeo", "Placa de video", "GPU", "Vídeo")
	}
	return ""
}
