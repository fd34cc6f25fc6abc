package category

import "strings"

// Category classifies a product into one of the fixed retailer categories.
// The set is closed: the spec builder dispatches exhaustively over it and
// every category owns a fixed attribute template.
type Category string

const (
	GPU         Category = "gpu"
	CPU         Category = "cpu"
	RAM         Category = "ram"
	Motherboard Category = "motherboard"
	Keyboard    Category = "keyboard"
	Mouse       Category = "mouse"
	Monitor     Category = "monitor"
	Storage     Category = "storage"
	Computer    Category = "computer"
)

// All returns every known category in catalog order.
func All() []Category {
	return []Category{GPU, CPU, RAM, Motherboard, Keyboard, Mouse, Monitor, Storage, Computer}
}

// Parse converts a category name to a Category. The second return value is
// false for names outside the catalog.
func Parse(name string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(name)))
	switch c {
	case GPU, CPU, RAM, Motherboard, Keyboard, Mouse, Monitor, Storage, Computer:
		return c, true
	}
	return "", false
}

// String returns the category name
func (c Category) String() string {
	return string(c)
}

// entry holds the per-category retailer catalog data
type entry struct {
	query    string
	listing  string
	template []string
}

var catalog = map[Category]entry{
	GPU: {
		query:    "placa de vídeo",
		listing:  "https://www.kabum.com.br/hardware/placa-de-video-vga",
		template: []string{"model", "vram", "chipset", "max_resolution", "output", "tech_support"},
	},
	CPU: {
		query:    "processador",
		listing:  "https://www.kabum.com.br/hardware/processadores",
		template: []string{"model", "integrated_video", "socket", "core_number", "thread_number", "frequency", "mem_speed"},
	},
	RAM: {
		query:    "memória RAM",
		listing:  "https://www.kabum.com.br/hardware/memoria-ram",
		template: []string{"model", "capacity", "ddr", "speed"},
	},
	Motherboard: {
		query:    "placa mãe",
		listing:  "https://www.kabum.com.br/hardware/placas-mae",
		template: []string{"model", "socket", "chipset", "form_type", "max_ram_capacity", "ram_type", "ram_slots", "pcie_slots", "sata_ports", "m2_slot"},
	},
	Keyboard: {
		query:    "teclado",
		listing:  "https://www.kabum.com.br/perifericos/teclado-gamer",
		template: []string{"model", "key_type", "layout", "connectivity", "dimension"},
	},
	Mouse: {
		query:    "mouse",
		listing:  "https://www.kabum.com.br/perifericos/-mouse-gamer",
		template: []string{"model", "dpi", "connectivity", "color"},
	},
	Monitor: {
		query:    "monitor",
		listing:  "https://www.kabum.com.br/computadores/monitores",
		template: []string{"model", "inches", "panel_type", "proportion", "resolution", "refresh_rate", "color_support", "output"},
	},
	Storage: {
		query:    "armazenamento",
		listing:  "https://www.kabum.com.br/hardware/ssd-2-5",
		template: []string{"model", "capacity_gb", "storage_type", "interface", "form_factor", "read_speed", "write_speed"},
	},
	Computer: {
		query:    "computador",
		listing:  "https://www.kabum.com.br/computadores/pc",
		template: []string{"model", "is_notebook", "motherboard", "cpu", "ram", "storage", "gpu", "inches", "panel_type", "resolution", "refresh_rate", "color_support", "output"},
	},
}

// Query returns the retailer search term for the category
func (c Category) Query() string {
	return catalog[c].query
}

// ListingURL returns the category listing page URL
func (c Category) ListingURL() string {
	return catalog[c].listing
}

// Template returns the ordered attribute key set for the category. Unknown
// categories return nil.
func (c Category) Template() []string {
	e, ok := catalog[c]
	if !ok {
		return nil
	}
	out := make([]string, len(e.template))
	copy(out, e.template)
	return out
}
