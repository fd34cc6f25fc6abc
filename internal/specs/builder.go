// Package specs assembles the category-specific attribute set of a scraped
// product. Which fields exist for a category is catalog data
// (internal/category); how a field is parsed is extraction logic
// (internal/extract). This package is only the dispatch between the two.
package specs

import (
	"edivaldoleitao/tracksave/internal/category"
	"edivaldoleitao/tracksave/internal/extract"
)

// Build populates the attribute template of cat from the tech-info block and
// the product name. Every template key is present in the result, empty when
// nothing matched. An unrecognized category yields an empty map, never an
// error: the walker treats it as "no specific data for this item".
func Build(cat category.Category, block extract.Block, name string) map[string]string {
	attrs := make(map[string]string)

	switch cat {
	case category.GPU:
		attrs["model"] = extract.Model(block)
		attrs["vram"] = extract.VRAM(block)
		attrs["chipset"] = extract.Chipset(name)
		attrs["max_resolution"] = extract.MaxResolution(block)
		attrs["output"] = extract.Outputs(block)
		attrs["tech_support"] = extract.TechSupport(block)

	case category.CPU:
		attrs["model"] = extract.Model(block)
		attrs["integrated_video"] = extract.IntegratedVideo(block)
		attrs["socket"] = extract.Socket(block)
		attrs["core_number"] = extract.CoreCount(block)
		attrs["thread_number"] = extract.ThreadCount(block)
		attrs["frequency"] = extract.BaseFrequency(block, name)
		attrs["mem_speed"] = extract.MemorySpeeds(block)

	case category.RAM:
		attrs["model"] = extract.Model(block)
		attrs["capacity"] = extract.RAMCapacity(block)
		attrs["ddr"] = extract.DDRGeneration(block)
		attrs["speed"] = extract.RAMSpeed(block)

	case category.Motherboard:
		attrs["model"] = extract.Model(block)
		attrs["socket"] = extract.Socket(block)
		attrs["chipset"] = extract.MotherboardChipset(block)
		attrs["form_type"] = extract.FormType(block)
		attrs["max_ram_capacity"] = extract.MaxRAMCapacity(block)
		attrs["ram_type"] = extract.RAMType(block)
		attrs["ram_slots"] = extract.RAMSlots(block)
		attrs["pcie_slots"] = extract.PCIeSlots(block)
		attrs["sata_ports"] = extract.SATAPorts(block)
		attrs["m2_slot"] = extract.M2Slots(block)

	case category.Keyboard:
		attrs["model"] = extract.Model(block)
		attrs["key_type"] = extract.KeyType(block, name)
		attrs["layout"] = extract.Layout(block)
		attrs["connectivity"] = extract.Connectivity(block)
		attrs["dimension"] = extract.Dimensions(block)

	case category.Mouse:
		attrs["model"] = extract.Model(block)
		attrs["dpi"] = extract.DPI(block)
		attrs["connectivity"] = extract.Connectivity(block)
		attrs["color"] = extract.Color(block)

	case category.Monitor:
		attrs["model"] = extract.Model(block)
		attrs["inches"] = extract.Inches(block)
		attrs["panel_type"] = extract.PanelType(block)
		attrs["proportion"] = extract.Proportion(block)
		attrs["resolution"] = extract.Resolution(block)
		attrs["refresh_rate"] = extract.RefreshRate(block)
		attrs["color_support"] = extract.ColorSupport(block)
		attrs["output"] = extract.Outputs(block)

	case category.Storage:
		attrs["model"] = extract.Model(block)
		attrs["capacity_gb"] = extract.StorageCapacity(block)
		attrs["storage_type"] = extract.StorageType(block)
		attrs["interface"] = extract.StorageInterface(block)
		attrs["form_factor"] = extract.StorageFormFactor(block)
		attrs["read_speed"] = extract.ReadSpeed(block)
		attrs["write_speed"] = extract.WriteSpeed(block)

	case category.Computer:
		attrs["model"] = extract.Model(block)
		attrs["is_notebook"] = extract.IsNotebook(name)
		attrs["motherboard"] = extract.ComputerPart(block, "motherboard")
		attrs["cpu"] = extract.ComputerPart(block, "cpu")
		attrs["ram"] = extract.ComputerPart(block, "ram")
		attrs["storage"] = extract.ComputerPart(block, "storage")
		attrs["gpu"] = extract.ComputerPart(block, "gpu")
		attrs["inches"] = extract.Inches(block)
		attrs["panel_type"] = extract.PanelType(block)
		attrs["resolution"] = extract.Resolution(block)
		attrs["refresh_rate"] = extract.RefreshRate(block)
		attrs["color_support"] = extract.ColorSupport(block)
		attrs["output"] = extract.Outputs(block)
	}

	return attrs
}
