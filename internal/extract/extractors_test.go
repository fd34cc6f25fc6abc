package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Every extractor must yield "" on a block that has nothing for it, without
// panicking. This is the contract the spec builder relies on.
func TestExtractorsAreTotalOnEmptyInput(t *testing.T) {
	for name, b := range map[string]Block{
		"empty":      FromText(""),
		"irrelevant": FromText("um texto qualquer sem especificações"),
	} {
		t.Run(name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Equal(t, "", Model(b))
				assert.Equal(t, "", Brand(b, ""))
				assert.Equal(t, "", Connectivity(b))
				assert.Equal(t, "", VRAM(b))
				assert.Equal(t, "", Chipset(""))
				assert.Equal(t, "", MaxResolution(b))
				assert.Equal(t, "", Outputs(b))
				assert.Equal(t, "", TechSupport(b))
				assert.Equal(t, "", IntegratedVideo(b))
				assert.Equal(t, "", Socket(b))
				assert.Equal(t, "", CoreCount(b))
				assert.Equal(t, "", ThreadCount(b))
				assert.Equal(t, "", BaseFrequency(b, ""))
				assert.Equal(t, "", MemorySpeeds(b))
				assert.Equal(t, "", RAMCapacity(b))
				assert.Equal(t, "", DDRGeneration(b))
				assert.Equal(t, "", RAMSpeed(b))
				assert.Equal(t, "", KeyType(b, ""))
				assert.Equal(t, "", Layout(b))
				assert.Equal(t, "", Dimensions(b))
				assert.Equal(t, "", DPI(b))
				assert.Equal(t, "", Color(b))
				assert.Equal(t, "", Inches(b))
				assert.Equal(t, "", PanelType(b))
				assert.Equal(t, "", Proportion(b))
				assert.Equal(t, "", Resolution(b))
				assert.Equal(t, "", RefreshRate(b))
				assert.Equal(t, "", ColorSupport(b))
				assert.Equal(t, "", StorageCapacity(b))
				assert.Equal(t, "", StorageType(b))
				assert.Equal(t, "", StorageInterface(b))
				assert.Equal(t, "", StorageFormFactor(b))
				assert.Equal(t, "", ReadSpeed(b))
				assert.Equal(t, "", WriteSpeed(b))
				assert.Equal(t, "", MotherboardChipset(b))
				assert.Equal(t, "", FormType(b))
				assert.Equal(t, "", MaxRAMCapacity(b))
				assert.Equal(t, "", RAMSlots(b))
				assert.Equal(t, "", PCIeSlots(b))
				assert.Equal(t, "", SATAPorts(b))
				assert.Equal(t, "", M2Slots(b))
				assert.Equal(t, "", ComputerPart(b, "cpu"))
			})
		})
	}
}

func TestVRAMCascade(t *testing.T) {
	// spec-table layout: size and type on separate labeled lines
	b := FromText("- Capacidade: 16 GB\n- Tipo: GDDR6")
	assert.Equal(t, "16GB GDDR6", VRAM(b))

	// heading-sibling layout keeps the value whole, units included
	b = FromHTML(`<div><p><strong>Memória:</strong></p><p>16 GB GDDR6</p></div>`)
	assert.Equal(t, "16 GB GDDR6", VRAM(b))

	// flat "Memória: ..." line
	b = FromText("Memória: 8GB GDDR6 128 bits")
	assert.Equal(t, "8GB GDDR6 128 bits", VRAM(b))
}

func TestChipsetFromName(t *testing.T) {
	assert.Equal(t, "NVIDIA", Chipset("Placa de Vídeo RTX 4070 Gigabyte"))
	assert.Equal(t, "AMD", Chipset("Placa de Vídeo Radeon RX 6600 XFX"))
	assert.Equal(t, "", Chipset("Placa de captura Elgato"))
}

func TestCoreCountKeepsHybridForm(t *testing.T) {
	b := FromText("Núcleos do processador (P-cores + E-cores): 10 (6P+4E)")
	assert.Equal(t, "10 (6P+4E)", CoreCount(b))
}

func TestBaseFrequencyFallsBackToName(t *testing.T) {
	b := FromText("Frequência base: 3,6 GHz")
	assert.Equal(t, "3.6 GHz", BaseFrequency(b, ""))

	empty := FromText("")
	assert.Equal(t, "3.6 GHz", BaseFrequency(empty, "Processador AMD Ryzen 5 5600, 3.6GHz - 4.4GHz Turbo"))
}

func TestMemorySpeedsDedup(t *testing.T) {
	b := FromText("Suporte a DDR5-4800 e DDR4 3200, também DDR5 4800")
	assert.Equal(t, "DDR5 4800 | DDR4 3200", MemorySpeeds(b))
}

func TestRAMSpeedForms(t *testing.T) {
	assert.Equal(t, "4800MHz", RAMSpeed(FromText("Velocidade: 4800 MHz")))
	assert.Equal(t, "5200MHz", RAMSpeed(FromText("Memória XPG DDR5-5200")))
	assert.Equal(t, "6000MT/s", RAMSpeed(FromText("até 6000 MT/s")))
}

func TestKeyTypeSwitchForcesMechanical(t *testing.T) {
	b := FromText("Tipo de Tecla: Membrana\nSwitch: Gateron G Pro 3.0 Brown")
	assert.Equal(t, "Mecânico, Switch: Gateron G Pro 3.0 Brown", KeyType(b, ""))
}

func TestBrandFallsBackToProductName(t *testing.T) {
	b := FromText("- Marca: Logitech")
	assert.Equal(t, "Logitech", Brand(b, ""))

	empty := FromText("")
	assert.Equal(t, "Redragon", Brand(empty, "Teclado Gamer Redragon Kumara"))
}

func TestStorageTypePrecedence(t *testing.T) {
	// NVMe listings always mention SSD too; NVMe must win
	b := FromText("SSD Kingston NV2 1TB NVMe PCIe 4.0")
	assert.Equal(t, "NVMe", StorageType(b))
	assert.Equal(t, "SSD", StorageType(FromText("SSD SATA Kingston A400")))
}
