package specs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edivaldoleitao/tracksave/internal/category"
	"edivaldoleitao/tracksave/internal/extract"
)

// For every catalog category, Build must return a map whose keys are exactly
// the category's template, even when the block holds nothing.
func TestBuildCoversEveryCategoryTemplate(t *testing.T) {
	empty := extract.FromText("")
	for _, cat := range category.All() {
		t.Run(cat.String(), func(t *testing.T) {
			attrs := Build(cat, empty, "")
			require.NotNil(t, attrs)

			template := cat.Template()
			assert.Len(t, attrs, len(template))
			for _, key := range template {
				_, ok := attrs[key]
				assert.True(t, ok, "missing template key %q", key)
			}
		})
	}
}

func TestBuildUnknownCategoryIsEmpty(t *testing.T) {
	attrs := Build(category.Category("geladeira"), extract.FromText("Capacidade: 400 L"), "Geladeira Frost Free")
	assert.NotNil(t, attrs)
	assert.Empty(t, attrs)
}

func TestBuildGPU(t *testing.T) {
	block := extract.FromText(
		"- Capacidade: 12 GB\n" +
			"- Tipo: GDDR6X\n" +
			"- Resolução máxima: 7680 x 4320\n" +
			"- Conectores: HDMI 2.1, DisplayPort 1.4a\n" +
			"- Suporte a DLSS 3 e Ray Tracing\n" +
			"- Modelo: GV-N4070WF3OC-12GD")
	attrs := Build(category.GPU, block, "Placa de Vídeo Gigabyte GeForce RTX 4070 WindForce")

	assert.Equal(t, "12GB GDDR6X", attrs["vram"])
	assert.Equal(t, "NVIDIA", attrs["chipset"])
	assert.Equal(t, "7680 x 4320", attrs["max_resolution"])
	assert.Equal(t, "HDMI, DisplayPort", attrs["output"])
	assert.Equal(t, "DLSS, Ray Tracing", attrs["tech_support"])
	assert.Equal(t, "GV-N4070WF3OC-12GD", attrs["model"])
}

func TestBuildComputer(t *testing.T) {
	block := extract.FromText(
		"- Processador: AMD Ryzen 5 5600G\n" +
			"- Memória RAM: 16GB DDR4\n" +
			"- Armazenamento: SSD 480GB\n" +
			"- Placa de vídeo: Radeon Vega 7")
	attrs := Build(category.Computer, block, "Notebook Gamer Acer Nitro 5")

	assert.Equal(t, "true", attrs["is_notebook"])
	assert.Equal(t, "AMD Ryzen 5 5600G", attrs["cpu"])
	assert.Equal(t, "16GB DDR4", attrs["ram"])
	assert.Equal(t, "SSD 480GB", attrs["storage"])
	assert.Equal(t, "Radeon Vega 7", attrs["gpu"])
}
