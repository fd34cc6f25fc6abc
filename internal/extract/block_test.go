package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupIsAccentAndCaseInsensitive(t *testing.T) {
	b := FromText("- Resolução Máxima: 7680 x 4320\n- Soquete: AM5")

	assert.Equal(t, "7680 x 4320", b.Lookup("Resolução máxima"))
	assert.Equal(t, "7680 x 4320", b.Lookup("resolucao maxima"))
	assert.Equal(t, "AM5", b.Lookup("Socket", "Soquete"))
	assert.Equal(t, "", b.Lookup("Chipset"))
}

func TestLookupFirstOccurrenceWins(t *testing.T) {
	b := FromText("Capacidade: 16GB\nCapacidade: 32GB")
	assert.Equal(t, "16GB", b.Lookup("Capacidade"))
}

func TestFromHTMLKeepsLineBoundaries(t *testing.T) {
	// adjacent paragraphs must not merge into one spec line
	b := FromHTML(`<div><p>- Modelo: M-100</p><p>- Marca: Logitech</p></div>`)

	assert.Equal(t, "M-100", b.Lookup("Modelo"))
	assert.Equal(t, "Logitech", b.Lookup("Marca"))
}

func TestFromHTMLHonorsBRBreaks(t *testing.T) {
	b := FromHTML(`<p>Capacidade: 8 GB<br>Tipo: GDDR6</p>`)

	assert.Equal(t, "8 GB", b.Lookup("Capacidade"))
	assert.Equal(t, "GDDR6", b.Lookup("Tipo"))
}

func TestHeadingSibling(t *testing.T) {
	b := FromHTML(`
		<div>
			<p><strong>Velocidade da memória:</strong></p>
			<p>21 Gbps</p>
			<p><strong>Memória:</strong></p>
			<p>16 GB GDDR6</p>
		</div>`)

	assert.Equal(t, "16 GB GDDR6", b.HeadingSibling("Memória", "relógio", "velocidade"))
	assert.Equal(t, "", b.HeadingSibling("Inexistente"))
}

func TestHeadingSiblingWithoutMarkup(t *testing.T) {
	b := FromText("Memória: 16 GB")
	assert.Equal(t, "", b.HeadingSibling("Memória"))
}

func TestEmptyBlock(t *testing.T) {
	b := FromText("")
	assert.True(t, b.Empty())
	assert.Equal(t, "", b.Lookup("Qualquer"))
}
