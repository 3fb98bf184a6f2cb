package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	cases := map[string]string{
		"Bob's Burgers":        "bobs-burgers",
		"Cantina D’Itália":     "cantina-ditalia",
		"Pizzaria do João":     "pizzaria-do-joao",
		"Açaí & Cia":           "acai-cia",
		"  Café  São Pedro  ":  "cafe-sao-pedro",
		"---Espetinho---":      "espetinho",
		"LANCHES 24h":          "lanches-24h",
		"Crêperie Française":   "creperie-francaise",
		"churrascaria-gaucha":  "churrascaria-gaucha",
		"Restaurante do Zé #1": "restaurante-do-ze-1",
	}
	for name, want := range cases {
		assert.Equal(t, want, Make(name), "Make(%q)", name)
	}
}

func TestUniqueNoCollision(t *testing.T) {
	got := Unique("Bob's Burgers", func(string) bool { return false })
	assert.Equal(t, "bobs-burgers", got)
}

func TestUniqueAppendsSmallestFreeSuffix(t *testing.T) {
	taken := map[string]bool{
		"bobs-burgers":   true,
		"bobs-burgers-1": true,
		"bobs-burgers-2": true,
	}
	got := Unique("Bob's Burgers", func(s string) bool { return taken[s] })
	assert.Equal(t, "bobs-burgers-3", got)

	// The generated slug never collides with any taken one.
	assert.False(t, taken[got])
}

func TestUniqueSkipsHoles(t *testing.T) {
	taken := map[string]bool{
		"cantina": true,
		// cantina-1 is free
		"cantina-2": true,
	}
	got := Unique("Cantina", func(s string) bool { return taken[s] })
	assert.Equal(t, "cantina-1", got)
}
