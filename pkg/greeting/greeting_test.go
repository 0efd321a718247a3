package greeting

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fixed int

func (f fixed) IntN(n int) int { return int(f) % n }

func TestPick_UsesSourceIndex(t *testing.T) {
	assert.Equal(t, "How are you,\nAlice?", Pick(fixed(0), "alice"))
	assert.Equal(t, "Welcome back,\nAlice!", Pick(fixed(1), "alice"))
	assert.Equal(t, "It's such a lovely day, isn't it \nAlice?", Pick(fixed(4), "alice"))
}

func TestPick_AlwaysOneOfTemplates(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	seen := map[int]bool{}

	for i := 0; i < 200; i++ {
		g := Pick(rng, "bob")
		matched := false
		for idx := range Templates {
			if g == Format(idx, "bob") {
				seen[idx] = true
				matched = true
			}
		}
		assert.True(t, matched, g)
		assert.True(t, strings.Contains(g, "Bob"))
	}
	assert.Len(t, seen, len(Templates))
}

func TestFormat_WrapsIndex(t *testing.T) {
	assert.Equal(t, Format(0, "x"), Format(len(Templates), "x"))
	assert.Equal(t, Format(len(Templates)-1, "x"), Format(-1, "x"))
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Alice", TitleCase("alice"))
	assert.Equal(t, "Mary Jane", TitleCase("mary jane"))
	assert.Equal(t, "Alice", TitleCase("ALICE"))
}

func TestTitleCase_NonLettersStartNewWord(t *testing.T) {
	cases := map[string]string{
		"john.doe":  "John.Doe",
		"alice_bob": "Alice_Bob",
		"user1abc":  "User1Abc",
		"mary-jane": "Mary-Jane",
		"bob@home":  "Bob@Home",
		"ÄPFEL":     "Äpfel",
		"42":        "42",
		"":          "",
	}
	for in, want := range cases {
		assert.Equal(t, want, TitleCase(in), in)
	}
}

func TestFormat_DottedUsername(t *testing.T) {
	assert.Equal(t, "Welcome back,\nJohn.Doe!", Format(1, "john.doe"))
}
