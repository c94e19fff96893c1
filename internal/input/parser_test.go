package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Command
		ok   bool
	}{
		{"canonical", "supplies", Supplies, true},
		{"alias", "inventory", Supplies, true},
		{"multiword alias", "look at map", Map, true},
		{"case and punctuation", "  Look At Map!  ", Map, true},
		{"short alias", "go", Continue, true},
		{"save", "save", Save, true},
		{"quit alias", "exit", Quit, true},
		{"misspelled supplies", "supplise", Supplies, true},
		{"misspelled quit", "qiut", Quit, true},
		{"numeric selection passes through", "3", None, false},
		{"empty", "", None, false},
		{"blank", "   ", None, false},
		{"gibberish", "xylophone", None, false},
		{"too short for fuzzy", "zq", None, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
