// Package input maps free-text player commands onto game actions. Numeric
// selections and plain acknowledgments are not commands; they pass through
// to whatever form is active.
package input

import (
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

type Command int

const (
	None Command = iota
	Continue
	Supplies
	Map
	Save
	Quit
)

type commandDef struct {
	command   Command
	canonical string
	aliases   []string
}

var registry = []commandDef{
	{Continue, "continue", []string{"go", "travel", "depart", "move"}},
	{Supplies, "supplies", []string{"inventory", "check supplies", "stock"}},
	{Map, "map", []string{"look at map", "see map"}},
	{Save, "save", nil},
	{Quit, "quit", []string{"exit"}},
}

// Close misspellings still match; anything further off is not a command.
const maxEditDistance = 2

// Parse returns the global command the line names, if any. Numeric input is
// never a command so forms can consume menu selections.
func Parse(raw string) (Command, bool) {
	norm := normalize(raw)
	if norm == "" {
		return None, false
	}
	if _, err := strconv.Atoi(norm); err == nil {
		return None, false
	}

	for _, def := range registry {
		if norm == def.canonical {
			return def.command, true
		}
		for _, alias := range def.aliases {
			if norm == alias {
				return def.command, true
			}
		}
	}

	// Fuzzy pass over canonical names only; aliases are short enough that
	// edit-distance matching on them produces junk.
	best := None
	bestDist := maxEditDistance + 1
	for _, def := range registry {
		if len(norm) < 3 {
			continue
		}
		d := levenshtein.ComputeDistance(norm, def.canonical)
		if d < bestDist {
			bestDist = d
			best = def.command
		}
	}
	if bestDist <= maxEditDistance {
		return best, true
	}
	return None, false
}

func normalize(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	var b strings.Builder
	lastSpace := false
	for _, r := range raw {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastSpace = false
		case r == ' ' || r == '\t' || r == '-' || r == '_' || r == '/':
			if !lastSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			lastSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}
