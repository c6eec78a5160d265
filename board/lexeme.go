package board

import (
	"fmt"
	"sort"
)

// lexemeEntry is what the registry remembers about a glyph: which Kind it
// constructs, and the element-kind name used both in conflict errors and
// in the -help element listing.
type lexemeEntry struct {
	kind Kind
	name string
}

var registry = map[rune]lexemeEntry{}

// registryGroups preserves lexeme order for RegistryListing, keyed by kind.
var registryGroups = map[Kind][]rune{}

// registerErrs collects conflicts found while building the registry so that
// every conflict is reported together, matching chiplib.py's lexmap
// construction (which raises once, joining every ValueError it collected).
var registerErrs []error

func register(kind Kind, lexemes string) {
	name := kind.String()
	for _, r := range lexemes {
		if prev, ok := registry[r]; ok && prev.kind != kind {
			registerErrs = append(registerErrs, fmt.Errorf(
				"the lexeme %q is claimed by both %s and %s", r, prev.name, name))
			continue
		}
		registry[r] = lexemeEntry{kind: kind, name: name}
		registryGroups[kind] = append(registryGroups[kind], r)
	}
}

func init() {
	register(KindEmpty, " ")
	register(KindWire, "+-|^v><`',.┼─│┴┬├┤└┘┌┐")
	register(KindWireCross, "×x")
	register(KindWireSpecial, "«L»R")
	register(KindDiode, "→←↓↑")
	register(KindSource, "*")
	register(KindPulse, "!")
	register(KindRandom, "?")
	register(KindInBit, "ABCDEFGH")
	register(KindOutBit, "abcdefgh")
	register(KindAdder, "#@")
	register(KindAnd, "[]")
	register(KindOr, "()")
	register(KindXor, "{}")
	register(KindNot, "⌐~¬÷")
	register(KindSwitch, "/\\")
	register(KindCache, "Kk")
	register(KindDelay, "Zz")
	register(KindMemory, "Mm")
	register(KindControl, "TtSs")
	register(KindDebug, "X")
	register(KindSleep, "$")
	register(KindPause, "Pp")
	register(KindStorageControl, "98")
	register(KindStorageBit, "01234567")
	register(KindPin, "Oo")
	register(KindBookmark, "V")

	if len(registerErrs) > 0 {
		panic(joinLexemeErrs(registerErrs))
	}
}

func joinLexemeErrs(errs []error) error {
	msg := "lexeme registry conflict"
	for _, e := range errs {
		msg += ": " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}

// LookupLexeme returns the Kind registered for a glyph and whether it is
// registered at all.
func LookupLexeme(r rune) (Kind, bool) {
	entry, ok := registry[r]
	return entry.kind, ok
}

// IsValidLexeme reports whether r is a registered glyph.
func IsValidLexeme(r rune) bool {
	_, ok := registry[r]
	return ok
}

// RegistryListing renders the "supported elements" help text, one row per
// Kind sorted by name, each listing its registered glyphs sorted by code
// point -- mirrors chip.py's init() epilog built from
// chiplib.lexmap_r.
func RegistryListing() string {
	kinds := make([]Kind, 0, len(registryGroups))
	for k := range registryGroups {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i].String() < kinds[j].String() })

	out := "supported elements:\n"
	for _, k := range kinds {
		lexemes := registryGroups[k]
		row := make([]rune, len(lexemes))
		copy(row, lexemes)
		sort.Slice(row, func(i, j int) bool { return row[i] < row[j] })
		out += fmt.Sprintf("  %-16s%s\n", k.String(), string(row))
	}
	return out
}
