package board

import "fmt"

// wireSides maps every Wire glyph (ASCII and box-drawing) to the set of
// lateral sides it connects, straight out of chiplib.py's Wire.lexemes.
var wireSides = map[rune]string{
	'+': "nsew", '┼': "nsew",
	'|': "ns", '│': "ns",
	'-': "ew", '─': "ew",
	'^': "nwe", '┴': "nwe",
	'v': "swe", '┬': "swe",
	'>': "nse", '├': "nse",
	'<': "nsw", '┤': "nsw",
	'`': "ne", '└': "ne",
	'\'': "nw", '┘': "nw",
	',': "se", '┌': "se",
	'.': "sw", '┐': "sw",
}

var diodeFlavor = map[rune][2]Side{
	'→': {West, East},
	'←': {East, West},
	'↓': {North, South},
	'↑': {South, North},
}

var adderFlavor = map[rune][2]Side{'#': {East, West}, '@': {West, East}}
var andFlavor = map[rune][2]Side{']': {East, West}, '[': {West, East}}
var orFlavor = map[rune][2]Side{')': {East, West}, '(': {West, East}}
var xorFlavor = map[rune][2]Side{'}': {East, West}, '{': {West, East}}
var notFlavor = map[rune][2]Side{'⌐': {East, West}, '~': {East, West}, '¬': {West, East}, '÷': {West, East}}
var delayFlavor = map[rune][2]Side{'Z': {East, West}, 'z': {West, East}}
var memoryFlavor = map[rune][2]Side{'M': {East, West}, 'm': {West, East}}

var switchTrigger = map[rune]int{'/': 1, '\\': 0}
var pauseScale = map[rune]float64{'P': 1.0, 'p': 1.0 / 256.0}
var storageControlFlavor = map[rune]storageFlavor{'9': storageWrite, '8': storageRead}

var controlStatus = map[rune]statusBits{
	'T': statusBits(WriteHold | Terminate),
	't': statusBits(Terminate),
	'S': statusBits(WriteHold),
	's': statusBits(ReadHold),
}

// NewElement constructs the Element for one grid cell. The glyph must
// already be a registered lexeme (the spec reader replaces anything else
// with a space before this is ever called).
func NewElement(lexeme rune, x, y, z int) (Element, error) {
	kind, ok := LookupLexeme(lexeme)
	if !ok {
		return Element{}, fmt.Errorf("%q is not a valid lexeme", lexeme)
	}

	e := Element{Kind: kind, Lexeme: lexeme, X: x, Y: y, Z: z}

	switch kind {
	case KindWire:
		sides, ok := wireSides[lexeme]
		if !ok {
			return e, fmt.Errorf("%q is not a valid Wire lexeme", lexeme)
		}
		e.sides = sideSetFromString(sides)

	case KindWireCross:
		e.sides = sideSetFromString("nsew")

	case KindWireSpecial:
		switch lexeme {
		case '«', 'L':
			e.pairOrder = [4]Side{North, West, South, East}
		case '»', 'R':
			e.pairOrder = [4]Side{North, East, South, West}
		default:
			return e, fmt.Errorf("%q is not a valid WireSpecial lexeme", lexeme)
		}

	case KindDiode:
		pair, ok := diodeFlavor[lexeme]
		if !ok {
			return e, fmt.Errorf("%q is not a valid Diode lexeme", lexeme)
		}
		e.from, e.to = pair[0], pair[1]

	case KindAdder:
		pair := adderFlavor[lexeme]
		e.out, e.in = pair[0], pair[1]
	case KindAnd:
		pair := andFlavor[lexeme]
		e.out, e.in = pair[0], pair[1]
	case KindOr:
		pair := orFlavor[lexeme]
		e.out, e.in = pair[0], pair[1]
	case KindXor:
		pair := xorFlavor[lexeme]
		e.out, e.in = pair[0], pair[1]
	case KindNot:
		pair := notFlavor[lexeme]
		e.out, e.in = pair[0], pair[1]
	case KindDelay:
		pair := delayFlavor[lexeme]
		e.out, e.in = pair[0], pair[1]
	case KindMemory:
		pair := memoryFlavor[lexeme]
		e.out, e.in = pair[0], pair[1]

	case KindSwitch:
		e.trigger = switchTrigger[lexeme]

	case KindPause:
		e.scale = pauseScale[lexeme]

	case KindStorageControl:
		e.flavor = storageControlFlavor[lexeme]

	case KindControl:
		e.contributes = controlStatus[lexeme]

	case KindInBit:
		e.index = indexOf("ABCDEFGH", lexeme)
	case KindOutBit:
		e.index = indexOf("abcdefgh", lexeme)
	case KindStorageBit:
		e.index = indexOf("01234567", lexeme)
	}

	return e, nil
}

func indexOf(set string, r rune) int {
	for i, c := range set {
		if c == r {
			return i
		}
	}
	return -1
}
