package terminal

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/strata/platform"
)

// specialKeys maps tcell named keys to physical keys
var specialKeys = map[tcell.Key]platform.Key{
	tcell.KeyUp:        platform.KeyArrowUp,
	tcell.KeyDown:      platform.KeyArrowDown,
	tcell.KeyLeft:      platform.KeyArrowLeft,
	tcell.KeyRight:     platform.KeyArrowRight,
	tcell.KeyHome:      platform.KeyHome,
	tcell.KeyEnd:       platform.KeyEnd,
	tcell.KeyPgUp:      platform.KeyPageUp,
	tcell.KeyPgDn:      platform.KeyPageDown,
	tcell.KeyInsert:    platform.KeyInsert,
	tcell.KeyDelete:    platform.KeyDelete,
	tcell.KeyBackspace: platform.KeyBackspace,
	tcell.KeyDEL:       platform.KeyBackspace,
	tcell.KeyEnter:     platform.KeyEnter,
	tcell.KeyTab:       platform.KeyTab,
	tcell.KeyBacktab:   platform.KeyTab,
	tcell.KeyEscape:    platform.KeyEscape,
	tcell.KeyPrint:     platform.KeyPrintScreen,
	tcell.KeyPause:     platform.KeyPause,
	tcell.KeyMenu:      platform.KeyContextMenu,
	tcell.KeyF1:        platform.KeyF1,
	tcell.KeyF2:        platform.KeyF2,
	tcell.KeyF3:        platform.KeyF3,
	tcell.KeyF4:        platform.KeyF4,
	tcell.KeyF5:        platform.KeyF5,
	tcell.KeyF6:        platform.KeyF6,
	tcell.KeyF7:        platform.KeyF7,
	tcell.KeyF8:        platform.KeyF8,
	tcell.KeyF9:        platform.KeyF9,
	tcell.KeyF10:       platform.KeyF10,
	tcell.KeyF11:       platform.KeyF11,
	tcell.KeyF12:       platform.KeyF12,
}

// punctKeys maps printable non-alphanumeric runes to the key that produces them on a US layout
var punctKeys = map[rune]platform.Key{
	' ': platform.KeySpace,
	'-': platform.KeyMinus, '_': platform.KeyMinus,
	'=': platform.KeyEqual, '+': platform.KeyEqual,
	'[': platform.KeyBracketLeft, '{': platform.KeyBracketLeft,
	']': platform.KeyBracketRight, '}': platform.KeyBracketRight,
	'\\': platform.KeyBackslash, '|': platform.KeyBackslash,
	';': platform.KeySemicolon, ':': platform.KeySemicolon,
	'\'': platform.KeyQuote, '"': platform.KeyQuote,
	'`': platform.KeyBackquote, '~': platform.KeyBackquote,
	',': platform.KeyComma, '<': platform.KeyComma,
	'.': platform.KeyPeriod, '>': platform.KeyPeriod,
	'/': platform.KeySlash, '?': platform.KeySlash,
	'!': platform.KeyDigit1, '@': platform.KeyDigit2, '#': platform.KeyDigit3,
	'$': platform.KeyDigit4, '%': platform.KeyDigit5, '^': platform.KeyDigit6,
	'&': platform.KeyDigit7, '*': platform.KeyDigit8, '(': platform.KeyDigit9,
	')': platform.KeyDigit0,
}

// runeKey returns the physical key producing r; KeyUnidentified for non-ASCII text
func runeKey(r rune) platform.Key {
	switch {
	case r >= 'a' && r <= 'z':
		return platform.KeyA + platform.Key(r-'a')
	case r >= 'A' && r <= 'Z':
		return platform.KeyA + platform.Key(r-'A')
	case r >= '0' && r <= '9':
		return platform.KeyDigit0 + platform.Key(r-'0')
	}
	if k, ok := punctKeys[r]; ok {
		return k
	}
	return platform.KeyUnidentified
}

// mapKey resolves a tcell key event into a physical key, the text it produces (0 for
// none) and extra modifiers implied by the key itself
func mapKey(ev *tcell.EventKey) (platform.Key, rune, tcell.ModMask) {
	mods := ev.Modifiers()
	k := ev.Key()

	switch {
	case k == tcell.KeyRune:
		r := ev.Rune()
		// Chorded runes are shortcuts, not text
		if mods&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) != 0 || !unicode.IsPrint(r) {
			return runeKey(r), 0, 0
		}
		return runeKey(r), r, 0

	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return platform.KeyA + platform.Key(k-tcell.KeyCtrlA), 0, tcell.ModCtrl

	case k == tcell.KeyCtrlSpace:
		return platform.KeySpace, 0, tcell.ModCtrl

	case k == tcell.KeyBacktab:
		return platform.KeyTab, 0, tcell.ModShift
	}

	if pk, ok := specialKeys[k]; ok {
		return pk, 0, 0
	}
	return platform.KeyUnidentified, 0, 0
}

// modifierKeys lists the modifier keys held in mask, in a fixed press order
func modifierKeys(mask tcell.ModMask) []platform.Key {
	var keys []platform.Key
	if mask&tcell.ModCtrl != 0 {
		keys = append(keys, platform.KeyControlLeft)
	}
	if mask&tcell.ModAlt != 0 {
		keys = append(keys, platform.KeyAltLeft)
	}
	if mask&tcell.ModShift != 0 {
		keys = append(keys, platform.KeyShiftLeft)
	}
	if mask&tcell.ModMeta != 0 {
		keys = append(keys, platform.KeySuperLeft)
	}
	return keys
}
