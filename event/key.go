package event

import (
	"strconv"

	"github.com/lixenwraith/strata/platform"
)

// KeyCode is a normalized key identity, independent of the backend
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete

	KeyBack
	KeyReturn
	KeyTab
	KeySpace
	KeyEscape

	KeyMinus
	KeyEquals
	KeyLBracket
	KeyRBracket
	KeyBackslash
	KeySemicolon
	KeyApostrophe
	KeyGrave
	KeyComma
	KeyPeriod
	KeySlash

	KeyLShift
	KeyRShift
	KeyLControl
	KeyRControl
	KeyLAlt
	KeyRAlt
	KeyLWin
	KeyRWin

	KeyCapital
	KeyScroll
	KeyNumlock
	KeySnapshot
	KeyPause
	KeyApps

	keyCodeCount
)

// keyCodeNames maps KeyCode constants to display names
var keyCodeNames = [keyCodeCount]string{
	KeyUnknown: "Unknown",

	KeyA: "A", KeyB: "B", KeyC: "C", KeyD: "D", KeyE: "E", KeyF: "F", KeyG: "G",
	KeyH: "H", KeyI: "I", KeyJ: "J", KeyK: "K", KeyL: "L", KeyM: "M", KeyN: "N",
	KeyO: "O", KeyP: "P", KeyQ: "Q", KeyR: "R", KeyS: "S", KeyT: "T", KeyU: "U",
	KeyV: "V", KeyW: "W", KeyX: "X", KeyY: "Y", KeyZ: "Z",

	Key0: "0", Key1: "1", Key2: "2", Key3: "3", Key4: "4",
	Key5: "5", Key6: "6", Key7: "7", Key8: "8", Key9: "9",

	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5", KeyF6: "F6",
	KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10", KeyF11: "F11", KeyF12: "F12",

	KeyUp:       "Up",
	KeyDown:     "Down",
	KeyLeft:     "Left",
	KeyRight:    "Right",
	KeyHome:     "Home",
	KeyEnd:      "End",
	KeyPageUp:   "PageUp",
	KeyPageDown: "PageDown",
	KeyInsert:   "Insert",
	KeyDelete:   "Delete",

	KeyBack:   "Back",
	KeyReturn: "Return",
	KeyTab:    "Tab",
	KeySpace:  "Space",
	KeyEscape: "Escape",

	KeyMinus:      "Minus",
	KeyEquals:     "Equals",
	KeyLBracket:   "LBracket",
	KeyRBracket:   "RBracket",
	KeyBackslash:  "Backslash",
	KeySemicolon:  "Semicolon",
	KeyApostrophe: "Apostrophe",
	KeyGrave:      "Grave",
	KeyComma:      "Comma",
	KeyPeriod:     "Period",
	KeySlash:      "Slash",

	KeyLShift:   "LShift",
	KeyRShift:   "RShift",
	KeyLControl: "LControl",
	KeyRControl: "RControl",
	KeyLAlt:     "LAlt",
	KeyRAlt:     "RAlt",
	KeyLWin:     "LWin",
	KeyRWin:     "RWin",

	KeyCapital:  "Capital",
	KeyScroll:   "Scroll",
	KeyNumlock:  "Numlock",
	KeySnapshot: "Snapshot",
	KeyPause:    "Pause",
	KeyApps:     "Apps",
}

// String returns the key display name
func (k KeyCode) String() string {
	if k < keyCodeCount {
		return keyCodeNames[k]
	}
	return "KeyCode(" + strconv.Itoa(int(k)) + ")"
}

// IsModifier reports whether k is a shift, control, alt or super key
func (k KeyCode) IsModifier() bool {
	return k >= KeyLShift && k <= KeyRWin
}

// platformKeys translates backend key identities; absent entries are unsupported
var platformKeys = map[platform.Key]KeyCode{
	platform.KeyA: KeyA, platform.KeyB: KeyB, platform.KeyC: KeyC, platform.KeyD: KeyD,
	platform.KeyE: KeyE, platform.KeyF: KeyF, platform.KeyG: KeyG, platform.KeyH: KeyH,
	platform.KeyI: KeyI, platform.KeyJ: KeyJ, platform.KeyK: KeyK, platform.KeyL: KeyL,
	platform.KeyM: KeyM, platform.KeyN: KeyN, platform.KeyO: KeyO, platform.KeyP: KeyP,
	platform.KeyQ: KeyQ, platform.KeyR: KeyR, platform.KeyS: KeyS, platform.KeyT: KeyT,
	platform.KeyU: KeyU, platform.KeyV: KeyV, platform.KeyW: KeyW, platform.KeyX: KeyX,
	platform.KeyY: KeyY, platform.KeyZ: KeyZ,

	platform.KeyDigit0: Key0, platform.KeyDigit1: Key1, platform.KeyDigit2: Key2,
	platform.KeyDigit3: Key3, platform.KeyDigit4: Key4, platform.KeyDigit5: Key5,
	platform.KeyDigit6: Key6, platform.KeyDigit7: Key7, platform.KeyDigit8: Key8,
	platform.KeyDigit9: Key9,

	platform.KeyF1: KeyF1, platform.KeyF2: KeyF2, platform.KeyF3: KeyF3, platform.KeyF4: KeyF4,
	platform.KeyF5: KeyF5, platform.KeyF6: KeyF6, platform.KeyF7: KeyF7, platform.KeyF8: KeyF8,
	platform.KeyF9: KeyF9, platform.KeyF10: KeyF10, platform.KeyF11: KeyF11, platform.KeyF12: KeyF12,

	platform.KeyArrowUp:    KeyUp,
	platform.KeyArrowDown:  KeyDown,
	platform.KeyArrowLeft:  KeyLeft,
	platform.KeyArrowRight: KeyRight,
	platform.KeyHome:       KeyHome,
	platform.KeyEnd:        KeyEnd,
	platform.KeyPageUp:     KeyPageUp,
	platform.KeyPageDown:   KeyPageDown,
	platform.KeyInsert:     KeyInsert,
	platform.KeyDelete:     KeyDelete,

	platform.KeyBackspace: KeyBack,
	platform.KeyEnter:     KeyReturn,
	platform.KeyTab:       KeyTab,
	platform.KeySpace:     KeySpace,
	platform.KeyEscape:    KeyEscape,

	platform.KeyMinus:        KeyMinus,
	platform.KeyEqual:        KeyEquals,
	platform.KeyBracketLeft:  KeyLBracket,
	platform.KeyBracketRight: KeyRBracket,
	platform.KeyBackslash:    KeyBackslash,
	platform.KeySemicolon:    KeySemicolon,
	platform.KeyQuote:        KeyApostrophe,
	platform.KeyBackquote:    KeyGrave,
	platform.KeyComma:        KeyComma,
	platform.KeyPeriod:       KeyPeriod,
	platform.KeySlash:        KeySlash,

	platform.KeyShiftLeft:    KeyLShift,
	platform.KeyShiftRight:   KeyRShift,
	platform.KeyControlLeft:  KeyLControl,
	platform.KeyControlRight: KeyRControl,
	platform.KeyAltLeft:      KeyLAlt,
	platform.KeyAltRight:     KeyRAlt,
	platform.KeySuperLeft:    KeyLWin,
	platform.KeySuperRight:   KeyRWin,

	platform.KeyCapsLock:    KeyCapital,
	platform.KeyScrollLock:  KeyScroll,
	platform.KeyNumLock:     KeyNumlock,
	platform.KeyPrintScreen: KeySnapshot,
	platform.KeyPause:       KeyPause,
}
