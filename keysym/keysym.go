// Package keysym maps symbolic key names to the 32-bit X11 keysym
// codes RFB's KeyEvent message carries. The table is built once at
// package init and never mutated afterward — a single baked-in
// init-once lookup instead of being re-populated per session. Names
// and codes follow the X11 keysymdef.h convention.
package keysym

import "fmt"

// named holds every symbolic key name that isn't a single printable
// character, keyed by its canonical X11 name.
var named = map[string]uint32{
	"BackSpace":  0xff08,
	"Tab":        0xff09,
	"Return":     0xff0d,
	"Enter":      0xff0d,
	"Pause":      0xff13,
	"Escape":     0xff1b,
	"Delete":     0xffff,
	"Home":       0xff50,
	"Left":       0xff51,
	"Up":         0xff52,
	"Right":      0xff53,
	"Down":       0xff54,
	"Page_Up":    0xff55,
	"Page_Down":  0xff56,
	"End":        0xff57,
	"Print":      0xff61,
	"Insert":     0xff63,
	"Menu":       0xff67,
	"Num_Lock":   0xff7f,
	"F1":         0xffbe,
	"F2":         0xffbf,
	"F3":         0xffc0,
	"F4":         0xffc1,
	"F5":         0xffc2,
	"F6":         0xffc3,
	"F7":         0xffc4,
	"F8":         0xffc5,
	"F9":         0xffc6,
	"F10":        0xffc7,
	"F11":        0xffc8,
	"F12":        0xffc9,
	"Shift_L":    0xffe1,
	"Shift_R":    0xffe2,
	"Control_L":  0xffe3,
	"Control_R":  0xffe4,
	"Caps_Lock":  0xffe5,
	"Meta_L":     0xffe7,
	"Meta_R":     0xffe8,
	"Alt_L":      0xffe9,
	"Alt_R":      0xffea,
	"Super_L":    0xffeb,
	"Super_R":    0xffec,

	"space":         0x0020,
	"exclam":        0x0021,
	"quotedbl":      0x0022,
	"numbersign":    0x0023,
	"dollar":        0x0024,
	"percent":       0x0025,
	"ampersand":     0x0026,
	"apostrophe":    0x0027,
	"parenleft":     0x0028,
	"parenright":    0x0029,
	"asterisk":      0x002a,
	"plus":          0x002b,
	"comma":         0x002c,
	"minus":         0x002d,
	"period":        0x002e,
	"slash":         0x002f,
	"colon":         0x003a,
	"semicolon":     0x003b,
	"less":          0x003c,
	"equal":         0x003d,
	"greater":       0x003e,
	"question":      0x003f,
	"at":            0x0040,
	"bracketleft":   0x005b,
	"backslash":     0x005c,
	"bracketright":  0x005d,
	"asciicircum":   0x005e,
	"underscore":    0x005f,
	"grave":         0x0060,
	"braceleft":     0x007b,
	"bar":           0x007c,
	"braceright":    0x007d,
	"asciitilde":    0x007e,
}

// aliases are friendlier short names for keys automation callers reach
// for constantly.
var aliases = map[string]string{
	"Ctrl":      "Control_L",
	"Alt":       "Alt_L",
	"Shift":     "Shift_L",
	"Cmd":       "Super_L",
	"Super":     "Super_L",
	"Esc":       "Escape",
	"Del":       "Delete",
	"Backspace": "BackSpace",
	"Space":     "space",
}

var table map[string]uint32

func init() {
	table = make(map[string]uint32, len(named)+96)
	for name, code := range named {
		table[name] = code
	}
	// Printable ASCII keysyms equal their code point directly, per the
	// X11 convention: 'a'-'z', 'A'-'Z', '0'-'9' resolve to themselves.
	for c := rune('0'); c <= '9'; c++ {
		table[string(c)] = uint32(c)
	}
	for c := rune('a'); c <= 'z'; c++ {
		table[string(c)] = uint32(c)
	}
	for c := rune('A'); c <= 'Z'; c++ {
		table[string(c)] = uint32(c)
	}
	// Space and punctuation keysyms equal their ASCII code point too
	// (XK_space == ' ', XK_exclam == '!', XK_at == '@', ...), so a
	// single-character string resolves the same way letters and digits do.
	for _, code := range named {
		if code >= 0x20 && code <= 0x7e {
			table[string(rune(code))] = code
		}
	}
	for alias, target := range aliases {
		code, ok := table[target]
		if !ok {
			panic(fmt.Sprintf("keysym: alias %q targets unknown key %q", alias, target))
		}
		table[alias] = code
	}
}

// Lookup resolves a symbolic key name (e.g. "Return", "Ctrl", a single
// character like "a" or "!", or a named key like "F1") to its X11
// keysym code.
func Lookup(name string) (uint32, bool) {
	code, ok := table[name]
	return code, ok
}
