package control

import "unicode/utf8"

// escape sequences sent by terminals for navigation keys
var sequences = map[string]string{
	"\x1b[A":  "up",
	"\x1b[B":  "down",
	"\x1b[C":  "right",
	"\x1b[D":  "left",
	"\x1bOA":  "up",
	"\x1bOB":  "down",
	"\x1bOC":  "right",
	"\x1bOD":  "left",
	"\x1b[5~": "pgup",
	"\x1b[6~": "pgdown",
}

// ParseKeys converts raw terminal input into key names. Unknown sequences
// are skipped; a lone escape is reported as "escape".
func ParseKeys(data []byte) []string {
	var keys []string
	for i := 0; i < len(data); {
		if data[i] == 0x1b {
			if name, n := matchSequence(data[i:]); n > 0 {
				if name != "" {
					keys = append(keys, name)
				}
				i += n
				continue
			}
			keys = append(keys, "escape")
			i++
			continue
		}

		r, size := utf8.DecodeRune(data[i:])
		switch {
		case r == 3:
			keys = append(keys, "ctrl+c")
		case r >= 'A' && r <= 'Z':
			keys = append(keys, string(r-'A'+'a'))
		case r >= ' ' && r < utf8.RuneSelf:
			keys = append(keys, string(r))
		}
		i += size
	}
	return keys
}

// matchSequence matches a CSI or SS3 sequence at the start of data. It
// returns the key name ("" for an unbound sequence) and the bytes consumed,
// or 0 when data does not start a sequence.
func matchSequence(data []byte) (string, int) {
	if len(data) < 3 || (data[1] != '[' && data[1] != 'O') {
		return "", 0
	}
	for n := 3; n <= len(data) && n <= 4; n++ {
		if name, ok := sequences[string(data[:n])]; ok {
			return name, n
		}
	}
	// skip an unbound CSI sequence up to its final byte
	for n := 2; n < len(data); n++ {
		if data[n] >= 0x40 && data[n] <= 0x7e {
			return "", n + 1
		}
	}
	return "", len(data)
}

// ParseBytes converts raw terminal input into actions, dropping unbound
// keys.
func ParseBytes(data []byte) []Action {
	var actions []Action
	for _, k := range ParseKeys(data) {
		if a := KeyAction(k); a != None {
			actions = append(actions, a)
		}
	}
	return actions
}
