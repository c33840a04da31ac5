package cmd

// Tokenize splits raw command text into positional tokens and flag tokens.
// Flags are introduced by "-x" (one-character name) or "--name"; a flag may
// appear more than once and each occurrence appends to its value list in
// encounter order. Double quotes group spaces into one token and a backslash
// escapes the next character verbatim.
//
// Tokenize never fails: an unterminated quote or a dangling escape is
// absorbed rather than rejected. It performs no type interpretation and
// keeps no state between calls.
func Tokenize(content string) (args []string, flags map[string][]string) {
	flags = make(map[string][]string)

	var (
		quoted     bool
		escaped    bool
		dash       bool
		doubleDash bool
		name       string
		value      string
	)

	// commit flushes the pending token: a value for the pending flag name,
	// or a positional token when the value buffer is non-empty.
	commit := func() {
		if name != "" {
			flags[name] = append(flags[name], value)
		} else if value != "" {
			args = append(args, value)
		}
		name, value = "", ""
	}

	for _, c := range content {
		switch {
		case c == '\\' && !escaped:
			escaped = true
		case escaped:
			value += string(c)
			escaped = false
		case c == '"' && !quoted:
			quoted = true
		case c == '"':
			quoted = false
			commit()
		case c == '-' && !dash && value == "" && !quoted:
			if name != "" {
				// A new flag begins while another is still waiting for a
				// value; record the pending one as bare.
				flags[name] = append(flags[name], "")
				name = ""
			}
			dash = true
		case c == '-' && !doubleDash && value == "" && !quoted:
			doubleDash = true
		case doubleDash && c != ' ':
			name += string(c)
		case dash && c != ' ':
			name = string(c)
			dash = false
		case c == ' ':
			if doubleDash && name == "" {
				args = append(args, "--")
			} else if dash && name == "" {
				args = append(args, "-")
			}
			wasDash := dash || doubleDash
			dash, doubleDash = false, false
			switch {
			case wasDash:
				// The flag name (if any) waits for its value.
			case name != "" && value == "":
				// Named flag with no value yet; keep waiting.
			case quoted:
				value += " "
			default:
				commit()
			}
		default:
			value += string(c)
		}
	}

	commit()
	return args, flags
}
