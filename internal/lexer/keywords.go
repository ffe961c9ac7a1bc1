package lexer

// keywords are the reserved identifiers of the surface grammar. ByStr /
// ByStrN are handled separately in the scanner because ByStrN carries a
// numeric suffix that isn't part of a fixed keyword table.
var keywords = map[string]TokenType{
	"contract":       KW_CONTRACT,
	"field":          KW_FIELD,
	"transition":     KW_TRANSITION,
	"procedure":      KW_PROCEDURE,
	"library":        KW_LIBRARY,
	"import":         KW_IMPORT,
	"scilla_version": KW_SCILLA_VERSION,
	"with":           KW_WITH,
	"end":            KW_END,
	"let":            KW_LET,
	"in":             KW_IN,
	"match":          KW_MATCH,
	"fun":            KW_FUN,
	"tfun":           KW_TFUN,
	"forall":         KW_FORALL,
	"type":           KW_TYPE,
	"of":             KW_OF,
	"True":           KW_TRUE,
	"False":          KW_FALSE,
	"Map":            KW_MAP,
	"List":           KW_LIST,
	"Option":         KW_OPTION,
	"Pair":           KW_PAIR,
}

// lookupIdentifier classifies a scanned identifier lexeme, recognizing the
// ByStr / ByStrN<digits> family before falling back to the keyword table.
func lookupIdentifier(text string) (TokenType, int) {
	if text == "ByStr" {
		return KW_BYSTR, 0
	}
	if n, ok := byStrN(text); ok {
		return KW_BYSTRN, n
	}
	if tt, ok := keywords[text]; ok {
		return tt, 0
	}
	return IDENT, 0
}

// byStrN reports whether text is "ByStr" followed by one or more digits,
// returning the parsed length. A length of 0 is accepted lexically; the
// type parser rejects it (every ByStrN must have n >= 1).
func byStrN(text string) (int, bool) {
	const prefix = "ByStr"
	if len(text) <= len(prefix) || text[:len(prefix)] != prefix {
		return 0, false
	}
	digits := text[len(prefix):]
	n := 0
	for _, c := range digits {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
