package ast

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// DecodeByStr decodes a 0x-prefixed hex literal, as produced by a ByStr
// value in source, into raw bytes. It performs no length validation
// against a ByStrNType — that check, if wanted, is the caller's
// responsibility, since the parser itself treats initializer literals as
// opaque and never inspects them.
func DecodeByStr(lit string) ([]byte, error) {
	trimmed := strings.TrimPrefix(lit, "0x")
	trimmed = strings.TrimPrefix(trimmed, "0X")
	if trimmed == lit {
		return nil, fmt.Errorf("scilla: byte string literal %q missing 0x prefix", lit)
	}
	b, err := hex.DecodeString(trimmed)
	if err != nil {
		return nil, fmt.Errorf("scilla: invalid byte string literal %q: %w", lit, err)
	}
	return b, nil
}
