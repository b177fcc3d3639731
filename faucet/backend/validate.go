package backend

import (
	"github.com/ethereum/go-ethereum/common"
)

// ValidAddress reports whether s is a usable recipient address:
// 40 hex digits with an optional "0x" prefix, either in a single case
// or in mixed case matching the EIP-55 checksum.
func ValidAddress(s string) bool {
	if len(s) == 40 {
		s = "0x" + s
	}
	if len(s) != 42 || s[0] != '0' || s[1] != 'x' {
		return false
	}
	var lower, upper bool
	for _, c := range s[2:] {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
			lower = true
		case c >= 'A' && c <= 'F':
			upper = true
		default:
			return false
		}
	}
	if lower && upper {
		return common.HexToAddress(s).Hex() == s
	}
	return true
}
