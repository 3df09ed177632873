package runfile

import (
	"fmt"
	"unicode/utf8"
)

// validateXMLName checks name against the XML 1.0 Name production.
func validateXMLName(name string) error {
	if name == "" {
		return fmt.Errorf("the empty string is not a valid name")
	}
	if !utf8.ValidString(name) {
		return fmt.Errorf("name contains invalid UTF-8")
	}
	for i, r := range name {
		if i == 0 {
			if !isNameStartChar(r) {
				return fmt.Errorf("name cannot begin with the '%c' character, hexadecimal value 0x%02X", r, r)
			}
			continue
		}
		if !isNameChar(r) {
			return fmt.Errorf("the '%c' character, hexadecimal value 0x%02X, cannot be included in a name", r, r)
		}
	}
	return nil
}

func isNameStartChar(r rune) bool {
	switch {
	case r == ':' || r == '_':
		return true
	case 'A' <= r && r <= 'Z', 'a' <= r && r <= 'z':
		return true
	case 0xC0 <= r && r <= 0xD6, 0xD8 <= r && r <= 0xF6, 0xF8 <= r && r <= 0x2FF:
		return true
	case 0x370 <= r && r <= 0x37D, 0x37F <= r && r <= 0x1FFF:
		return true
	case 0x200C <= r && r <= 0x200D, 0x2070 <= r && r <= 0x218F:
		return true
	case 0x2C00 <= r && r <= 0x2FEF, 0x3001 <= r && r <= 0xD7FF:
		return true
	case 0xF900 <= r && r <= 0xFDCF, 0xFDF0 <= r && r <= 0xFFFD:
		return true
	case 0x10000 <= r && r <= 0xEFFFF:
		return true
	}
	return false
}

func isNameChar(r rune) bool {
	switch {
	case isNameStartChar(r):
		return true
	case r == '-' || r == '.' || r == 0xB7:
		return true
	case '0' <= r && r <= '9':
		return true
	case 0x300 <= r && r <= 0x36F, 0x203F <= r && r <= 0x2040:
		return true
	}
	return false
}
