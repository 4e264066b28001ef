package network

import (
	"strings"

	qrgen "github.com/CtrlAltDefeat55/Advanced-QR-Code-Generator/pkg"
)

// MapSecurity maps a platform tool's security/encryption string onto
// the payload vocabulary. Tool vocabularies vary between versions, so
// matching is contains-based on the lowered string; anything we don't
// recognise is reported as unknown rather than guessed.
func MapSecurity(s string) qrgen.SecurityType {
	l := strings.ToLower(strings.TrimSpace(s))

	switch {
	case l == "" || l == "--" || l == "none":
		return qrgen.SecurityNone
	case strings.Contains(l, "wep"):
		return qrgen.SecurityWEP
	case strings.Contains(l, "wpa") || strings.Contains(l, "rsn") || strings.Contains(l, "sae"):
		// Covers WPA/WPA2/WPA3, personal and enterprise.
		return qrgen.SecurityWPA
	case strings.Contains(l, "open"):
		return qrgen.SecurityNone
	default:
		return qrgen.SecurityUnknown
	}
}
