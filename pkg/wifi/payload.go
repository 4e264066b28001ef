/*
Package wifi builds WIFI: payload strings as understood by phone camera
scanner apps.

 Grammar: WIFI:T:<WPA|WEP|nopass>;S:<ssid>;P:<password>;H:<true|false>;;

 The ssid and password fields are escaped so the field delimiters stay
 unambiguous. Open networks still emit an empty P: segment.
*/
package wifi

import (
	"fmt"
	"strings"

	qrgen "github.com/CtrlAltDefeat55/Advanced-QR-Code-Generator/pkg"
)

// The five characters that collide with the payload grammar.
var escaper = strings.NewReplacer(
	`\`, `\\`,
	`;`, `\;`,
	`,`, `\,`,
	`:`, `\:`,
	`"`, `\"`,
)

// Escape backslash-escapes the characters \ ; , : " so they survive
// inside an S: or P: segment.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Unescape reverses Escape. Scanner apps apply the same rule when
// reading a payload back.
func Unescape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	escaped := false
	for _, r := range s {
		if escaped {
			b.WriteRune(r)
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		b.WriteRune(r)
	}
	// A trailing lone backslash is kept as-is.
	if escaped {
		b.WriteRune('\\')
	}
	return b.String()
}

// BuildPayload produces the payload string for a credential. Pure
// function of its input: no side effects, nothing retained.
func BuildPayload(cred qrgen.WifiCredential) (string, error) {
	if err := cred.Validate(); err != nil {
		return "", err
	}

	hidden := "false"
	if cred.Hidden {
		hidden = "true"
	}

	return fmt.Sprintf("WIFI:T:%s;S:%s;P:%s;H:%s;;",
		cred.Security, Escape(cred.SSID), Escape(cred.Password), hidden), nil
}
