package wifi

import (
	"testing"

	qrgen "github.com/CtrlAltDefeat55/Advanced-QR-Code-Generator/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPayload(t *testing.T) {
	tests := []struct {
		name string
		cred qrgen.WifiCredential
		want string
	}{
		{
			name: "wpa with specials in ssid and password",
			cred: qrgen.WifiCredential{SSID: "Home Net;1", Security: qrgen.SecurityWPA, Password: "p@ss:word"},
			want: `WIFI:T:WPA;S:Home Net\;1;P:p@ss\:word;H:false;;`,
		},
		{
			name: "open hidden network keeps empty P segment",
			cred: qrgen.WifiCredential{SSID: "Open", Security: qrgen.SecurityNone, Hidden: true},
			want: `WIFI:T:nopass;S:Open;P:;H:true;;`,
		},
		{
			name: "wep",
			cred: qrgen.WifiCredential{SSID: "legacy", Security: qrgen.SecurityWEP, Password: "abcde"},
			want: `WIFI:T:WEP;S:legacy;P:abcde;H:false;;`,
		},
		{
			name: "backslash and quote escaped",
			cred: qrgen.WifiCredential{SSID: `a\b"c`, Security: qrgen.SecurityWPA, Password: "x,y"},
			want: `WIFI:T:WPA;S:a\\b\"c;P:x\,y;H:false;;`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildPayload(tt.cred)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildPayloadValidation(t *testing.T) {
	tests := []struct {
		name string
		cred qrgen.WifiCredential
	}{
		{"empty ssid", qrgen.WifiCredential{Security: qrgen.SecurityWPA, Password: "secret"}},
		{"empty password for wpa", qrgen.WifiCredential{SSID: "net", Security: qrgen.SecurityWPA}},
		{"empty password for wep", qrgen.WifiCredential{SSID: "net", Security: qrgen.SecurityWEP}},
		{"password on open network", qrgen.WifiCredential{SSID: "net", Security: qrgen.SecurityNone, Password: "secret"}},
		{"unknown security", qrgen.WifiCredential{SSID: "net", Security: qrgen.SecurityUnknown}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := BuildPayload(tt.cred)
			require.Error(t, err)
			assert.Empty(t, out)

			var verr *qrgen.ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestEscapeRoundTrip(t *testing.T) {
	inputs := []string{
		`plain`,
		`semi;colon`,
		`comma,here`,
		`colon:here`,
		`quote"here`,
		`back\slash`,
		`all \ ; , : " at once`,
		`\\double\\`,
		``,
	}

	for _, in := range inputs {
		assert.Equal(t, in, Unescape(Escape(in)), "round trip of %q", in)
	}
}

func TestEscapeIndividualCharacters(t *testing.T) {
	cases := map[string]string{
		`;`: `\;`,
		`,`: `\,`,
		`:`: `\:`,
		`"`: `\"`,
		`\`: `\\`,
	}
	for in, want := range cases {
		assert.Equal(t, want, Escape(in))
	}
}
