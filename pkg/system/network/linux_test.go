package network

import (
	"testing"

	qrgen "github.com/CtrlAltDefeat55/Advanced-QR-Code-Generator/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNmcliActive(t *testing.T) {
	out := "no:Neighbours:WPA2\n" +
		"yes:Home Net:WPA2\n" +
		"no:CoffeeShop:\n"

	n, found := parseNmcliActive(out)

	require.True(t, found)
	assert.Equal(t, "Home Net", n.SSID)
	assert.Equal(t, qrgen.SecurityWPA, n.Security)
}

func TestParseNmcliActiveEscapedColons(t *testing.T) {
	// nmcli escapes ':' inside field values with a backslash.
	out := `yes:Cafe\: Nine:WPA1 WPA2` + "\n"

	n, found := parseNmcliActive(out)

	require.True(t, found)
	assert.Equal(t, "Cafe: Nine", n.SSID)
	assert.Equal(t, qrgen.SecurityWPA, n.Security)
}

func TestParseNmcliActiveNothingConnected(t *testing.T) {
	out := "no:Neighbours:WPA2\nno:Other:WEP\n"

	_, found := parseNmcliActive(out)

	assert.False(t, found)
}

func TestParseNmcliActiveGarbage(t *testing.T) {
	_, found := parseNmcliActive("not nmcli output at all\n")
	assert.False(t, found)

	_, found = parseNmcliActive("")
	assert.False(t, found)
}

func TestParseNmcliScan(t *testing.T) {
	out := "Home Net:WPA2\n" +
		"CoffeeShop:\n" +
		"Home Net:WPA2\n" +
		"Legacy:WEP\n" +
		":WPA2\n" +
		"Office:802.1X\n"

	got := parseNmcliScan(out)

	assert.Equal(t, []qrgen.DetectedNetwork{
		{SSID: "Home Net", Security: qrgen.SecurityWPA},
		{SSID: "CoffeeShop", Security: qrgen.SecurityNone},
		{SSID: "Legacy", Security: qrgen.SecurityWEP},
		{SSID: "Office", Security: qrgen.SecurityUnknown},
	}, got)
}

func TestSplitNmcliLine(t *testing.T) {
	assert.Equal(t, []string{"yes", "Home", "WPA2"}, splitNmcliLine("yes:Home:WPA2"))
	assert.Equal(t, []string{"a:b", "c"}, splitNmcliLine(`a\:b:c`))
	assert.Equal(t, []string{`a\b`, "c"}, splitNmcliLine(`a\\b:c`))
	assert.Nil(t, splitNmcliLine(""))
	assert.Equal(t, []string{"one"}, splitNmcliLine("one\r"))
}
