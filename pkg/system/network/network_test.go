package network

import (
	"testing"

	qrgen "github.com/CtrlAltDefeat55/Advanced-QR-Code-Generator/pkg"
	"github.com/stretchr/testify/assert"
)

func TestInspectorForPlatform(t *testing.T) {
	assert.IsType(t, NmcliInspector{}, inspectorForPlatform("linux"))
	assert.IsType(t, AirportInspector{}, inspectorForPlatform("darwin"))
	assert.IsType(t, NetshInspector{}, inspectorForPlatform("windows"))
	assert.IsType(t, NoopInspector{}, inspectorForPlatform("plan9"))
}

func TestNoopInspector(t *testing.T) {
	var inspector qrgen.NetworkInspector = NoopInspector{}

	n, found := inspector.DetectCurrentNetwork()
	assert.False(t, found)
	assert.Equal(t, qrgen.DetectedNetwork{}, n)

	assert.Empty(t, inspector.ScanNearbyNetworks())
}

func TestRunToolMissingBinary(t *testing.T) {
	out, ok := runTool("definitely-not-a-real-network-tool")
	assert.False(t, ok)
	assert.Empty(t, out)
}

func TestDedupeBySSID(t *testing.T) {
	in := []qrgen.DetectedNetwork{
		{SSID: "a", Security: qrgen.SecurityWPA},
		{SSID: "", Security: qrgen.SecurityNone},
		{SSID: "b", Security: qrgen.SecurityWEP},
		{SSID: "a", Security: qrgen.SecurityNone},
	}

	got := dedupeBySSID(in)

	assert.Equal(t, []qrgen.DetectedNetwork{
		{SSID: "a", Security: qrgen.SecurityWPA},
		{SSID: "b", Security: qrgen.SecurityWEP},
	}, got)
}

func TestMapSecurity(t *testing.T) {
	tests := []struct {
		in   string
		want qrgen.SecurityType
	}{
		{"WPA2-Personal", qrgen.SecurityWPA},
		{"wpa3-sae", qrgen.SecurityWPA},
		{"WPA1 WPA2", qrgen.SecurityWPA},
		{"WEP", qrgen.SecurityWEP},
		{"wep40", qrgen.SecurityWEP},
		{"Open", qrgen.SecurityNone},
		{"none", qrgen.SecurityNone},
		{"", qrgen.SecurityNone},
		{"--", qrgen.SecurityNone},
		{"802.1X", qrgen.SecurityUnknown},
		{"something-new", qrgen.SecurityUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MapSecurity(tt.in), "mapping %q", tt.in)
	}
}
