package network

import (
	"testing"

	qrgen "github.com/CtrlAltDefeat55/Advanced-QR-Code-Generator/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const netshInterfacesOutput = `
There is 1 interface on the system:

    Name                   : Wi-Fi
    Description            : Intel(R) Wi-Fi 6 AX201
    GUID                   : 12345678-1234-1234-1234-123456789abc
    Physical address       : aa:bb:cc:dd:ee:ff
    State                  : connected
    SSID                   : Home Net
    BSSID                  : a0:b1:c2:d3:e4:f5
    Network type           : Infrastructure
    Radio type             : 802.11ax
    Authentication         : WPA2-Personal
    Cipher                 : CCMP
    Connection mode        : Auto Connect
    Channel                : 36
    Receive rate (Mbps)    : 866.7
    Transmit rate (Mbps)   : 866.7
    Signal                 : 84%
`

func TestParseNetshInterfaces(t *testing.T) {
	n, found := parseNetshInterfaces(netshInterfacesOutput)

	require.True(t, found)
	assert.Equal(t, "Home Net", n.SSID)
	assert.Equal(t, qrgen.SecurityWPA, n.Security)
}

func TestParseNetshInterfacesDisconnected(t *testing.T) {
	out := `
There is 1 interface on the system:

    Name                   : Wi-Fi
    State                  : disconnected
`
	_, found := parseNetshInterfaces(out)
	assert.False(t, found)
}

const netshNetworksOutput = `
Interface name : Wi-Fi
There are 3 networks currently visible.

SSID 1 : Home Net
    Network type            : Infrastructure
    Authentication          : WPA2-Personal
    Encryption              : CCMP

    BSSID 1                 : a0:b1:c2:d3:e4:f5
         Signal             : 84%

SSID 2 : CoffeeShop
    Network type            : Infrastructure
    Authentication          : Open
    Encryption              : None

SSID 3 : Home Net
    Network type            : Infrastructure
    Authentication          : WPA2-Personal
    Encryption              : CCMP
`

func TestParseNetshNetworks(t *testing.T) {
	got := parseNetshNetworks(netshNetworksOutput)

	assert.Equal(t, []qrgen.DetectedNetwork{
		{SSID: "Home Net", Security: qrgen.SecurityWPA},
		{SSID: "CoffeeShop", Security: qrgen.SecurityNone},
	}, got)
}

func TestParseNetshNetworksEmpty(t *testing.T) {
	assert.Empty(t, parseNetshNetworks(""))
	assert.Empty(t, parseNetshNetworks("There are 0 networks currently visible.\n"))
}
