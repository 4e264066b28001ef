package network

import (
	"testing"

	qrgen "github.com/CtrlAltDefeat55/Advanced-QR-Code-Generator/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const airportInfoOutput = `     agrCtlRSSI: -54
     agrExtRSSI: 0
    agrCtlNoise: -94
          state: running
        op mode: station
     lastTxRate: 867
           BSSID: a0:b1:c2:d3:e4:f5
           SSID: Home Net
            MCS: 9
        channel: 36,80
      link auth: wpa2-psk
`

func TestParseAirportInfo(t *testing.T) {
	n, found := parseAirportInfo(airportInfoOutput)

	require.True(t, found)
	assert.Equal(t, "Home Net", n.SSID)
	assert.Equal(t, qrgen.SecurityWPA, n.Security)
}

func TestParseAirportInfoNotAssociated(t *testing.T) {
	out := `     agrCtlRSSI: 0
          state: init
        op mode:
`
	_, found := parseAirportInfo(out)
	assert.False(t, found)
}

func TestParseWifiDevice(t *testing.T) {
	out := `Hardware Port: Ethernet
Device: en1
Ethernet Address: 00:11:22:33:44:55

Hardware Port: Wi-Fi
Device: en0
Ethernet Address: 66:77:88:99:aa:bb

Hardware Port: Bluetooth PAN
Device: en3
Ethernet Address: cc:dd:ee:ff:00:11
`
	assert.Equal(t, "en0", parseWifiDevice(out))
}

func TestParseWifiDeviceNoWifiPort(t *testing.T) {
	out := `Hardware Port: Ethernet
Device: en1
Ethernet Address: 00:11:22:33:44:55
`
	assert.Equal(t, "", parseWifiDevice(out))
}

func TestParseAirportNetwork(t *testing.T) {
	n, found := parseAirportNetwork("Current Wi-Fi Network: Home Net\n")

	require.True(t, found)
	assert.Equal(t, "Home Net", n.SSID)
	// networksetup does not report security, so it stays unknown.
	assert.Equal(t, qrgen.SecurityUnknown, n.Security)

	_, found = parseAirportNetwork("You are not associated with an AirPort network.\n")
	assert.False(t, found)
}

func TestParseAirportScan(t *testing.T) {
	out := `                            SSID BSSID             RSSI CHANNEL HT CC SECURITY (auth/unicast/group)
                        Home Net a0:b1:c2:d3:e4:f5 -54  36,80   Y  US WPA2(PSK/AES/AES)
                      CoffeeShop 11:22:33:44:55:66 -70  6       Y  -- NONE
                        Home Net a0:b1:c2:d3:e4:f6 -61  11      Y  US WPA2(PSK/AES/AES)
                          Legacy 77:88:99:aa:bb:cc -80  1       N  -- WEP
`
	got := parseAirportScan(out)

	assert.Equal(t, []qrgen.DetectedNetwork{
		{SSID: "Home Net", Security: qrgen.SecurityWPA},
		{SSID: "CoffeeShop", Security: qrgen.SecurityNone},
		{SSID: "Legacy", Security: qrgen.SecurityWEP},
	}, got)
}

func TestParseAirportScanEmpty(t *testing.T) {
	assert.Empty(t, parseAirportScan(""))
	assert.Empty(t, parseAirportScan("no networks found\n"))
}
