package network

import (
	"strings"

	qrgen "github.com/CtrlAltDefeat55/Advanced-QR-Code-Generator/pkg"
)

var _ qrgen.NetworkInspector = NetshInspector{}

// NetshInspector reads Wi-Fi state through the Windows WLAN AutoConfig
// service via netsh.
type NetshInspector struct{}

func (NetshInspector) DetectCurrentNetwork() (qrgen.DetectedNetwork, bool) {
	out, ok := runTool("netsh", "wlan", "show", "interfaces")
	if !ok {
		return qrgen.DetectedNetwork{}, false
	}

	return parseNetshInterfaces(out)
}

func (NetshInspector) ScanNearbyNetworks() []qrgen.DetectedNetwork {
	out, ok := runTool("netsh", "wlan", "show", "networks", "mode=bssid")
	if !ok {
		return []qrgen.DetectedNetwork{}
	}

	return parseNetshNetworks(out)
}

// parseNetshInterfaces picks the SSID and Authentication lines out of
// `netsh wlan show interfaces`. The BSSID line also contains "SSID"
// and must be skipped.
func parseNetshInterfaces(output string) (qrgen.DetectedNetwork, bool) {
	ssid := ""
	auth := ""

	for _, line := range strings.Split(output, "\n") {
		trimmed := strings.TrimSpace(line)

		key, value, found := strings.Cut(trimmed, ":")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch {
		case key == "SSID":
			ssid = value
		case strings.EqualFold(key, "Authentication"):
			auth = value
		}
	}

	if ssid == "" {
		return qrgen.DetectedNetwork{}, false
	}

	return qrgen.DetectedNetwork{SSID: ssid, Security: MapSecurity(auth)}, true
}

// parseNetshNetworks pairs each "SSID n : <name>" heading in
// `netsh wlan show networks mode=bssid` with the Authentication line
// that follows it.
func parseNetshNetworks(output string) []qrgen.DetectedNetwork {
	var networks []qrgen.DetectedNetwork
	ssid := ""

	for _, line := range strings.Split(output, "\n") {
		trimmed := strings.TrimSpace(line)

		key, value, found := strings.Cut(trimmed, ":")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch {
		case strings.HasPrefix(key, "SSID "):
			ssid = value
		case strings.EqualFold(key, "Authentication") && ssid != "":
			networks = append(networks, qrgen.DetectedNetwork{
				SSID:     ssid,
				Security: MapSecurity(value),
			})
			ssid = ""
		}
	}

	return dedupeBySSID(networks)
}
