package network

import (
	"strings"

	qrgen "github.com/CtrlAltDefeat55/Advanced-QR-Code-Generator/pkg"
	"github.com/mdlayher/wifi"
)

var _ qrgen.NetworkInspector = NmcliInspector{}

// NmcliInspector reads Wi-Fi state through NetworkManager's nmcli in
// terse (-t) mode.
type NmcliInspector struct{}

func (NmcliInspector) DetectCurrentNetwork() (qrgen.DetectedNetwork, bool) {
	if !hasWirelessInterface() {
		return qrgen.DetectedNetwork{}, false
	}

	out, ok := runTool("nmcli", "-t", "-f", "active,ssid,security", "dev", "wifi")
	if !ok {
		return qrgen.DetectedNetwork{}, false
	}

	return parseNmcliActive(out)
}

func (NmcliInspector) ScanNearbyNetworks() []qrgen.DetectedNetwork {
	if !hasWirelessInterface() {
		return []qrgen.DetectedNetwork{}
	}

	out, ok := runTool("nmcli", "-t", "-f", "ssid,security", "dev", "wifi")
	if !ok {
		return []qrgen.DetectedNetwork{}
	}

	return parseNmcliScan(out)
}

// hasWirelessInterface checks via netlink that the host has at least
// one 802.11 interface before shelling out for a scan.
func hasWirelessInterface() bool {
	client, err := wifi.New()
	if err != nil {
		// No nl80211 support; let nmcli decide for itself.
		return true
	}
	defer client.Close()

	interfaces, err := client.Interfaces()
	if err != nil {
		return true
	}

	return len(interfaces) > 0
}

func parseNmcliActive(output string) (qrgen.DetectedNetwork, bool) {
	for _, line := range strings.Split(output, "\n") {
		fields := splitNmcliLine(line)
		if len(fields) < 2 || fields[0] != "yes" {
			continue
		}

		security := ""
		if len(fields) > 2 {
			security = fields[2]
		}

		if fields[1] == "" {
			continue
		}

		return qrgen.DetectedNetwork{
			SSID:     fields[1],
			Security: MapSecurity(security),
		}, true
	}

	return qrgen.DetectedNetwork{}, false
}

func parseNmcliScan(output string) []qrgen.DetectedNetwork {
	var networks []qrgen.DetectedNetwork

	for _, line := range strings.Split(output, "\n") {
		fields := splitNmcliLine(line)
		if len(fields) == 0 || fields[0] == "" {
			continue
		}

		security := ""
		if len(fields) > 1 {
			security = fields[1]
		}

		networks = append(networks, qrgen.DetectedNetwork{
			SSID:     fields[0],
			Security: MapSecurity(security),
		})
	}

	return dedupeBySSID(networks)
}

// splitNmcliLine splits a terse-mode nmcli line on unescaped colons.
// nmcli escapes ':' and '\' inside field values with a backslash.
func splitNmcliLine(line string) []string {
	line = strings.TrimRight(line, "\r")
	if line == "" {
		return nil
	}

	var fields []string
	var b strings.Builder
	escaped := false
	for _, r := range line {
		switch {
		case escaped:
			b.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == ':':
			fields = append(fields, b.String())
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	fields = append(fields, b.String())
	return fields
}
