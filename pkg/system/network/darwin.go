package network

import (
	"strings"

	qrgen "github.com/CtrlAltDefeat55/Advanced-QR-Code-Generator/pkg"
)

// Private framework binary; present on stock macOS installs.
const airportPath = "/System/Library/PrivateFrameworks/Apple80211.framework/Versions/Current/Resources/airport"

var _ qrgen.NetworkInspector = AirportInspector{}

// AirportInspector prefers the airport utility and falls back to
// networksetup, which reports the SSID but not the security type.
type AirportInspector struct{}

func (AirportInspector) DetectCurrentNetwork() (qrgen.DetectedNetwork, bool) {
	if out, ok := runTool(airportPath, "-I"); ok {
		if n, found := parseAirportInfo(out); found {
			return n, true
		}
	}

	// networksetup needs the Wi-Fi device name first.
	out, ok := runTool("networksetup", "-listallhardwareports")
	if !ok {
		return qrgen.DetectedNetwork{}, false
	}

	device := parseWifiDevice(out)
	if device == "" {
		return qrgen.DetectedNetwork{}, false
	}

	out, ok = runTool("networksetup", "-getairportnetwork", device)
	if !ok {
		return qrgen.DetectedNetwork{}, false
	}

	return parseAirportNetwork(out)
}

func (AirportInspector) ScanNearbyNetworks() []qrgen.DetectedNetwork {
	out, ok := runTool(airportPath, "-s")
	if !ok {
		return []qrgen.DetectedNetwork{}
	}

	return parseAirportScan(out)
}

// parseAirportInfo reads `airport -I` key/value lines for the SSID and
// the link auth mode.
func parseAirportInfo(output string) (qrgen.DetectedNetwork, bool) {
	ssid := ""
	auth := ""

	for _, line := range strings.Split(output, "\n") {
		trimmed := strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(trimmed, "SSID:"); ok {
			ssid = strings.TrimSpace(rest)
		} else if rest, ok := strings.CutPrefix(trimmed, "link auth:"); ok {
			auth = strings.TrimSpace(rest)
		}
	}

	if ssid == "" {
		return qrgen.DetectedNetwork{}, false
	}

	return qrgen.DetectedNetwork{SSID: ssid, Security: MapSecurity(auth)}, true
}

// parseWifiDevice finds the device name of the Wi-Fi hardware port in
// `networksetup -listallhardwareports` output.
func parseWifiDevice(output string) string {
	isWifiPort := false

	for _, line := range strings.Split(output, "\n") {
		trimmed := strings.TrimSpace(line)

		if rest, ok := strings.CutPrefix(trimmed, "Hardware Port:"); ok {
			port := strings.TrimSpace(rest)
			isWifiPort = strings.Contains(port, "Wi-Fi") || strings.Contains(port, "AirPort")
			continue
		}

		if rest, ok := strings.CutPrefix(trimmed, "Device:"); ok && isWifiPort {
			return strings.TrimSpace(rest)
		}
	}

	return ""
}

// parseAirportNetwork reads "Current Wi-Fi Network: <ssid>". The tool
// does not report the security type, so it stays unknown.
func parseAirportNetwork(output string) (qrgen.DetectedNetwork, bool) {
	for _, line := range strings.Split(output, "\n") {
		rest, ok := strings.CutPrefix(strings.TrimSpace(line), "Current Wi-Fi Network:")
		if !ok {
			continue
		}

		ssid := strings.TrimSpace(rest)
		if ssid == "" {
			continue
		}

		return qrgen.DetectedNetwork{SSID: ssid, Security: qrgen.SecurityUnknown}, true
	}

	return qrgen.DetectedNetwork{}, false
}

// parseAirportScan parses the fixed-width table from `airport -s`
// using the header row for column positions.
func parseAirportScan(output string) []qrgen.DetectedNetwork {
	lines := []string{}
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, strings.TrimRight(line, "\r"))
		}
	}

	if len(lines) < 2 {
		return []qrgen.DetectedNetwork{}
	}

	header := lines[0]
	bssidCol := strings.Index(header, "BSSID")
	securityCol := strings.Index(header, "SECURITY")
	if bssidCol < 0 {
		return []qrgen.DetectedNetwork{}
	}

	var networks []qrgen.DetectedNetwork
	for _, line := range lines[1:] {
		if len(line) < bssidCol {
			continue
		}

		ssid := strings.TrimSpace(line[:bssidCol])

		security := ""
		if securityCol >= 0 && len(line) > securityCol {
			security = strings.TrimSpace(line[securityCol:])
		}

		networks = append(networks, qrgen.DetectedNetwork{
			SSID:     ssid,
			Security: MapSecurity(security),
		})
	}

	return dedupeBySSID(networks)
}
