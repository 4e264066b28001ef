/*
Package network detects the host's Wi-Fi surroundings by invoking
platform network tooling and parsing its text output.

 One inspector per platform, selected once at startup:

   linux    nmcli
   darwin   airport, with networksetup as fallback
   windows  netsh

 Detection is read-only and best-effort. A missing tool, a bad exit
 status or output we don't recognise all collapse to "no information
 available" rather than an error; the surrounding UI is designed around
 manual fallback.
*/
package network

import (
	"bytes"
	"os/exec"
	"runtime"

	qrgen "github.com/CtrlAltDefeat55/Advanced-QR-Code-Generator/pkg"
)

// NewNetworkInspector picks the inspector for the current platform.
func NewNetworkInspector() qrgen.NetworkInspector {
	return inspectorForPlatform(runtime.GOOS)
}

func inspectorForPlatform(goos string) qrgen.NetworkInspector {
	switch goos {
	case "linux":
		return NmcliInspector{}
	case "darwin":
		return AirportInspector{}
	case "windows":
		return NetshInspector{}
	default:
		return NoopInspector{}
	}
}

// runTool executes a command and returns its stdout, or ok=false on
// any failure (tool missing, non-zero exit). Blocks until the tool
// finishes; a radio scan can take several seconds.
func runTool(name string, args ...string) (string, bool) {
	if _, err := exec.LookPath(name); err != nil {
		return "", false
	}

	cmd := exec.Command(name, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "", false
	}

	return out.String(), true
}

// dedupeBySSID keeps the first occurrence of each SSID, preserving
// tool order and dropping empty names.
func dedupeBySSID(networks []qrgen.DetectedNetwork) []qrgen.DetectedNetwork {
	seen := map[string]bool{}
	deduped := []qrgen.DetectedNetwork{}
	for _, n := range networks {
		if n.SSID == "" || seen[n.SSID] {
			continue
		}
		seen[n.SSID] = true
		deduped = append(deduped, n)
	}
	return deduped
}
