/*
Core types shared across the generator.

 The UI layer (CLI, localhost web UI) builds a WifiCredential from form
 fields, asks pkg/wifi for a WIFI: payload string, and hands the result
 to pkg/qr for rendering.  The NetworkInspector pre-fills those form
 fields by asking the host OS what it is connected to.  Nothing here is
 persisted except user preferences and a payload-free history trail.
*/
package qrgen

import "fmt"

// SecurityType is the security vocabulary understood by Wi-Fi QR
// scanner apps. WPA covers WPA/WPA2/WPA3.
type SecurityType string

const (
	SecurityWPA     SecurityType = "WPA"
	SecurityWEP     SecurityType = "WEP"
	SecurityNone    SecurityType = "nopass"
	SecurityUnknown SecurityType = "unknown"
)

// WifiCredential is built transiently from user-supplied fields and
// consumed once to produce a payload string. Never persisted.
type WifiCredential struct {
	SSID     string
	Security SecurityType
	Password string
	Hidden   bool
}

// Validate checks the credential before payload construction.
// The password must be empty exactly when Security is nopass.
func (c WifiCredential) Validate() error {
	if c.SSID == "" {
		return &ValidationError{Field: "ssid", Reason: "must not be empty"}
	}
	switch c.Security {
	case SecurityWPA, SecurityWEP:
		if c.Password == "" {
			return &ValidationError{Field: "password", Reason: fmt.Sprintf("must not be empty for %s networks", c.Security)}
		}
	case SecurityNone:
		if c.Password != "" {
			return &ValidationError{Field: "password", Reason: "must be empty for open networks"}
		}
	default:
		return &ValidationError{Field: "security", Reason: fmt.Sprintf("unsupported security type %q", c.Security)}
	}
	return nil
}

// ValidationError reports a rejected user-supplied field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// DetectedNetwork is produced by querying the OS, read-only, and
// discarded after populating UI fields.
type DetectedNetwork struct {
	SSID     string       `json:"ssid"`
	Security SecurityType `json:"security"`
}

// see ./system/network/ for implementations

// NetworkInspector asks the host OS about Wi-Fi networks by invoking
// platform network tooling. Both operations are best-effort: any
// failure (missing tool, bad exit, unparseable output, unsupported
// platform) collapses to a not-found / empty result so the UI can fall
// back to manual entry.
type NetworkInspector interface {
	// DetectCurrentNetwork reports the currently connected network,
	// or false if nothing could be determined.
	DetectCurrentNetwork() (DetectedNetwork, bool)

	// ScanNearbyNetworks lists nearby SSIDs in tool order, deduplicated
	// by SSID. A fresh scan is performed on every call. May be empty.
	ScanNearbyNetworks() []DetectedNetwork
}
