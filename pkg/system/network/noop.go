package network

import (
	qrgen "github.com/CtrlAltDefeat55/Advanced-QR-Code-Generator/pkg"
)

var _ qrgen.NetworkInspector = NoopInspector{}

// NoopInspector serves platforms with no supported network tool.
// Everything reports not found.
type NoopInspector struct{}

func (NoopInspector) DetectCurrentNetwork() (qrgen.DetectedNetwork, bool) {
	return qrgen.DetectedNetwork{}, false
}

func (NoopInspector) ScanNearbyNetworks() []qrgen.DetectedNetwork {
	return []qrgen.DetectedNetwork{}
}
