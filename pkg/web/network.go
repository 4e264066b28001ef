package web

import (
	"net/http"
)

func (t API) getCurrentNetwork(w http.ResponseWriter, r *http.Request) {
	// Blocks for the duration of the tool invocation; the UI calls
	// this off its interaction path.
	network, found := t.inspector.DetectCurrentNetwork()

	if !found {
		sendResponse(w, map[string]any{
			"success": true,
			"found":   false,
		})
		return
	}

	sendResponse(w, map[string]any{
		"success": true,
		"found":   true,
		"network": network,
	})
}

func (t API) scanNetworks(w http.ResponseWriter, r *http.Request) {
	sendResponse(w, map[string]any{
		"success":  true,
		"networks": t.inspector.ScanNearbyNetworks(),
	})
}
