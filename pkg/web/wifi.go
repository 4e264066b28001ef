package web

import (
	"encoding/json"
	"errors"
	"net/http"

	qrgen "github.com/CtrlAltDefeat55/Advanced-QR-Code-Generator/pkg"
	"github.com/CtrlAltDefeat55/Advanced-QR-Code-Generator/pkg/wifi"
)

type wifiRequest struct {
	SSID     string `json:"ssid"`
	Security string `json:"security"`
	Password string `json:"password"`
	Hidden   bool   `json:"hidden"`
}

func (r wifiRequest) credential() qrgen.WifiCredential {
	return qrgen.WifiCredential{
		SSID:     r.SSID,
		Security: qrgen.SecurityType(r.Security),
		Password: r.Password,
		Hidden:   r.Hidden,
	}
}

func (t API) buildWifiPayload(w http.ResponseWriter, r *http.Request) {
	var req wifiRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "Error parsing JSON")
		return
	}
	defer r.Body.Close()

	payload, err := wifi.BuildPayload(req.credential())
	if err != nil {
		var verr *qrgen.ValidationError
		if errors.As(err, &verr) {
			sendErrorResponse(w, http.StatusBadRequest, verr.Error())
			return
		}
		sendErrorResponse(w, http.StatusInternalServerError, "Failed to build payload")
		return
	}

	sendResponse(w, map[string]any{
		"success": true,
		"payload": payload,
	})
}
