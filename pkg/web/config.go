package web

import (
	"encoding/json"
	"net/http"

	qrgen "github.com/CtrlAltDefeat55/Advanced-QR-Code-Generator/pkg"
)

func (t API) getConfig(w http.ResponseWriter, r *http.Request) {
	sendResponse(w, map[string]any{
		"success": true,
		"config":  t.appConfig(),
	})
}

func (t API) putConfig(w http.ResponseWriter, r *http.Request) {
	var cfg qrgen.AppConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "Error parsing JSON")
		return
	}
	defer r.Body.Close()

	if err := t.prefs.Save(cfg); err != nil {
		sendErrorResponse(w, http.StatusInternalServerError, "Failed to save config")
		return
	}

	sendResponse(w, map[string]bool{"success": true})
}

func (t API) getPresets(w http.ResponseWriter, r *http.Request) {
	presets, err := t.presets.All()
	if err != nil {
		sendErrorResponse(w, http.StatusInternalServerError, "Failed to load presets")
		return
	}

	sendResponse(w, map[string]any{
		"success": true,
		"presets": presets,
	})
}

func (t API) putPreset(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	var preset qrgen.ColorPreset
	if err := json.NewDecoder(r.Body).Decode(&preset); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "Error parsing JSON")
		return
	}
	defer r.Body.Close()

	if err := t.presets.Set(name, preset); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	sendResponse(w, map[string]bool{"success": true})
}

func (t API) deletePreset(w http.ResponseWriter, r *http.Request) {
	if err := t.presets.Delete(r.PathValue("name")); err != nil {
		sendErrorResponse(w, http.StatusInternalServerError, "Failed to delete preset")
		return
	}

	sendResponse(w, map[string]bool{"success": true})
}

func (t API) getHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := t.history.List()
	if err != nil {
		sendErrorResponse(w, http.StatusInternalServerError, "Failed to load history")
		return
	}

	sendResponse(w, map[string]any{
		"success": true,
		"history": entries,
	})
}

func (t API) clearHistory(w http.ResponseWriter, r *http.Request) {
	if err := t.history.Clear(); err != nil {
		sendErrorResponse(w, http.StatusInternalServerError, "Failed to clear history")
		return
	}

	sendResponse(w, map[string]bool{"success": true})
}
