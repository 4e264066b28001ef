/*
Package web is the localhost HTTP surface consumed by the UI layer.
It exposes payload building, network detection, QR generation, the
preferences file, color presets and the payload-free history trail.
*/
package web

import (
	"fmt"
	"log"
	"net/http"

	qrgen "github.com/CtrlAltDefeat55/Advanced-QR-Code-Generator/pkg"
	"github.com/CtrlAltDefeat55/Advanced-QR-Code-Generator/pkg/confdb"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

func RESTAPI(
	config qrgen.ServerConfig,
	inspector qrgen.NetworkInspector,
	prefs *confdb.JSONFile[qrgen.AppConfig],
	history *qrgen.History,
	presets *qrgen.Presets,
) API {
	a := API{
		mux:       http.NewServeMux(),
		config:    config,
		inspector: inspector,
		prefs:     prefs,
		history:   history,
		presets:   presets,
	}

	routes := map[string]http.HandlerFunc{
		"POST /wifi/payload": a.buildWifiPayload,

		"GET /network/current": a.getCurrentNetwork,
		"GET /network/scan":    a.scanNetworks,

		"POST /qr/generate": a.generateQR,
		"/ws/preview":       a.getPreviewSocket,

		"GET /config": a.getConfig,
		"PUT /config": a.putConfig,

		"GET /config/presets":           a.getPresets,
		"PUT /config/presets/{name}":    a.putPreset,
		"DELETE /config/presets/{name}": a.deletePreset,

		"GET /history":    a.getHistory,
		"DELETE /history": a.clearHistory,

		"GET /system/info":    a.getSystemInfo,
		"GET /system/updates": a.getUpdates,
	}

	if config.UiDir != "" {
		routes["/"] = serveSPA(config.UiDir, "index.html")
	}

	for p, h := range routes {
		a.mux.HandleFunc(p, h)
	}
	log.Printf("Loaded %d API routes", len(routes))

	return a
}

type API struct {
	mux       *http.ServeMux
	config    qrgen.ServerConfig
	inspector qrgen.NetworkInspector
	prefs     *confdb.JSONFile[qrgen.AppConfig]
	history   *qrgen.History
	presets   *qrgen.Presets
}

// ListenAndServe blocks serving the API until the process exits.
func (t API) ListenAndServe() error {
	handler := cors.AllowAll().Handler(t.mux)
	addr := fmt.Sprintf("%s:%d", t.config.Bind, t.config.Port)

	logrus.WithField("addr", addr).Info("Serving UI API")
	return http.ListenAndServe(addr, handler)
}

func (t API) appConfig() qrgen.AppConfig {
	return t.prefs.LoadOr(qrgen.DefaultAppConfig())
}
