package main

import (
	"os"
	"path/filepath"

	qrgen "github.com/CtrlAltDefeat55/Advanced-QR-Code-Generator/pkg"
	"github.com/CtrlAltDefeat55/Advanced-QR-Code-Generator/pkg/confdb"
	"github.com/CtrlAltDefeat55/Advanced-QR-Code-Generator/pkg/system/network"
	"github.com/CtrlAltDefeat55/Advanced-QR-Code-Generator/pkg/web"
	"github.com/sirupsen/logrus"
)

type server struct {
	config qrgen.ServerConfig
}

func Server(config qrgen.ServerConfig) server {
	return server{config}
}

func (t server) Start() {
	if t.config.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if err := os.MkdirAll(t.config.DataDir, 0755); err != nil {
		logrus.Fatalf("Could not create data dir %s: %v", t.config.DataDir, err)
	}

	/* ----------------------------------------------------------------------- */
	// Persistence: the preferences file plus the preset/history database

	prefs := confdb.NewJSONFile[qrgen.AppConfig](filepath.Join(t.config.DataDir, "qr_generator_config.json"))

	sm, err := qrgen.NewStoreManager(filepath.Join(t.config.DataDir, "qrgen.db"))
	if err != nil {
		logrus.Fatalf("Could not open store: %v", err)
	}
	defer sm.Close()

	/* ----------------------------------------------------------------------- */
	// Host OS interface: the platform network inspector

	inspector := network.NewNetworkInspector()

	/* ----------------------------------------------------------------------- */
	// The UI-facing API

	api := web.RESTAPI(t.config, inspector, prefs, qrgen.NewHistory(sm), qrgen.NewPresets(sm))

	if err := api.ListenAndServe(); err != nil {
		logrus.Fatalf("HTTP server ListenAndServe: %v", err)
	}
}
