package main

import (
	"flag"
	"os"
	"path/filepath"

	qrgen "github.com/CtrlAltDefeat55/Advanced-QR-Code-Generator/pkg"
)

func main() {
	var port int
	var bind string
	var dataDir string
	var uiDir string
	var verbose bool
	var help bool

	flag.IntVar(&port, "port", 8335, "UI API Port")
	flag.StringVar(&bind, "addr", "127.0.0.1", "Address to bind to")
	flag.StringVar(&dataDir, "data", defaultDataDir(), "Directory for preferences and history")
	flag.StringVar(&uiDir, "ui", "", "Directory with the bundled web UI")
	flag.BoolVar(&verbose, "v", false, "Be verbose")
	flag.BoolVar(&help, "h", false, "Get help")
	flag.Parse()

	if help {
		flag.Usage()
		os.Exit(0)
	}

	config := qrgen.ServerConfig{
		Port:    port,
		Bind:    bind,
		DataDir: dataDir,
		UiDir:   uiDir,
		Verbose: verbose,
	}

	srv := Server(config)
	srv.Start()
}

func defaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "qrgen")
}
