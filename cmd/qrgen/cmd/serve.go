package cmd

import (
	"log"
	"os"
	"path/filepath"

	qrgen "github.com/CtrlAltDefeat55/Advanced-QR-Code-Generator/pkg"
	"github.com/CtrlAltDefeat55/Advanced-QR-Code-Generator/pkg/system/network"
	"github.com/CtrlAltDefeat55/Advanced-QR-Code-Generator/pkg/web"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the local UI API",
	Run: func(cmd *cobra.Command, args []string) {
		flags := cmd.Flags()

		config := qrgen.ServerConfig{DataDir: dataDir(cmd)}
		config.Bind, _ = flags.GetString("addr")
		config.Port, _ = flags.GetInt("port")
		config.UiDir, _ = flags.GetString("ui-dir")

		sm, err := qrgen.NewStoreManager(filepath.Join(config.DataDir, "qrgen.db"))
		if err != nil {
			log.Printf("Failed to open store: %v", err)
			os.Exit(1)
		}
		defer sm.Close()

		api := web.RESTAPI(
			config,
			network.NewNetworkInspector(),
			prefsFile(cmd),
			qrgen.NewHistory(sm),
			qrgen.NewPresets(sm),
		)

		if err := api.ListenAndServe(); err != nil {
			log.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	},
}

func init() {
	serveCmd.Flags().String("addr", "127.0.0.1", "Address to bind to")
	serveCmd.Flags().Int("port", 8335, "UI API port")
	serveCmd.Flags().String("ui-dir", "", "Directory with the bundled web UI")
	rootCmd.AddCommand(serveCmd)
}
