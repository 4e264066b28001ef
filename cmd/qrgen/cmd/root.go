package cmd

import (
	"os"
	"path/filepath"

	qrgen "github.com/CtrlAltDefeat55/Advanced-QR-Code-Generator/pkg"
	"github.com/CtrlAltDefeat55/Advanced-QR-Code-Generator/pkg/confdb"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "qrgen",
	Short: "qrgen generates QR code images, including Wi-Fi join codes",
	Long:  `qrgen generates QR code images, including Wi-Fi join codes`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("data-dir", defaultDataDir(), "Directory for preferences and history")
}

func defaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "qrgen")
}

// dataDir reads the persistent flag and makes sure the directory
// exists.
func dataDir(cmd *cobra.Command) string {
	dir, err := cmd.Flags().GetString("data-dir")
	if err != nil || dir == "" {
		dir = defaultDataDir()
	}
	os.MkdirAll(dir, 0755)
	return dir
}

// prefsFile opens the preferences store under the data dir.
func prefsFile(cmd *cobra.Command) *confdb.JSONFile[qrgen.AppConfig] {
	return confdb.NewJSONFile[qrgen.AppConfig](filepath.Join(dataDir(cmd), "qr_generator_config.json"))
}
