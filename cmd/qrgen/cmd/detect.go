package cmd

import (
	"log"

	"github.com/CtrlAltDefeat55/Advanced-QR-Code-Generator/pkg/system/network"
	"github.com/spf13/cobra"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Show the currently connected Wi-Fi network",
	Run: func(cmd *cobra.Command, args []string) {
		current, found := network.NewNetworkInspector().DetectCurrentNetwork()

		if !found {
			log.Println("No Wi-Fi network detected.")
			return
		}

		log.Printf("SSID:     %s", current.SSID)
		log.Printf("Security: %s", current.Security)
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
