package cmd

import (
	"log"

	"github.com/CtrlAltDefeat55/Advanced-QR-Code-Generator/pkg/system/network"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "List nearby Wi-Fi networks",
	Run: func(cmd *cobra.Command, args []string) {
		networks := network.NewNetworkInspector().ScanNearbyNetworks()

		if len(networks) == 0 {
			log.Println("No networks found.")
			return
		}

		log.Printf("Found %d networks:", len(networks))
		for _, n := range networks {
			log.Printf(" - %s (%s)", n.SSID, n.Security)
		}
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
