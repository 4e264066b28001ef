package cmd

import (
	"log"
	"os"

	qrgen "github.com/CtrlAltDefeat55/Advanced-QR-Code-Generator/pkg"
	"github.com/CtrlAltDefeat55/Advanced-QR-Code-Generator/pkg/system/network"
	"github.com/CtrlAltDefeat55/Advanced-QR-Code-Generator/pkg/wifi"
	"github.com/spf13/cobra"
)

var wifiCmd = &cobra.Command{
	Use:   "wifi",
	Short: "Generate a Wi-Fi join QR code",
	Run: func(cmd *cobra.Command, args []string) {
		flags := cmd.Flags()

		cred := qrgen.WifiCredential{}
		cred.SSID, _ = flags.GetString("ssid")
		cred.Password, _ = flags.GetString("password")
		cred.Hidden, _ = flags.GetBool("hidden")

		security, _ := flags.GetString("security")
		cred.Security = qrgen.SecurityType(security)

		if detect, _ := flags.GetBool("detect"); detect {
			current, found := network.NewNetworkInspector().DetectCurrentNetwork()
			if !found {
				log.Println("No current Wi-Fi network detected; pass --ssid instead.")
				os.Exit(1)
			}
			cred.SSID = current.SSID
			if current.Security != qrgen.SecurityUnknown {
				cred.Security = current.Security
			}
			log.Printf("Detected network %q (%s)", current.SSID, current.Security)
		}

		payload, err := wifi.BuildPayload(cred)
		if err != nil {
			log.Printf("Invalid credential: %v", err)
			os.Exit(1)
		}

		if payloadOnly, _ := flags.GetBool("payload-only"); payloadOnly {
			cmd.Println(payload)
			return
		}

		path, err := renderToFile(cmd, payload, qrgen.HistoryEntry{
			Kind:  qrgen.HistoryKindWifi,
			Label: cred.SSID,
		})
		if err != nil {
			log.Printf("Failed to generate QR code: %v", err)
			os.Exit(1)
		}

		log.Printf("Wrote %s", path)
	},
}

func init() {
	wifiCmd.Flags().String("ssid", "", "Network name")
	wifiCmd.Flags().String("security", "WPA", "Security type: WPA, WEP or nopass")
	wifiCmd.Flags().String("password", "", "Network password (empty for nopass)")
	wifiCmd.Flags().Bool("hidden", false, "Network does not broadcast its SSID")
	wifiCmd.Flags().Bool("detect", false, "Pre-fill from the currently connected network")
	wifiCmd.Flags().Bool("payload-only", false, "Print the WIFI: payload instead of rendering")
	addRenderFlags(wifiCmd)
	rootCmd.AddCommand(wifiCmd)
}
