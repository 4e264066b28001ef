package cmd

import (
	"fmt"
	"log"

	qrgen "github.com/CtrlAltDefeat55/Advanced-QR-Code-Generator/pkg"
	"github.com/CtrlAltDefeat55/Advanced-QR-Code-Generator/pkg/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Get version information",
	Run: func(cmd *cobra.Command, args []string) {
		v := version.GetVersionInfo()

		fmt.Printf("Release: %s\n", v.Release)
		fmt.Printf("Git: %s\n", v.Git.Commit)
		fmt.Printf("Dirty: %t\n", v.Git.Dirty)

		if check, _ := cmd.Flags().GetBool("check"); check {
			release, available := qrgen.CheckForUpdate()
			if !available {
				log.Println("Up to date.")
				return
			}
			log.Printf("Update available: %s (%s)", release.Version, release.ReleaseURL)
		}
	},
}

func init() {
	versionCmd.Flags().Bool("check", false, "Check GitHub for a newer release")
	rootCmd.AddCommand(versionCmd)
}
