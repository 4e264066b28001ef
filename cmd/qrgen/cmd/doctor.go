package cmd

import (
	"log"
	"os"
	"os/exec"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/spf13/cobra"
)

// Tools the inspector may shell out to, per platform.
var platformTools = map[string][]string{
	"linux":   {"nmcli"},
	"darwin":  {"networksetup"},
	"windows": {"netsh"},
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check this system's support for network detection",
	Run: func(cmd *cobra.Command, args []string) {
		log.Printf("Platform: %s/%s", runtime.GOOS, runtime.GOARCH)

		if info, err := host.Info(); err == nil {
			log.Printf("Host:     %s %s (%s)", info.Platform, info.PlatformVersion, info.KernelVersion)
		}

		dir := dataDir(cmd)
		if f, err := os.CreateTemp(dir, ".doctor-*"); err == nil {
			f.Close()
			os.Remove(f.Name())
			log.Printf("Data dir: %s (writable)", dir)
		} else {
			log.Printf("Data dir: %s NOT writable; preferences and history will not persist", dir)
		}

		tools, supported := platformTools[runtime.GOOS]
		if !supported {
			log.Println("No supported network tool on this platform; Wi-Fi detection will report nothing.")
			return
		}

		for _, tool := range tools {
			if path, err := exec.LookPath(tool); err == nil {
				log.Printf("Tool:     %s found at %s", tool, path)
			} else {
				log.Printf("Tool:     %s NOT found; Wi-Fi detection will report nothing", tool)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
