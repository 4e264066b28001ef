package web

import (
	"net/http"
	"os/exec"
	"runtime"

	qrgen "github.com/CtrlAltDefeat55/Advanced-QR-Code-Generator/pkg"
	"github.com/CtrlAltDefeat55/Advanced-QR-Code-Generator/pkg/version"
	"github.com/shirou/gopsutil/v4/host"
)

// Network tools we know how to talk to, per platform.
var knownTools = map[string][]string{
	"linux":   {"nmcli"},
	"darwin":  {"networksetup"},
	"windows": {"netsh"},
}

func (t API) getSystemInfo(w http.ResponseWriter, r *http.Request) {
	info := map[string]any{
		"success":  true,
		"platform": runtime.GOOS,
		"version":  version.GetVersionInfo(),
	}

	if hostInfo, err := host.Info(); err == nil {
		info["host"] = map[string]any{
			"os":              hostInfo.OS,
			"platform":        hostInfo.Platform,
			"platformVersion": hostInfo.PlatformVersion,
			"kernelVersion":   hostInfo.KernelVersion,
			"arch":            hostInfo.KernelArch,
		}
	}

	tools := map[string]bool{}
	for _, tool := range knownTools[runtime.GOOS] {
		_, err := exec.LookPath(tool)
		tools[tool] = err == nil
	}
	info["networkTools"] = tools

	sendResponse(w, info)
}

func (t API) getUpdates(w http.ResponseWriter, r *http.Request) {
	release, available := qrgen.CheckForUpdate()

	resp := map[string]any{
		"success":   true,
		"available": available,
	}
	if release != nil {
		resp["release"] = release
	}

	sendResponse(w, resp)
}
