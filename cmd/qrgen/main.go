package main

import (
	"github.com/CtrlAltDefeat55/Advanced-QR-Code-Generator/cmd/qrgen/cmd"
)

func main() {
	cmd.Execute()
}
