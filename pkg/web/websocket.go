package web

import (
	"io"
	"net/http"

	"github.com/CtrlAltDefeat55/Advanced-QR-Code-Generator/pkg/qr"
	"github.com/CtrlAltDefeat55/Advanced-QR-Code-Generator/pkg/utils"
	"golang.org/x/net/websocket"
)

// previewFrame is one rendered preview pushed back to the client.
type previewFrame struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Image   string `json:"image,omitempty"` // data: URI
}

// Handle incoming websocket connections for the live preview. The
// client sends a renderRequest whenever a form field changes and gets
// a freshly rendered frame back on the same socket.
func (t API) getPreviewSocket(w http.ResponseWriter, r *http.Request) {
	h := websocket.Server{
		Handler: func(ws *websocket.Conn) {
			defer ws.Close()
			for {
				var req renderRequest
				if err := websocket.JSON.Receive(ws, &req); err != nil {
					if err != io.EOF {
						websocket.JSON.Send(ws, previewFrame{Error: err.Error()})
					}
					return
				}

				if err := websocket.JSON.Send(ws, t.renderPreview(req)); err != nil {
					return
				}
			}
		},
	}
	h.ServeHTTP(w, r)
}

func (t API) renderPreview(req renderRequest) previewFrame {
	// Previews are never saved and never recorded in history.
	req.SaveAs = ""

	cfg, _, err := t.buildRenderConfig(req)
	if err != nil {
		return previewFrame{Error: err.Error()}
	}

	data, err := qr.EncodePNG(cfg)
	if err != nil {
		return previewFrame{Error: err.Error()}
	}

	uri, err := utils.ImageToDataURI(data, "png")
	if err != nil {
		return previewFrame{Error: err.Error()}
	}

	return previewFrame{
		Success: true,
		Image:   uri,
	}
}
