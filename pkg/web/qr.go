package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	qrgen "github.com/CtrlAltDefeat55/Advanced-QR-Code-Generator/pkg"
	"github.com/CtrlAltDefeat55/Advanced-QR-Code-Generator/pkg/qr"
	"github.com/CtrlAltDefeat55/Advanced-QR-Code-Generator/pkg/wifi"
)

type renderRequest struct {
	// Either raw content or a wifi credential to turn into a payload.
	Content string       `json:"content"`
	Wifi    *wifiRequest `json:"wifi,omitempty"`

	BoxSize         int    `json:"boxSize,omitempty"`
	Border          int    `json:"border,omitempty"`
	ErrorCorrection string `json:"errorCorrection,omitempty"`
	Style           string `json:"style,omitempty"`

	Foreground     string `json:"fg,omitempty"`
	Background     string `json:"bg,omitempty"`
	GradientCenter string `json:"gradCenter,omitempty"`
	GradientEdge   string `json:"gradEdge,omitempty"`
	Preset         string `json:"preset,omitempty"`

	LogoSource   string  `json:"logo,omitempty"`
	LogoScale    float64 `json:"logoScale,omitempty"`
	LogoRotation float64 `json:"logoRotation,omitempty"`

	Format string `json:"format,omitempty"` // png or jpeg
	SaveAs string `json:"saveAs,omitempty"` // filename inside the configured save path
}

// buildRenderConfig turns a request into a renderer config, filling
// gaps from the stored preferences. Returns the history label/kind
// alongside.
func (t API) buildRenderConfig(req renderRequest) (qr.RenderConfig, qrgen.HistoryEntry, error) {
	prefs := t.appConfig()

	entry := qrgen.HistoryEntry{Kind: qrgen.HistoryKindText, Label: req.Content}

	content := req.Content
	if req.Wifi != nil {
		payload, err := wifi.BuildPayload(req.Wifi.credential())
		if err != nil {
			return qr.RenderConfig{}, entry, err
		}
		content = payload
		entry.Kind = qrgen.HistoryKindWifi
		entry.Label = req.Wifi.SSID
	}

	cfg := qr.RenderConfig{
		Content:         content,
		BoxSize:         req.BoxSize,
		Border:          req.Border,
		ErrorCorrection: req.ErrorCorrection,
		Style:           qr.Style(req.Style),
		LogoScale:       req.LogoScale,
		LogoRotation:    req.LogoRotation,
	}

	if cfg.BoxSize == 0 {
		cfg.BoxSize = prefs.BoxSize
	}
	if cfg.Border == 0 {
		cfg.Border = prefs.BorderSize
	}
	if cfg.ErrorCorrection == "" {
		cfg.ErrorCorrection = prefs.ErrorCorrection
	}
	if cfg.Style == "" {
		cfg.Style = qr.Style(prefs.Style)
	}

	colors := qrgen.ColorPreset{
		Foreground:     req.Foreground,
		Background:     req.Background,
		GradientCenter: req.GradientCenter,
		GradientEdge:   req.GradientEdge,
	}
	if req.Preset != "" {
		stored, err := t.presets.Get(req.Preset)
		if err != nil {
			return qr.RenderConfig{}, entry, fmt.Errorf("unknown preset %q", req.Preset)
		}
		colors = stored
	}

	if err := applyColors(&cfg, colors); err != nil {
		return qr.RenderConfig{}, entry, err
	}

	if req.LogoSource != "" {
		logo, err := qrgen.LoadLogo(req.LogoSource)
		if err != nil {
			return qr.RenderConfig{}, entry, err
		}
		cfg.Logo = logo
	}

	return cfg, entry, nil
}

func applyColors(cfg *qr.RenderConfig, colors qrgen.ColorPreset) error {
	if colors.Foreground != "" {
		c, err := qr.ParseHexColor(colors.Foreground)
		if err != nil {
			return err
		}
		cfg.Foreground = c
	}
	if colors.Background != "" {
		c, err := qr.ParseHexColor(colors.Background)
		if err != nil {
			return err
		}
		cfg.Background = c
	}
	if colors.GradientCenter != "" && colors.GradientEdge != "" {
		centre, err := qr.ParseHexColor(colors.GradientCenter)
		if err != nil {
			return err
		}
		edge, err := qr.ParseHexColor(colors.GradientEdge)
		if err != nil {
			return err
		}
		cfg.GradientCenter = centre
		cfg.GradientEdge = edge
	}
	return nil
}

func (t API) generateQR(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "Error parsing JSON")
		return
	}
	defer r.Body.Close()

	cfg, entry, err := t.buildRenderConfig(req)
	if err != nil {
		sendErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	format := strings.ToLower(req.Format)
	var data []byte
	var contentType string
	switch format {
	case "", "png":
		data, err = qr.EncodePNG(cfg)
		contentType = "image/png"
		format = "png"
	case "jpeg", "jpg":
		data, err = qr.EncodeJPEG(cfg)
		contentType = "image/jpeg"
		format = "jpeg"
	default:
		sendErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("unsupported format %q", req.Format))
		return
	}
	if err != nil {
		sendErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.SaveAs != "" {
		path, err := t.saveImage(req.SaveAs, format, data)
		if err != nil {
			sendErrorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
		entry.FilePath = path
	}

	if err := t.history.Record(entry); err != nil {
		// History is best-effort; the image still goes back.
		fmt.Println("Failed to record history entry:", err)
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "no-store")
	w.Write(data)
}

// saveImage writes image bytes under the configured save path. The
// name is used as-is minus any directory components.
func (t API) saveImage(name, format string, data []byte) (string, error) {
	prefs := t.appConfig()

	name = filepath.Base(name)
	if filepath.Ext(name) == "" {
		name += "." + format
	}

	if err := os.MkdirAll(prefs.SavePath, 0755); err != nil {
		return "", fmt.Errorf("creating save path: %w", err)
	}

	path := filepath.Join(prefs.SavePath, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing %q: %w", path, err)
	}

	return path, nil
}
