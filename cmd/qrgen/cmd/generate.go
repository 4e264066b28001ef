package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	qrgen "github.com/CtrlAltDefeat55/Advanced-QR-Code-Generator/pkg"
	"github.com/CtrlAltDefeat55/Advanced-QR-Code-Generator/pkg/qr"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <content>",
	Short: "Generate a QR code image from text, a URL or any payload",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path, err := renderToFile(cmd, args[0], qrgen.HistoryEntry{
			Kind:  qrgen.HistoryKindText,
			Label: args[0],
		})
		if err != nil {
			log.Printf("Failed to generate QR code: %v", err)
			os.Exit(1)
		}

		log.Printf("Wrote %s", path)
	},
}

func init() {
	addRenderFlags(generateCmd)
	rootCmd.AddCommand(generateCmd)
}

func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("out", "o", "", "Output file, or - for stdout (defaults to the configured save path)")
	cmd.Flags().Int("box-size", 0, "Pixels per module")
	cmd.Flags().Int("border", 0, "Quiet zone size, in modules")
	cmd.Flags().String("level", "", "Error correction level: L, M, Q or H")
	cmd.Flags().String("style", "", "Module style: square, gapped, circle or rounded")
	cmd.Flags().String("fg", "", "Foreground color, #RRGGBB")
	cmd.Flags().String("bg", "", "Background color, #RRGGBB")
	cmd.Flags().String("grad-center", "", "Radial gradient centre color, #RRGGBB")
	cmd.Flags().String("grad-edge", "", "Radial gradient edge color, #RRGGBB")
	cmd.Flags().String("preset", "", "Use a stored color preset")
	cmd.Flags().String("logo", "", "Logo to overlay: file path or URL")
	cmd.Flags().Float64("logo-scale", 0, "Logo size as a fraction of the image width")
	cmd.Flags().Float64("logo-rotation", 0, "Logo rotation in degrees")
}

// renderToFile builds a render config from the flags and preferences,
// writes the image and records a history entry. Returns the file path.
func renderToFile(cmd *cobra.Command, content string, entry qrgen.HistoryEntry) (string, error) {
	prefs := prefsFile(cmd).LoadOr(qrgen.DefaultAppConfig())
	flags := cmd.Flags()

	cfg := qr.RenderConfig{Content: content}

	cfg.BoxSize, _ = flags.GetInt("box-size")
	if cfg.BoxSize == 0 {
		cfg.BoxSize = prefs.BoxSize
	}
	cfg.Border, _ = flags.GetInt("border")
	if cfg.Border == 0 {
		cfg.Border = prefs.BorderSize
	}
	cfg.ErrorCorrection, _ = flags.GetString("level")
	if cfg.ErrorCorrection == "" {
		cfg.ErrorCorrection = prefs.ErrorCorrection
	}
	style, _ := flags.GetString("style")
	if style == "" {
		style = prefs.Style
	}
	cfg.Style = qr.Style(style)

	colors, err := colorsFromFlags(cmd, prefs)
	if err != nil {
		return "", err
	}
	if err := applyColorPreset(&cfg, colors); err != nil {
		return "", err
	}

	if logo, _ := flags.GetString("logo"); logo != "" {
		img, err := qrgen.LoadLogo(logo)
		if err != nil {
			return "", err
		}
		cfg.Logo = img
		cfg.LogoScale, _ = flags.GetFloat64("logo-scale")
		cfg.LogoRotation, _ = flags.GetFloat64("logo-rotation")
	}

	out, _ := flags.GetString("out")
	if out == "" {
		out = filepath.Join(prefs.SavePath, "my_qr_code"+prefs.FileType)
	}

	var data []byte
	switch strings.ToLower(filepath.Ext(out)) {
	case ".jpg", ".jpeg":
		data, err = qr.EncodeJPEG(cfg)
	default:
		data, err = qr.EncodePNG(cfg)
	}
	if err != nil {
		return "", err
	}

	// "-" streams the PNG to stdout and skips history.
	if out == "-" {
		_, err := os.Stdout.Write(data)
		return "(stdout)", err
	}

	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		return "", err
	}

	recordHistory(cmd, entry, out)

	return out, nil
}

func colorsFromFlags(cmd *cobra.Command, prefs qrgen.AppConfig) (qrgen.ColorPreset, error) {
	flags := cmd.Flags()

	if name, _ := flags.GetString("preset"); name != "" {
		stored, ok := prefs.ColorPresets[name]
		if !ok {
			// Presets may also live in the database.
			sm, err := openStore(cmd)
			if err != nil {
				return qrgen.ColorPreset{}, fmt.Errorf("unknown preset %q", name)
			}
			defer sm.Close()

			stored, err = qrgen.NewPresets(sm).Get(name)
			if err != nil {
				return qrgen.ColorPreset{}, fmt.Errorf("unknown preset %q", name)
			}
		}
		return stored, nil
	}

	var colors qrgen.ColorPreset
	colors.Foreground, _ = flags.GetString("fg")
	colors.Background, _ = flags.GetString("bg")
	colors.GradientCenter, _ = flags.GetString("grad-center")
	colors.GradientEdge, _ = flags.GetString("grad-edge")
	return colors, nil
}

func applyColorPreset(cfg *qr.RenderConfig, colors qrgen.ColorPreset) error {
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

func openStore(cmd *cobra.Command) (*qrgen.StoreManager, error) {
	return qrgen.NewStoreManager(filepath.Join(dataDir(cmd), "qrgen.db"))
}

// recordHistory is best-effort; generation already succeeded.
func recordHistory(cmd *cobra.Command, entry qrgen.HistoryEntry, path string) {
	sm, err := openStore(cmd)
	if err != nil {
		return
	}
	defer sm.Close()

	entry.FilePath = path
	if err := qrgen.NewHistory(sm).Record(entry); err != nil {
		log.Printf("Failed to record history: %v", err)
	}
}
