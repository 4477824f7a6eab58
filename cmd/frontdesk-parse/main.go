// Command frontdesk-parse runs one appointment request through the
// pipeline and prints the result as JSON
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"frontdesk/internal/modkit"
	"frontdesk/internal/modkit/module"
	"frontdesk/internal/platform/config"
	"frontdesk/internal/platform/logger"
	"frontdesk/internal/services/api/parse/domain"
	parsemod "frontdesk/internal/services/api/parse/module"
)

func main() {
	var (
		imagePath = flag.String("image", "", "path to a note photo instead of text args")
		pretty    = flag.Bool("pretty", true, "pretty-print JSON")
		tz        = flag.String("tz", "", "override the target timezone")
	)
	flag.Parse()

	logger.Init(logger.FromEnv())

	root := config.New()
	cfg := root.Prefix("FRONTDESK_API_")

	opt := parsemod.FromConfig(cfg)
	opt.UploadDir = filepath.Join(os.TempDir(), "frontdesk-parse")
	if *tz != "" {
		opt.Timezone = *tz
	}
	// no point booting tesseract for a text-only run
	opt.OCREnabled = opt.OCREnabled && *imagePath != ""

	deps := modkit.Deps{Log: *logger.Get(), Cfg: cfg}
	port := module.MustPortsOf[domain.ParsePort](parsemod.New(deps, opt))

	ctx := context.Background()
	var out domain.Outcome
	if *imagePath != "" {
		out = port.ParseImage(ctx, *imagePath)
	} else {
		text := strings.TrimSpace(strings.Join(flag.Args(), " "))
		if text == "" {
			fmt.Fprintln(os.Stderr, "usage: frontdesk-parse [flags] <request text>")
			flag.PrintDefaults()
			os.Exit(2)
		}
		out = port.ParseText(ctx, text)
	}

	emit(out, *pretty)
}

func emit(out domain.Outcome, pretty bool) {
	var payload any
	exit := 0
	switch out.Status {
	case domain.StatusOK:
		payload = domain.ParseOKResponse{Status: out.Status, Appointment: *out.Appointment}
	case domain.StatusNeedsClarification:
		payload = domain.ClarifyResponse{Status: out.Status, Message: out.Message, Diagnostics: out.Diagnostics}
	default:
		msg := "parse failed"
		if out.Err != nil {
			msg = out.Err.Error()
		}
		payload = map[string]any{"status": domain.StatusError, "error": msg}
		exit = 1
	}

	enc := json.NewEncoder(os.Stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(payload); err != nil {
		fmt.Fprintln(os.Stderr, "encode:", err)
		os.Exit(1)
	}
	os.Exit(exit)
}
