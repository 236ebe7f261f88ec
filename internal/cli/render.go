package cli

import (
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/pratik-anurag/netmon/internal/config"
	"github.com/pratik-anurag/netmon/internal/render"
)

func renderOptions(cfg *config.Config) render.Options {
	return render.Options{Color: resolveColor(cfg.Color)}
}

func resolveColor(mode string) bool {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}
