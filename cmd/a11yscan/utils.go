package a11yscan

import (
	"fmt"
	"os"
	"strings"

	"github.com/a11yscan/a11yscan/internal/catalog"
	"github.com/a11yscan/a11yscan/internal/config"
	"golang.org/x/term"
)

var formats = []string{"table", "text", "json", "sarif", "markdown", "msgpack"}

// loadConfigs returns the local and global file configs; missing files
// yield zero values.
func loadConfigs() (local, global config.FileConfig) {
	if c, err := config.LoadGlobal(); err == nil {
		global = c
	}
	if c, err := config.LoadLocal("."); err == nil {
		local = c
	}
	return local, global
}

func loadCatalog(path string) (catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.LoadFile(path)
	if err != nil {
		return catalog.Catalog{}, fmt.Errorf("load catalog: %w", err)
	}
	logger.Sugar().Debugw("loaded catalog", "path", path, "templates", cat.Len(), "digest", cat.Digest())
	return cat, nil
}

// resolveFormat applies --sarif and --json shortcuts ahead of --format and
// config files; the default is table.
func resolveFormat(lcfg, gcfg config.FileConfig) (string, error) {
	var f string
	switch {
	case flagSARIF:
		f = "sarif"
	case flagJSON:
		f = "json"
	default:
		f = strings.ToLower(pickString(flagFormat, lcfg.Format, gcfg.Format))
	}
	if f == "" {
		return "table", nil
	}
	for _, known := range formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want %s)", f, strings.Join(formats, "|"))
}

// colorDisabled honors --no-color, config files and non-terminal stdout.
func colorDisabled(lcfg, gcfg config.FileConfig) bool {
	return pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor) || !isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

func pickString(cli string, local, global *string) string {
	if cli != "" {
		return cli
	}
	if local != nil && *local != "" {
		return *local
	}
	if global != nil && *global != "" {
		return *global
	}
	return ""
}

func pickInt(cli int, local, global *int) int {
	if cli != 0 {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	if global != nil && *global != 0 {
		return *global
	}
	return 0
}

func pickBool(cli bool, local, global *bool) bool {
	if cli {
		return true
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return false
}
