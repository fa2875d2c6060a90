package pdf

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// readerCommands maps reader preferences to launch commands per platform.
var readerCommands = map[string]map[string][]string{
	"darwin": {
		"skim":    {"open", "-a", "Skim"},
		"preview": {"open", "-a", "Preview"},
		"system":  {"open"},
	},
	"linux": {
		"zathura": {"zathura"},
		"evince":  {"evince"},
		"okular":  {"okular"},
		"system":  {"xdg-open"},
	},
}

// Open launches the given PDF in the configured reader. An empty or
// unknown reader falls back to the platform default.
func Open(path, reader string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("PDF not found: %s", path)
		}
		return fmt.Errorf("checking PDF: %w", err)
	}

	commands, ok := readerCommands[runtime.GOOS]
	if !ok {
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
	argv, ok := commands[reader]
	if !ok {
		argv = commands["system"]
	}

	return exec.Command(argv[0], append(argv[1:], path)...).Start()
}
