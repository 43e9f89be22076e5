// Command demo drives the toolkit against a real terminal: a styled banner,
// two bordered boxes of wrapped text, a line-edited input field and a footer
// of key hints, torn down on ctrl-s.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"canopy"
)

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "demo: stdout is not a terminal")
		os.Exit(1)
	}

	cfg, err := loadConfig("demo.toml")
	if err != nil {
		fmt.Fprintln(os.Stderr, "demo:", err)
		os.Exit(1)
	}

	// The terminal is owned by the toolkit while running, so logs go to a
	// file instead.
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintln(os.Stderr, "demo:", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger := log.New(logFile)

	if err := run(cfg, logger); err != nil {
		logger.Error("demo failed", "err", err)
		fmt.Fprintln(os.Stderr, "demo:", err)
		os.Exit(1)
	}
}

func run(cfg config, logger *log.Logger) error {
	fg, err := parseColor(cfg.Foreground)
	if err != nil {
		return err
	}
	bg, err := parseColor(cfg.Background)
	if err != nil {
		return err
	}
	accent, err := parseColor(cfg.Accent)
	if err != nil {
		return err
	}

	screen, err := canopy.NewScreen()
	if err != nil {
		return err
	}
	defer screen.Fini()

	tui, err := canopy.New(screen, canopy.Config{
		Color: canopy.Style{FG: fg, BG: bg},
		Event: func(t *canopy.TUI, key canopy.Key) bool {
			logger.Debug("unhandled key", "key", int(key))
			if key == canopy.KeyCtrlS || key == canopy.KeyCtrlC {
				t.Stop()
				return true
			}
			return false
		},
	})
	if err != nil {
		return err
	}
	defer tui.Destroy()

	input := buildWindows(tui, accent)
	defer input.Destroy()

	w, h := tui.Size()
	logger.Info("demo started", "width", w, "height", h)

	if err := tui.Run(); err != nil {
		return err
	}

	logger.Info("demo stopped", "input", input.String())
	return nil
}

// buildWindows declares the whole demo tree and returns the input widget
// wired to the focused field.
func buildWindows(tui *canopy.TUI, accent canopy.Color) *canopy.Input {
	// Top-level windows paint in reverse declaration order, so the footer
	// comes first to stay on top of the body's fill.
	footer := tui.NewParent(canopy.ParentConfig{
		Name:  "footer",
		Rect:  canopy.Geom{W: canopy.Fill, H: canopy.Fixed(1), Y: canopy.Fixed(-1)},
		Align: canopy.AlignBetween,
	})
	for _, hint := range []string{"type to edit", "ctrl-d clear", "ctrl-s quit"} {
		footer.NewText(canopy.TextConfig{Name: "hint", String: hint})
	}

	banner := lipgloss.NewStyle().Bold(true).Render("canopy") +
		"\na window toolkit demo"

	tui.NewText(canopy.TextConfig{
		Name:   "banner",
		String: banner,
		Rect:   canopy.Geom{W: canopy.Fill, H: canopy.Fixed(4)},
		Pos:    canopy.PosCenter,
	})

	body := tui.NewParent(canopy.ParentConfig{
		Name:    "body",
		Rect:    canopy.Geom{W: canopy.Fill, H: canopy.Fill, Y: canopy.Fixed(4)},
		Padding: true,
		Align:   canopy.AlignEvenly,
		Pos:     canopy.PosCenter,
	})

	left := body.NewParent(canopy.ParentConfig{
		Name:     "left",
		Rect:     canopy.Geom{W: canopy.Fixed(30), H: canopy.Fixed(10)},
		Border:   canopy.Border{Active: true, Color: canopy.Style{FG: accent}},
		Padding:  true,
		Vertical: true,
	})
	left.NewText(canopy.TextConfig{
		Name:   "left-title",
		String: "about",
		Rect:   canopy.Geom{H: canopy.Fixed(1)},
	})
	left.NewText(canopy.TextConfig{
		Name:   "left-body",
		String: "Windows wrap their text to whatever box the layout gives them, breaking at spaces.",
		Rect:   canopy.Geom{W: canopy.Fill, H: canopy.Fill},
		Pos:    canopy.PosCenter,
	})

	right := body.NewParent(canopy.ParentConfig{
		Name:     "right",
		Rect:     canopy.Geom{W: canopy.Fixed(30), H: canopy.Fixed(10)},
		Border:   canopy.Border{Active: true, Dashed: true},
		Padding:  true,
		Vertical: true,
	})
	right.NewText(canopy.TextConfig{
		Name:   "right-title",
		String: "input",
		Rect:   canopy.Geom{H: canopy.Fixed(1)},
	})
	// The field's hook feeds the editor; everything it declines bubbles up
	// to the root hook.
	var input *canopy.Input
	field := right.NewText(canopy.TextConfig{
		Name:  "field",
		Rect:  canopy.Geom{W: canopy.Fill, H: canopy.Fixed(1)},
		Color: canopy.Style{FG: accent},
		Event: func(w canopy.Window, key canopy.Key) bool {
			return input.HandleKey(key)
		},
	})

	input = canopy.NewInput(100, field)
	tui.Focus(field)

	return input
}
