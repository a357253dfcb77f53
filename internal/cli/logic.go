package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/Granddave/dudist/internal/dudist"
)

// terminalWidth reports the current width of stdout in columns.
// It satisfies dudist.WidthFunc.
func terminalWidth() (int, bool) {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return 0, false
	}

	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 0, false
	}

	return width, true
}

// barWidth resolves the bar canvas width from the forced option or the
// detected terminal geometry, falling back to the default width when stdout
// is not a terminal.
func barWidth(options dudist.Options, widthFn dudist.WidthFunc) int {
	if options.Width > 0 {
		return options.Width
	}

	terminal := dudist.DefaultTerminalWidth
	if width, ok := widthFn(); ok {
		terminal = width
	}

	canvas := dudist.CanvasWidth(terminal)
	if canvas == 1 && terminal <= dudist.LabelMargin && options.Debug {
		fmt.Fprintln(os.Stderr, "[debug]: terminal narrower than label margin, box-plot degraded")
	}

	return canvas
}

func logic(options dudist.Options) error {
	enableProgress := strings.ToLower(options.Output) != "json" &&
		!options.Debug &&
		isatty.IsTerminal(os.Stderr.Fd())

	ctx := context.Background()

	// Simple progress callback that prints directly to stderr
	var progressHook func(files, bytes int64)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		progressHook = func(files, bytes int64) {
			msg := fmt.Sprintf("Scanning… %d files, %s",
				files, humanize.IBytes(uint64(bytes))) //nolint:gosec // Bytes is always positive
			fmt.Fprintf(os.Stderr, "\r\033[2K%s\r", msg)
		}
	}

	stats, err := dudist.Run(ctx, options, progressHook)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	switch strings.ToLower(options.Output) {
	case "json":
		return PrintJSON(stats, os.Stdout)
	default:
		return PrintTable(stats, barWidth(options, terminalWidth), os.Stdout)
	}
}
