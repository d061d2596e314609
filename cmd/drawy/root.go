package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/drawy/drawy/pkg/banner"
	"github.com/drawy/drawy/pkg/capacity"
	"github.com/drawy/drawy/pkg/colorize"
	"github.com/drawy/drawy/pkg/compose"
	"github.com/drawy/drawy/pkg/config"
	"github.com/drawy/drawy/pkg/glyph"
	"github.com/drawy/drawy/pkg/logging"
	"github.com/drawy/drawy/pkg/output"
	"github.com/drawy/drawy/pkg/palette"
)

// errNothingToRender is returned when the input is empty or only whitespace.
var errNothingToRender = errors.New("nothing to render")

// isInteractive reports whether prompts can be answered. Replaced in tests.
var isInteractive = output.IsInteractive

var (
	renderMode        string
	renderColor       string
	renderPalette     []string
	renderFont        string
	renderFontFile    string
	renderBackend     string
	renderSeed        uint64
	renderColorOutput string
	renderFile        string
	renderWatch       bool
	renderConfig      string
	renderNoCapacity  bool
	renderLogLevel    string
	renderLogFormat   string
	renderLogFile     string
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drawy [text...]",
		Short: "Draw text as large colored ASCII-art letters",
		Long: `Drawy renders text as large ASCII-art letters and colors them.

Colors can be applied in one of three modes:
  single  every letter in one color
  letter  a random palette color per letter, no repeats until the palette is used up
  word    one random palette color per word

Text comes from the arguments, from --file, or from stdin. With no mode
and a terminal on stdin, drawy asks for the mode and color interactively.`,
		Example: `  drawy hello world
  drawy -m single -c cyan "build passed"
  echo "deploy done" | drawy -m word -f slant
  drawy --file motd.txt --watch`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&renderMode, "mode", "m", "", "Color mode: single, letter or word (1, 2 or 3)")
	flags.StringVarP(&renderColor, "color", "c", "", "Color for single mode (default white)")
	flags.StringSliceVar(&renderPalette, "palette", nil, "Comma-separated colors for letter and word modes")
	flags.StringVarP(&renderFont, "font", "f", "", "Built-in font name (see 'drawy fonts')")
	flags.StringVar(&renderFontFile, "font-file", "", "Path to a FIGlet .flf font")
	flags.StringVar(&renderBackend, "backend", "", "Rendering backend: figure or figlet4go")
	flags.Uint64Var(&renderSeed, "seed", 0, "Seed for color shuffling (0 for random)")
	flags.StringVar(&renderColorOutput, "color-output", "", "Emit colors: auto, always or never")
	flags.StringVar(&renderFile, "file", "", "Read text from a file")
	flags.BoolVarP(&renderWatch, "watch", "w", false, "Re-render when --file changes")
	flags.StringVar(&renderConfig, "config", "", "Config file (default $XDG_CONFIG_HOME/drawy/config.yaml)")
	flags.BoolVar(&renderNoCapacity, "no-capacity", false, "Skip the capacity report in interactive mode")
	flags.StringVar(&renderLogLevel, "log-level", "", "Diagnostic log level: debug, info, warn or error")
	flags.StringVar(&renderLogFormat, "log-format", "", "Diagnostic log format: text or json")
	flags.StringVar(&renderLogFile, "log-file", "", "Write diagnostic logs to a rotated file")

	return cmd
}

func init() {
	rootCmd.AddCommand(fontsCmd)
	rootCmd.AddCommand(colorsCmd)
	rootCmd.AddCommand(capacityCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		reportError(output.New(), err)
		os.Exit(1)
	}
}

// reportError prints the error a run ended with. Empty input has already
// been reported as a warning.
func reportError(p *output.Printer, err error) {
	if errors.Is(err, errNothingToRender) {
		return
	}
	p.Error(err.Error())
}

// loadConfig resolves the config file and applies flags the user set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Resolve(renderConfig)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("mode") {
		cfg.Mode = renderMode
	}
	if flags.Changed("color") {
		cfg.Color = renderColor
	}
	if flags.Changed("palette") {
		cfg.Palette = renderPalette
	}
	if flags.Changed("font") {
		cfg.Font = renderFont
	}
	if flags.Changed("font-file") {
		cfg.FontFile = renderFontFile
	}
	if flags.Changed("backend") {
		cfg.Backend = renderBackend
	}
	if flags.Changed("seed") {
		cfg.Seed = renderSeed
	}
	if flags.Changed("color-output") {
		cfg.ColorOutput = renderColorOutput
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = renderLogLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = renderLogFormat
	}
	if flags.Changed("log-file") {
		cfg.Log.File = renderLogFile
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the diagnostic logger. The returned func closes the log
// file, if any.
func newLogger(cfg *config.Config, stderr io.Writer) (*slog.Logger, func()) {
	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(cfg.Log.Level)
	logCfg.Format = logging.ParseFormat(cfg.Log.Format)
	logCfg.Output = stderr

	if cfg.Log.File == "" {
		return logging.NewStructuredLogger(logCfg), func() {}
	}

	fw := logging.NewFileWriter(cfg.Log.File)
	logCfg.Output = fw
	return logging.NewStructuredLogger(logCfg), func() { _ = fw.Close() }
}

func runRender(cmd *cobra.Command, args []string) error {
	if renderWatch && renderFile == "" {
		return errors.New("--watch requires --file")
	}
	if renderFile != "" && len(args) > 0 {
		return errors.New("pass text as arguments or with --file, not both")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog := newLogger(cfg, cmd.ErrOrStderr())
	defer closeLog()

	out := cmd.OutOrStdout()
	printer := output.NewWithWriter(out)
	printer.SetDebug(logging.ParseLevel(cfg.Log.Level) == slog.LevelDebug)
	in := bufio.NewReader(cmd.InOrStdin())
	interactive := cfg.Mode == "" && len(args) == 0 && renderFile == "" && isInteractive(cmd.InOrStdin())

	font, err := glyph.New(cfg.GlyphOptions())
	if err != nil {
		return err
	}
	printer.Debug("font loaded", "font", font.Name(), "backend", cfg.Backend, "height", font.Height())

	mode := colorize.ModeLetter
	color := cfg.Color
	if interactive {
		choice, err := runMenu(printer, in)
		if err != nil {
			return err
		}
		if choice.Exit {
			return nil
		}
		mode = choice.Mode
		if mode == colorize.ModeSingle {
			color = choice.Color
		}
	} else if cfg.Mode != "" {
		if mode, err = colorize.ParseMode(cfg.Mode); err != nil {
			return err
		}
	}

	req, err := buildRequest(printer, cfg, mode, color)
	if err != nil {
		return err
	}

	if interactive && !renderNoCapacity {
		report, err := capacity.Estimate(font, output.TerminalWidth())
		if err != nil {
			return err
		}
		printer.Capacity(report)
	}

	raw, err := readInput(printer, in, args, interactive)
	if err != nil {
		return err
	}
	if banner.IsBlank(raw) {
		printer.Warn("No text entered, nothing to draw")
		return errNothingToRender
	}

	lines := banner.SplitLines(raw, cfg.TabWidth)
	if interactive {
		printer.Info(fmt.Sprintf("Got %d line(s), rendering", len(lines)))
		printer.Println()
	}

	r := &banner.Renderer{
		Engine: colorize.New(font,
			colorize.WithShuffler(colorize.NewRandomShuffler(cfg.Seed)),
			colorize.WithLogger(logging.WithComponent(logger, "engine")),
		),
		Request:    req,
		Compositor: compose.Compositor{Plain: !printer.ColorEnabled(cfg.ColorOutput)},
	}
	if err := r.Render(out, lines); err != nil {
		return err
	}

	if renderWatch {
		return watchFile(cmd, r, cfg.TabWidth, logger)
	}
	return nil
}

// buildRequest resolves the single color and the palette. An unknown or
// neutral single color falls back to white with a warning.
func buildRequest(printer *output.Printer, cfg *config.Config, mode colorize.Mode, color string) (colorize.Request, error) {
	pal, err := palette.ParseList(cfg.Palette)
	if err != nil {
		return colorize.Request{}, err
	}

	req := colorize.Request{Mode: mode, Palette: pal}
	if mode != colorize.ModeSingle {
		return req, nil
	}

	req.Single = palette.White
	color = strings.TrimSpace(color)
	if color == "" {
		return req, nil
	}
	if tag, ok := palette.Parse(color); ok {
		req.Single = tag
	} else {
		printer.Warn(fmt.Sprintf("%q is not a known color, using white", color))
	}
	return req, nil
}

// readInput returns the text to draw from the arguments, --file or stdin.
func readInput(printer *output.Printer, in io.Reader, args []string, interactive bool) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if renderFile != "" {
		data, err := os.ReadFile(renderFile)
		if err != nil {
			return "", fmt.Errorf("reading input file: %w", err)
		}
		return string(data), nil
	}

	if interactive {
		printer.Println()
		printer.Info("Paste your text, then press Ctrl-D on an empty line (Ctrl-Z then Enter on Windows)")
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}
