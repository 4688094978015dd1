package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/iw2rmb/weft"
	"github.com/iw2rmb/weft/buffer"
	"github.com/iw2rmb/weft/layout"
	"github.com/iw2rmb/weft/syntax"
	"github.com/iw2rmb/weft/view"
)

const sampleText = "Hello from weft.\n\n\tTabs, wide runes (日本語) and combining marks (é) are measured per grapheme.\nLong lines wrap at word boundaries and keep the indentation of their first row when -wrap=word is set.\nArrows move, home/end stay on the current row, ctrl+c quits."

type model struct {
	view view.Model
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.view.View() }

func main() {
	if err := run(os.Args[1:]); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("weft-demo", flag.ContinueOnError)
	lang := fs.String("lang", "", "chroma lexer name (default: detect from file name)")
	tab := fs.Int("tab", 4, "tab width in columns")
	wrap := fs.String("wrap", "word", "wrap mode: none, word or grapheme")
	logPath := fs.String("log", "", "write debug logs to this file")
	hints := fs.Bool("hints", false, "show inlay hints and a header widget")
	lineNums := fs.Bool("n", true, "show line numbers")
	version := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if *version {
		fmt.Println(weft.VersionTag())
		return nil
	}

	mode, err := parseWrapMode(*wrap)
	if err != nil {
		return err
	}

	text := sampleText
	if path := fs.Arg(0); path != "" {
		buf, err := buffer.ReadFile(path)
		if err != nil {
			return err
		}
		text = buf.Text()
		if *lang == "" {
			*lang = syntax.Detect(path)
		}
	}

	logger, err := newLogger(*logPath)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cfg := view.Config{
		Text:           text,
		Language:       *lang,
		TabColumnCount: *tab,
		WrapMode:       mode,
		ShowLineNums:   *lineNums,
		Style:          view.DefaultStyle(),
		Logger:         logger,
	}
	if *hints {
		cfg.Decorations = hintDecorations(buffer.New(text))
	}

	v, err := view.New(cfg)
	if err != nil {
		return err
	}
	logger.Info("starting", zap.String("version", weft.Version()), zap.String("language", *lang), zap.Stringer("wrap", mode))

	p := tea.NewProgram(model{view: v}, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

func parseWrapMode(s string) (layout.WrapMode, error) {
	for _, m := range []layout.WrapMode{layout.WrapNone, layout.WrapWord, layout.WrapGrapheme} {
		if m.String() == s {
			return m, nil
		}
	}
	return layout.WrapNone, fmt.Errorf("unknown wrap mode %q", s)
}

func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// hintDecorations marks the end of every non-empty line with its byte
// length and places a header widget above the first line.
func hintDecorations(buf *buffer.Buffer) *layout.Decorations {
	deco := &layout.Decorations{
		Inline: make([][]layout.InlineInlay, buf.LineCount()),
		Block:  []layout.BlockInlay{{Line: 0, Widget: layout.BlockWidget{ID: 1, Height: 1}}},
	}
	for i := range buf.LineCount() {
		line := buf.Line(i)
		if line == "" {
			continue
		}
		deco.Inline[i] = []layout.InlineInlay{layout.TextInlay(len(line), fmt.Sprintf("  %dB", len(line)))}
	}
	return deco
}
