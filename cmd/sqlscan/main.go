// Command sqlscan tokenizes SQL files and prints the token stream.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/KimNorgaard/go-sqlscan"
	"github.com/KimNorgaard/go-sqlscan/internal/batch"
	"github.com/KimNorgaard/go-sqlscan/internal/config"
	"github.com/KimNorgaard/go-sqlscan/internal/logging"
	"github.com/KimNorgaard/go-sqlscan/internal/render"
	"github.com/KimNorgaard/go-sqlscan/internal/source"
	"github.com/charmbracelet/lipgloss"
)

const appName = "sqlscan"

// Exit codes.
const (
	exitOK        = 0
	exitScanError = 1
	exitUsage     = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type app struct {
	cfg    *config.Config
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func usage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, `Usage:
  %[1]s [flags] tokens FILE...      Print the tokens of each file ("-" is stdin).
  %[1]s [flags] highlight FILE...   Print each file with syntax highlighting.
  %[1]s [flags] repl                Tokenize statements interactively.

Files ending in .zst, .lz4, .sz or .snappy are decompressed first.

Flags:
`, appName)
	fs.SetOutput(w)
	fs.PrintDefaults()
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	configPath := fs.String("config", "", "path to a YAML config file")
	format := fs.String("format", "", "output format: text, json or yaml")
	skipInvalid := fs.Bool("skip-invalid", false, "keep scanning past invalid input")
	workers := fs.Int("workers", 0, "number of files tokenized in parallel")
	maxTokens := fs.Int("max-tokens", 0, "fail a file with more tokens than this")
	noColor := fs.Bool("no-color", false, "disable highlighting colours")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			usage(stdout, fs)
			return exitOK
		}
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		usage(stderr, fs)
		return exitUsage
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return exitUsage
	}
	// Flags given on the command line win over the config file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Format = *format
		case "skip-invalid":
			cfg.SkipInvalid = *skipInvalid
		case "workers":
			cfg.Workers = *workers
		case "max-tokens":
			cfg.MaxTokens = *maxTokens
		case "no-color":
			cfg.Color = !*noColor
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return exitUsage
	}

	if err := logging.Init(cfg.Logging()); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return exitUsage
	}
	defer logging.Close()

	a := &app{cfg: cfg, stdin: stdin, stdout: stdout, stderr: stderr}
	rest := fs.Args()
	if len(rest) == 0 {
		usage(stderr, fs)
		return exitUsage
	}

	cmd, files := rest[0], rest[1:]
	logging.WithComponent("cli").Debug("starting", "command", cmd, "files", len(files))
	switch cmd {
	case "tokens":
		return a.cmdTokens(files)
	case "highlight":
		return a.cmdHighlight(files)
	case "repl":
		return a.cmdRepl()
	case "help":
		usage(stdout, fs)
		return exitOK
	}
	fmt.Fprintf(stderr, "%s: unknown command %q\n", appName, cmd)
	usage(stderr, fs)
	return exitUsage
}

func (a *app) options() []sqlscan.Option {
	opts := []sqlscan.Option{sqlscan.WithLogger(logging.WithComponent("scan"))}
	if a.cfg.SkipInvalid {
		opts = append(opts, sqlscan.SkipInvalid())
	}
	if a.cfg.MaxTokens > 0 {
		opts = append(opts, sqlscan.MaxTokens(a.cfg.MaxTokens))
	}
	return opts
}

func (a *app) load(name string) ([]byte, error) {
	return source.ReadFile(name, a.stdin)
}

// scan tokenizes files, reporting load failures on stderr. The second
// result is the exit code to use when the first is nil.
func (a *app) scan(files []string, opts ...sqlscan.Option) ([]batch.Result, int) {
	if len(files) == 0 {
		fmt.Fprintf(a.stderr, "%s: no input files\n", appName)
		return nil, exitUsage
	}
	if n := countStdin(files); n > 1 {
		fmt.Fprintf(a.stderr, "%s: stdin may only be named once\n", appName)
		return nil, exitUsage
	}

	results, err := batch.Run(context.Background(), files, a.load, a.cfg.Workers, opts...)
	if err != nil {
		fmt.Fprintf(a.stderr, "%s: %v\n", appName, err)
		return nil, exitScanError
	}
	return results, exitOK
}

func countStdin(files []string) int {
	n := 0
	for _, f := range files {
		if f == source.Stdin {
			n++
		}
	}
	return n
}

func (a *app) cmdTokens(files []string) int {
	results, code := a.scan(files, a.options()...)
	if results == nil {
		return code
	}
	if err := render.Write(a.stdout, a.cfg.Format, results); err != nil {
		fmt.Fprintf(a.stderr, "%s: %v\n", appName, err)
		return exitScanError
	}
	if batch.Failed(results) {
		return exitScanError
	}
	return exitOK
}

func (a *app) highlighter() *render.Highlighter {
	if !a.cfg.Color {
		return render.PlainHighlighter()
	}
	return render.NewHighlighter(lipgloss.NewRenderer(a.stdout))
}

func (a *app) cmdHighlight(files []string) int {
	results, code := a.scan(files, append(a.options(), sqlscan.SkipInvalid())...)
	if results == nil {
		return code
	}

	h := a.highlighter()
	for i, r := range results {
		if len(results) > 1 {
			if i > 0 {
				fmt.Fprintln(a.stdout)
			}
			fmt.Fprintf(a.stdout, "==> %s <==\n", source.DisplayName(r.Name))
		}
		out := h.Highlight(r)
		fmt.Fprint(a.stdout, out)
		if !strings.HasSuffix(out, "\n") {
			fmt.Fprintln(a.stdout)
		}
		if failures := render.ScanErrors(r.Err); failures != nil {
			for _, e := range failures {
				fmt.Fprintf(a.stderr, "%s: %v\n", source.DisplayName(r.Name), e)
			}
		} else if r.Err != nil {
			fmt.Fprintf(a.stderr, "%s: %v\n", source.DisplayName(r.Name), r.Err)
		}
	}
	if batch.Failed(results) {
		return exitScanError
	}
	return exitOK
}
