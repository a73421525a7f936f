package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/KimNorgaard/go-sqlscan"
	scanerrors "github.com/KimNorgaard/go-sqlscan/errors"
	"github.com/KimNorgaard/go-sqlscan/internal/batch"
	"github.com/KimNorgaard/go-sqlscan/internal/logging"
	"github.com/KimNorgaard/go-sqlscan/internal/render"
	"github.com/peterh/liner"
)

const (
	promptMain  = "sql> "
	promptCont  = "...> "
	historyFile = ".sqlscan_history"
	replName    = "<repl>"
)

const replHelp = `Enter SQL to see its tokens. A statement continues on the next line while a
string literal is left open.

  :format text|json|yaml   change the output format
  :help                    show this help
  :quit                    leave the shell
`

func (a *app) historyPath() string {
	if a.cfg.History != "" {
		return a.cfg.History
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}

func (a *app) cmdRepl() int {
	log := logging.WithComponent("repl")

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := a.historyPath()
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			f, err := os.Create(histPath)
			if err != nil {
				log.Warn("cannot save history", "path", histPath, "error", err)
				return
			}
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}()
	}

	stop := watchSignals(func() {
		ln.Close()
		os.Exit(130)
	})
	defer stop()

	for {
		src, ok := readStatement(ln.Prompt, promptMain, promptCont)
		if !ok {
			fmt.Fprintln(a.stdout)
			return exitOK
		}

		trimmed := strings.TrimSpace(src)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			if quit := a.replCommand(trimmed); quit {
				return exitOK
			}
			continue
		}

		a.evalStatement(src)
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
	}
}

// watchSignals calls onSignal when the process receives SIGTERM or SIGHUP.
// The returned stop function unregisters the handler and waits for the
// watching goroutine to exit.
func watchSignals(onSignal func()) (stop func()) {
	sigc := make(chan os.Signal, 1)
	done := make(chan struct{})
	exited := make(chan struct{})
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		defer close(exited)
		select {
		case <-sigc:
			onSignal()
		case <-done:
		}
	}()
	return func() {
		signal.Stop(sigc)
		close(done)
		<-exited
	}
}

// readStatement collects lines until the input no longer ends inside a
// string literal. It reports false at end of input. A prompt aborted with
// Ctrl-C discards what was typed so far.
func readStatement(prompt func(string) (string, error), first, cont string) (string, bool) {
	var b strings.Builder

	for {
		p := first
		if b.Len() > 0 {
			p = cont
		}
		line, err := prompt(p)
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if !openString(src) {
			return src, true
		}
	}
}

// openString reports whether src ends inside an unterminated string literal.
// Earlier invalid input is skipped so it cannot hide the open quote.
func openString(src string) bool {
	_, err := sqlscan.Tokenize([]byte(src), sqlscan.SkipInvalid())
	return errors.Is(err, &scanerrors.ScanError{Kind: scanerrors.UnterminatedString})
}

// replCommand runs a colon command and reports whether the shell should exit.
func (a *app) replCommand(cmd string) bool {
	fields := strings.Fields(cmd)
	switch strings.ToLower(fields[0]) {
	case ":quit", ":q", ":exit":
		return true
	case ":help":
		fmt.Fprint(a.stdout, replHelp)
	case ":format":
		if len(fields) != 2 {
			fmt.Fprintf(a.stdout, "format is %s\n", a.cfg.Format)
			return false
		}
		switch f := strings.ToLower(fields[1]); f {
		case render.FormatText, render.FormatJSON, render.FormatYAML:
			a.cfg.Format = f
		default:
			fmt.Fprintf(a.stderr, "unknown format %q\n", fields[1])
		}
	default:
		fmt.Fprintf(a.stderr, "unknown command %s. Type :help for a list.\n", fields[0])
	}
	return false
}

func (a *app) evalStatement(src string) {
	tokens, err := sqlscan.Tokenize([]byte(src), a.options()...)
	result := batch.Result{Name: replName, Source: []byte(src), Tokens: tokens, Err: err}
	if werr := render.Write(a.stdout, a.cfg.Format, []batch.Result{result}); werr != nil {
		fmt.Fprintf(a.stderr, "%s: %v\n", appName, werr)
	}
}
