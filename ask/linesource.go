package ask

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// ErrNoMoreLines is returned by Sequence sources once every scripted line
// has been consumed.
var ErrNoMoreLines = errors.New("no more scripted lines")

// LineSource reads one line of input for a rendered prompt. It returns the
// raw line (trailing newline included, when present) or an error when no
// line could be read.
type LineSource func(prompt string) (string, error)

var promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)

var defaultSource = Terminal()

// SetDefault replaces the line source used whenever a caller passes nil.
// Passing nil restores the terminal source.
func SetDefault(src LineSource) {
	if src == nil {
		src = Terminal()
	}
	defaultSource = src
}

var (
	stdinOnce   sync.Once
	stdinReader *bufio.Reader
)

// Terminal returns the stdin-backed line source. The prompt is styled when
// stdout is a terminal and written plain otherwise, so piped runs stay
// free of escape sequences. Consecutive reads share one buffered reader.
func Terminal() LineSource {
	return func(prompt string) (string, error) {
		stdinOnce.Do(func() {
			stdinReader = bufio.NewReader(os.Stdin)
		})

		if term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Print(promptStyle.Render(prompt))
		} else {
			fmt.Print(prompt)
		}

		line, err := stdinReader.ReadString('\n')
		if err != nil && line == "" {
			return "", err
		}
		return line, nil
	}
}

// Sequence returns a source that yields each line once, in order, then
// fails with ErrNoMoreLines. It backs scripted runs and test fixtures.
func Sequence(lines ...string) LineSource {
	i := 0
	return func(string) (string, error) {
		if i >= len(lines) {
			return "", ErrNoMoreLines
		}
		line := lines[i]
		i++
		return line, nil
	}
}

// Static returns a source that yields the same line for every prompt.
func Static(line string) LineSource {
	return func(string) (string, error) {
		return line, nil
	}
}
