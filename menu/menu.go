// Package menu drives the blocking read-eval loop of the tool. It owns the
// screen and all prompt wording; the wired actions only report their own
// results through the writer they are handed.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

type MenuErr string

const ErrPromptRead MenuErr = "failed to read the menu option"

func (err MenuErr) Error() string {
	return string(err)
}

// The crossterm-style hide-cursor, clear-all, move-home sequence.
const clearSequence = "\x1b[?25l\x1b[2J\x1b[H"

// Actions are the dispatched operations. Each writes its user-facing report
// to w and returns when done; the loop handles the pacing prompt afterwards.
type Actions struct {
	SetCustom    func(w io.Writer)
	Measure      func(w io.Writer)
	ResetDefault func(w io.Writer)
}

type Loop struct {
	in          *bufio.Reader
	out         io.Writer
	actions     Actions
	clearScreen bool
}

type LoopOption func(*Loop)

// WithoutScreenClear suppresses the ANSI clear sequence, mainly so tests
// can assert on plain output.
func WithoutScreenClear() LoopOption {
	return func(l *Loop) {
		l.clearScreen = false
	}
}

func NewLoop(in io.Reader, out io.Writer, actions Actions, opts ...LoopOption) *Loop {
	l := &Loop{
		in:          bufio.NewReader(in),
		out:         out,
		actions:     actions,
		clearScreen: true,
	}
	for _, o := range opts {
		if o != nil {
			o(l)
		}
	}
	return l
}

// Run loops AwaitingInput -> Dispatching -> AwaitingInput until the exit
// option. A read failure at the option prompt is fatal; at the pacing
// prompts it is ignored.
func (l *Loop) Run() error {
	for {
		if l.clearScreen {
			fmt.Fprint(l.out, clearSequence)
		}
		fmt.Fprintln(l.out, "1. Set to 1ms (if supported)")
		fmt.Fprintln(l.out, "2. Measure")
		fmt.Fprintln(l.out, "3. Close")
		fmt.Fprintln(l.out, "4. Reset to default (~15.6ms)")
		fmt.Fprint(l.out, "Select an option (1-4): ")

		line, err := l.readLine()
		if err != nil {
			return ErrPromptRead
		}

		switch strings.TrimSpace(line) {
		case "1":
			l.actions.SetCustom(l.out)
			l.pause()
		case "2":
			l.actions.Measure(l.out)
			l.pause()
		case "3":
			fmt.Fprintln(l.out, "Closing application...")
			return nil
		case "4":
			l.actions.ResetDefault(l.out)
			l.pause()
		default:
			fmt.Fprintln(l.out, "Invalid option! Please select 1, 2, 3, or 4.")
			l.pause()
		}
	}
}

// pause keeps the last action's output visible until the user acknowledges.
func (l *Loop) pause() {
	fmt.Fprintln(l.out, "Press Enter to continue...")
	_, _ = l.readLine()
}

func (l *Loop) readLine() (string, error) {
	line, err := l.in.ReadString('\n')
	// A final line without the newline terminator still counts.
	if err != nil && len(line) == 0 {
		return "", err
	}
	return line, nil
}

// WaitForEnter blocks for one line, best-effort. It serves the fatal
// startup paths that pause before the process exits.
func WaitForEnter(in io.Reader, out io.Writer) {
	fmt.Fprintln(out, "Press Enter to exit...")
	_, _ = bufio.NewReader(in).ReadString('\n')
}
