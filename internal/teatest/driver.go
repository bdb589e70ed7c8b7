// Package teatest drives a bubbletea model without a tea.Program. Every
// message goes straight to Update, and the commands it returns run inline
// until the model settles, so a test observes the same state a user would
// after each key press.
package teatest

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxCommands bounds how many commands one Send may run before the driver
// gives up on the model settling.
const maxCommands = 200

// defaultCmdWait is how long a single command may run. Planner loads against
// a local data directory and in-memory SQLite return well within it; a
// command still running afterwards is dropped.
const defaultCmdWait = 100 * time.Millisecond

// Driver feeds messages to a model and runs the resulting commands.
type Driver struct {
	t       *testing.T
	Model   tea.Model
	cmdWait time.Duration
	quit    bool
}

// Option configures a Driver.
type Option func(*Driver)

// WithSize delivers a WindowSizeMsg before anything else, as a terminal does
// on startup.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.Model, _ = d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// WithCmdWait overrides how long a single command may run.
func WithCmdWait(wait time.Duration) Option {
	return func(d *Driver) { d.cmdWait = wait }
}

// New wraps model. Call DrainInit to run its Init command.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{t: t, Model: model, cmdWait: defaultCmdWait}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DrainInit runs the model's Init command and everything it leads to.
func (d *Driver) DrainInit() {
	d.t.Helper()
	d.settle(d.Model.Init())
}

// Quitting reports whether the model has returned tea.Quit. Messages sent
// afterwards are ignored.
func (d *Driver) Quitting() bool { return d.quit }

// Send delivers msg and runs the commands it produces.
func (d *Driver) Send(msg tea.Msg) {
	d.t.Helper()
	if d.quit {
		return
	}
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.settle(cmd)
}

var namedKeys = map[string]tea.KeyMsg{
	"enter":  {Type: tea.KeyEnter},
	"esc":    {Type: tea.KeyEsc},
	"up":     {Type: tea.KeyUp},
	"down":   {Type: tea.KeyDown},
	"left":   {Type: tea.KeyLeft},
	"right":  {Type: tea.KeyRight},
	"space":  {Type: tea.KeySpace, Runes: []rune{' '}},
	"ctrl+c": {Type: tea.KeyCtrlC},
}

// Press sends one key event per name. Names are "enter", "esc", "up",
// "down", "left", "right", "space", "ctrl+c" or literal text, which is typed
// one rune at a time.
func (d *Driver) Press(keys ...string) {
	d.t.Helper()
	for _, k := range keys {
		if msg, ok := namedKeys[k]; ok {
			d.Send(msg)
			continue
		}
		for _, r := range k {
			d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		}
	}
}

// Resize sends a WindowSizeMsg.
func (d *Driver) Resize(w, h int) {
	d.t.Helper()
	d.Send(tea.WindowSizeMsg{Width: w, Height: h})
}

func (d *Driver) View() string {
	return d.Model.View()
}

func (d *Driver) ViewContains(substr string) bool {
	return strings.Contains(d.Model.View(), substr)
}

// settle runs cmd and the commands that follow from it, breadth first.
func (d *Driver) settle(cmd tea.Cmd) {
	d.t.Helper()
	pending := []tea.Cmd{cmd}
	for ran := 0; len(pending) > 0; ran++ {
		if ran == maxCommands {
			d.t.Fatalf("teatest: model still producing commands after %d", maxCommands)
		}
		next := pending[0]
		pending = pending[1:]
		if next == nil {
			continue
		}
		switch msg := d.run(next).(type) {
		case nil:
		case tea.BatchMsg:
			pending = append(pending, msg...)
		case tea.QuitMsg:
			d.quit = true
			return
		default:
			var follow tea.Cmd
			d.Model, follow = d.Model.Update(msg)
			pending = append(pending, follow)
		}
	}
}

// run executes cmd, returning nil when it outlives the driver's wait.
func (d *Driver) run(cmd tea.Cmd) tea.Msg {
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		return msg
	case <-time.After(d.cmdWait):
		return nil
	}
}
