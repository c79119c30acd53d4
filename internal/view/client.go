package view

import (
	"errors"

	termbox "github.com/nsf/termbox-go"
)

// Stop may be returned by a client method to end the run loop without error.
var Stop = errors.New("client stop")

// Client drives a View: after every key (and on resize or redraw) the view
// asks it to render a fresh frame into the shared Context.
type Client interface {
	// Render fills the context; Avail is already set for the current
	// terminal size, header, footer and log tail.
	Render(*Context) error

	// HandleKey reacts to one key press. Messages meant for the player
	// should go through View.Log so the next layout accounts for them.
	HandleKey(*View, KeyEvent) error

	Close() error
}

// KeyEvent is a terminal key press.
type KeyEvent struct {
	Mod termbox.Modifier
	Key termbox.Key
	Ch  rune
}

// Run takes over the terminal and runs client until it returns Stop, an error
// occurs, or the user hits Ctrl-C.
func (v *View) Run(client Client) error {
	return v.runWith(func() error {
		err := v.runClient(client)
		if err == Stop {
			return nil
		}
		return err
	})
}

// Log adds a formatted line to the context log under the rendering lock.
func (v *View) Log(mess string, args ...interface{}) {
	v.ctxLock.Lock()
	defer v.ctxLock.Unlock()
	v.ctx.Log(mess, args...)
}

// Logs returns a copy of the context log.
func (v *View) Logs() []string {
	v.ctxLock.Lock()
	defer v.ctxLock.Unlock()
	return append([]string(nil), v.ctx.Logs...)
}
