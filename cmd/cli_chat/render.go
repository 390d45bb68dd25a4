package main

import (
	"fmt"
	"io"
	"sync"

	"nutrition-coach/internal/chatclient"
	"nutrition-coach/internal/domain"
)

// terminalRenderer imprime solo lo nuevo desde el ultimo render, asi la terminal queda siempre
// posicionada en el ultimo mensaje.
type terminalRenderer struct {
	out         io.Writer
	mu          sync.Mutex
	printed     int
	thinking    bool
	suggestions bool
	started     bool
}

func newTerminalRenderer(out io.Writer) *terminalRenderer {
	return &terminalRenderer{out: out}
}

func (r *terminalRenderer) Render(v chatclient.View) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(v.Messages) < r.printed {
		fmt.Fprintln(r.out, "--- conversation cleared ---")
		r.printed = 0
	}
	for _, m := range v.Messages[r.printed:] {
		if m.Role == domain.RoleUser {
			// Despues del primer render el turno del usuario ya esta en pantalla porque lo acaba de escribir.
			if r.started {
				continue
			}
			fmt.Fprintf(r.out, "You > %s\n", m.Content)
			continue
		}
		fmt.Fprintf(r.out, "Coach > %s\n", m.Content)
	}
	r.printed = len(v.Messages)
	r.started = true

	if v.Thinking && !r.thinking {
		fmt.Fprintln(r.out, "Coach > ...")
	}
	r.thinking = v.Thinking

	if len(v.Suggestions) == 0 {
		r.suggestions = false
		return
	}
	if r.suggestions {
		return
	}
	fmt.Fprintln(r.out, "Try asking me things like:")
	for i, s := range v.Suggestions {
		fmt.Fprintf(r.out, "  /%d %s\n", i+1, s)
	}
	r.suggestions = true
}
