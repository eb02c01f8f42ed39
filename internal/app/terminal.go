package app

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"conway/internal/core"
	"conway/internal/render"

	"github.com/gdamore/tcell/v2"
)

// Terminal drives a simulation on a character-cell screen, drawing each cell
// as two columns so the grid keeps a roughly square aspect.
type Terminal struct {
	sim      core.Sim
	screen   tcell.Screen
	interval time.Duration
	seed     int64
	paused   bool

	clock *core.Clock
	buf   []byte
	alive [4]byte
	dead  [4]byte

	aliveStyle  tcell.Style
	deadStyle   tcell.Style
	statusStyle tcell.Style
}

// NewTerminal prepares a terminal front-end. The screen is initialized by Run.
func NewTerminal(sim core.Sim, screen tcell.Screen, interval time.Duration, seed int64) *Terminal {
	if interval <= 0 {
		interval = time.Second / 60
	}
	size := sim.Size()
	return &Terminal{
		sim:         sim,
		screen:      screen,
		interval:    interval,
		seed:        seed,
		buf:         make([]byte, render.BufferSize(size.W, size.H)),
		alive:       render.RGBA(color.White),
		dead:        render.RGBA(color.Black),
		aliveStyle:  tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack),
		deadStyle:   tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite),
		statusStyle: tcell.StyleDefault.Foreground(tcell.ColorGreen),
	}
}

// Run initializes the screen and runs the event loop until a quit key is
// pressed or ctx is cancelled. The screen is restored before Run returns.
func (t *Terminal) Run(ctx context.Context) error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer t.screen.Fini()
	t.screen.HideCursor()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go t.screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	t.clock = core.NewClock()
	if err := t.draw(); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok || t.handle(ev) {
				return nil
			}
			if err := t.draw(); err != nil {
				return err
			}
		case <-ticker.C:
			t.tick()
			if err := t.draw(); err != nil {
				return err
			}
		}
	}
}

// handle applies a key or resize event and reports whether to quit.
func (t *Terminal) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return true
		case ' ':
			t.paused = !t.paused
		case 'n':
			t.sim.Step()
		case 'r':
			t.sim.Reset(t.seed)
		case 's':
			t.seed = time.Now().UnixNano()
			t.sim.Reset(t.seed)
		}
	}
	return false
}

// tick feeds the wall time since the previous tick to the simulation. Time
// spent paused is dropped rather than replayed on resume.
func (t *Terminal) tick() {
	elapsed := t.clock.Lap()
	if t.paused {
		return
	}
	t.sim.Advance(elapsed)
}

func (t *Terminal) draw() error {
	if err := t.sim.Draw(t.alive, t.dead, t.buf); err != nil {
		return err
	}
	size := t.sim.Size()
	for i := 0; i < size.W*size.H; i++ {
		style := t.deadStyle
		if [4]byte(t.buf[i*4:i*4+4]) == t.alive {
			style = t.aliveStyle
		}
		x, y := i%size.W, i/size.W
		t.screen.SetContent(2*x, y, ' ', nil, style)
		t.screen.SetContent(2*x+1, y, ' ', nil, style)
	}
	t.drawStatus(size.H)
	t.screen.Show()
	return nil
}

func (t *Terminal) drawStatus(row int) {
	status := fmt.Sprintf("%s  gen %d", t.sim.Name(), t.sim.Generation())
	if t.paused {
		status += "  [paused]"
	}
	status += "  space:pause n:step r:reset s:reseed q:quit"
	w, _ := t.screen.Size()
	for x := 0; x < w; x++ {
		ch := ' '
		if x < len(status) {
			ch = rune(status[x])
		}
		t.screen.SetContent(x, row, ch, nil, t.statusStyle)
	}
}
