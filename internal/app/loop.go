package app

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kura-code/kura/internal/state"
)

// Run is the synchronous event loop: wait for the next event, apply at most
// one action at a time, then redraw. The state is owned by this goroutine;
// everything else only feeds the action channel.
func (app *Application) Run() {
	defer app.screen.Fini()

	app.renderer.Render(app.state)

	eventCh := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				return
			}
			eventCh <- ev
		}
	}()

	for !app.shouldQuit {
		select {
		case ev := <-eventCh:
			if !app.input.ProcessEvent(ev) {
				app.shouldQuit = true
			}
		case action := <-app.actionCh:
			app.applyAction(action)
		}

		app.drainActions()
		app.syncWatcher()

		if !app.shouldQuit {
			app.renderer.Render(app.state)
		}
	}
}

// drainActions applies whatever the input handler queued without blocking.
func (app *Application) drainActions() {
	for {
		select {
		case action := <-app.actionCh:
			app.applyAction(action)
		default:
			return
		}
	}
}

func (app *Application) applyAction(action statepkg.Action) {
	if action == nil {
		return
	}
	if _, ok := action.(statepkg.QuitAction); ok {
		app.shouldQuit = true
		return
	}
	if _, err := app.reducer.Reduce(app.state, action); err != nil {
		app.state.LastError = err
	}
}
