package app

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kura-code/kura/internal/state"
	inputui "github.com/kura-code/kura/internal/ui/input"
	renderui "github.com/kura-code/kura/internal/ui/render"
)

// Application wires the screen, state, reducer, renderer, input handler and
// directory watcher together.
type Application struct {
	screen     tcell.Screen
	state      *statepkg.AppState
	reducer    *statepkg.StateReducer
	renderer   *renderui.Renderer
	input      *inputui.Handler
	actionCh   chan statepkg.Action
	watcher    *dirWatcher
	shouldQuit bool
}

// NewApplication initializes the terminal screen and the initial state with
// both panes showing startDir.
func NewApplication(startDir string) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	state, err := statepkg.NewAppState(startDir)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	w, h := screen.Size()
	state.ScreenWidth = w
	state.ScreenHeight = h

	actionCh := make(chan statepkg.Action, 16)

	watcher, err := newDirWatcher(actionCh)
	if err != nil {
		// The watcher is best-effort; the app works without external refresh.
		watcher = nil
	}

	app := &Application{
		screen:   screen,
		state:    state,
		reducer:  statepkg.NewStateReducer(),
		renderer: renderui.NewRenderer(screen),
		input:    inputui.NewHandler(actionCh),
		actionCh: actionCh,
		watcher:  watcher,
	}
	app.input.SetState(state)
	app.syncWatcher()
	return app, nil
}

// Close cleans up resources.
func (app *Application) Close() error {
	if app.watcher != nil {
		_ = app.watcher.Close()
	}
	app.screen.Fini()
	return nil
}

// syncWatcher points the directory watcher at the panes' current directories.
func (app *Application) syncWatcher() {
	if app.watcher == nil {
		return
	}
	app.watcher.SetPath(statepkg.LeftPane, app.state.Left.Path)
	app.watcher.SetPath(statepkg.RightPane, app.state.Right.Path)
}
