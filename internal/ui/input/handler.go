package input

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kura-code/kura/internal/state"
)

// Handler converts tcell events to Actions. Prompt modes (confirm, search,
// rename, sort) interpret keys themselves; everything else goes through the
// Accumulator so repeat prefixes and 'gg' work uniformly in browse, visual
// and viewer modes.
type Handler struct {
	actionChan chan statepkg.Action
	state      *statepkg.AppState // reference to current state for mode checks
	acc        Accumulator
}

// NewHandler creates a new input handler feeding the given action channel.
func NewHandler(actionChan chan statepkg.Action) *Handler {
	return &Handler{actionChan: actionChan}
}

// SetState sets the state reference used for mode checks.
func (h *Handler) SetState(state *statepkg.AppState) {
	h.state = state
}

// dispatch queues an action without ever blocking. ProcessEvent runs on the
// same goroutine that drains the channel, and the watcher can fill the buffer
// between drains; a blocking send here would deadlock the loop. A full buffer
// hands the send off to a goroutine instead.
func (h *Handler) dispatch(action statepkg.Action) {
	select {
	case h.actionChan <- action:
	default:
		go func() { h.actionChan <- action }()
	}
}

// ProcessEvent converts a tcell event into zero or more Actions. It returns
// false when the application should quit.
func (h *Handler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.processKeyEvent(ev)
	case *tcell.EventResize:
		w, hgt := ev.Size()
		h.dispatch(statepkg.ResizeAction{Width: w, Height: hgt})
		return true
	default:
		return true
	}
}

func (h *Handler) processKeyEvent(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		h.dispatch(statepkg.QuitAction{})
		return false
	}

	switch h.mode().(type) {
	case statepkg.ConfirmDeleteMode:
		return h.processConfirmKey(ev)
	case statepkg.SearchMode, statepkg.RenameMode:
		return h.processPromptKey(ev)
	case statepkg.SortMode:
		return h.processSortKey(ev)
	}

	return h.processCommandKey(ev)
}

func (h *Handler) mode() statepkg.Mode {
	if h.state == nil {
		return statepkg.BrowseMode{}
	}
	return h.state.Mode
}

// processCommandKey handles browse, visual and viewer modes through the
// accumulator.
func (h *Handler) processCommandKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEnter:
		h.acc.Reset()
		h.dispatch(statepkg.OpenAction{})
		return true
	case tcell.KeyEscape:
		h.acc.Reset()
		h.dispatch(statepkg.EscapeAction{})
		return true
	case tcell.KeyUp:
		h.acc.Reset()
		h.dispatch(statepkg.MoveUpAction{Count: 1})
		return true
	case tcell.KeyDown:
		h.acc.Reset()
		h.dispatch(statepkg.MoveDownAction{Count: 1})
		return true
	case tcell.KeyRune:
		// handled below
	default:
		return true
	}

	cmd, ok := h.acc.Feed(ev.Rune())
	if !ok {
		return true
	}

	switch cmd.Seq {
	case "j":
		h.dispatch(statepkg.MoveDownAction{Count: cmd.Count})
	case "k":
		h.dispatch(statepkg.MoveUpAction{Count: cmd.Count})
	case "gg", "0":
		// Counts on absolute jumps are discarded.
		h.dispatch(statepkg.GotoTopAction{})
	case "G":
		h.dispatch(statepkg.GotoBottomAction{})
	case "h":
		h.dispatch(statepkg.LeftKeyAction{})
	case "l":
		h.dispatch(statepkg.RightKeyAction{})
	case "v":
		h.dispatch(statepkg.ToggleMarkAction{})
	case "V":
		h.dispatch(statepkg.ToggleVisualAction{})
	case "y":
		h.dispatch(statepkg.CopyAction{})
	case "p":
		h.dispatch(statepkg.PasteAction{})
	case "x":
		h.dispatch(statepkg.DeletePromptAction{})
	case "X":
		h.dispatch(statepkg.DeleteNowAction{})
	case "/":
		h.dispatch(statepkg.SearchStartAction{})
	case "r":
		h.dispatch(statepkg.RenameStartAction{})
	case "s":
		h.dispatch(statepkg.SortStartAction{})
	case "q":
		h.dispatch(statepkg.QuitAction{})
		return false
	}
	return true
}

// processConfirmKey answers the delete prompt. The prompt swallows every key
// outside its yes/no set; q answers no instead of quitting.
func (h *Handler) processConfirmKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEnter:
		h.dispatch(statepkg.ConfirmAction{})
	case tcell.KeyEscape:
		h.dispatch(statepkg.CancelAction{})
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'y', 'Y':
			h.dispatch(statepkg.ConfirmAction{})
		case 'n', 'N', 'q':
			h.dispatch(statepkg.CancelAction{})
		}
	}
	return true
}

// processPromptKey edits the search or rename buffer. Runes are literal
// input here, including digits and q.
func (h *Handler) processPromptKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEnter:
		h.dispatch(statepkg.OpenAction{})
	case tcell.KeyEscape:
		h.dispatch(statepkg.EscapeAction{})
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		h.dispatch(statepkg.PromptBackspaceAction{})
	case tcell.KeyRune:
		h.dispatch(statepkg.PromptInputAction{Char: ev.Rune()})
	}
	return true
}

// processSortKey drives the sort popup.
func (h *Handler) processSortKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEnter:
		h.dispatch(statepkg.OpenAction{})
	case tcell.KeyEscape:
		h.dispatch(statepkg.EscapeAction{})
	case tcell.KeyUp:
		h.dispatch(statepkg.MoveUpAction{Count: 1})
	case tcell.KeyDown:
		h.dispatch(statepkg.MoveDownAction{Count: 1})
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'j':
			h.dispatch(statepkg.MoveDownAction{Count: 1})
		case 'k':
			h.dispatch(statepkg.MoveUpAction{Count: 1})
		case 'q':
			h.dispatch(statepkg.QuitAction{})
			return false
		}
	}
	return true
}

// PendingInput reports whether a repeat prefix or an unpaired 'g' is
// buffered, for the status line.
func (h *Handler) PendingInput() bool {
	return h.acc.Pending()
}
