package input

// Command is a fully resolved key sequence with its repeat count attached.
// Seq is the literal sequence ("j", "gg", "G", "0", ...).
type Command struct {
	Seq   string
	Count int
}

const maxCount = 1_000_000

// Accumulator buffers numeric repeat prefixes and multi-key sequences until a
// complete command arrives. It is a tiny explicit automaton: the only pending
// states are the digit buffer and an unpaired leading 'g'. There is no
// timeout; a pending 'g' waits indefinitely for its pair or a canceling key.
type Accumulator struct {
	count    int
	hasCount bool
	gPending bool
}

// Feed consumes one rune. It returns the resolved Command and true, or a zero
// Command and false while still buffering. The count is single-use: it is
// cleared whenever a command resolves.
func (a *Accumulator) Feed(r rune) (Command, bool) {
	if a.gPending {
		a.gPending = false
		if r == 'g' {
			return a.resolve("gg"), true
		}
		// Anything else cancels the pending 'g' and is reprocessed fresh.
		return a.Feed(r)
	}

	if r >= '1' && r <= '9' || (r == '0' && a.hasCount) {
		a.hasCount = true
		if a.count < maxCount {
			a.count = a.count*10 + int(r-'0')
		}
		return Command{}, false
	}

	if r == '0' {
		// A bare 0 is a motion (go to start), not the start of a count.
		return a.resolve("0"), true
	}

	if r == 'g' {
		a.gPending = true
		return Command{}, false
	}

	return a.resolve(string(r)), true
}

// Reset drops any buffered prefix. Called for keys that cannot extend a
// pending sequence (Enter, Escape) and on mode changes.
func (a *Accumulator) Reset() {
	a.count = 0
	a.hasCount = false
	a.gPending = false
}

func (a *Accumulator) resolve(seq string) Command {
	count := a.count
	if !a.hasCount || count < 1 {
		count = 1
	}
	a.Reset()
	return Command{Seq: seq, Count: count}
}

// Pending reports whether the automaton is mid-sequence. The renderer shows
// the buffered prefix on the status line.
func (a *Accumulator) Pending() bool {
	return a.hasCount || a.gPending
}
