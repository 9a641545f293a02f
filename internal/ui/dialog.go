package ui

import "strings"

// QueueLines appends lines to the dialog queue in emission order. The queue
// is never reordered; it drains only when the dialog closes.
func (s *State) QueueLines(lines ...string) {
	s.queue = append(s.queue, lines...)
}

// UpdateDialog opens the dialog when lines are waiting and no modal is
// active. Must run before AdvanceDialog within a frame so a press that
// produced new lines cannot also page past them.
func (s *State) UpdateDialog(now float64) {
	if s.modal != ModalNone || len(s.queue) == 0 {
		return
	}
	s.modal = ModalDialog
	s.index = 0
	s.dialogOpenedAt = now
}

// AdvanceDialog pages forward on an advance press. Advancing past the last
// queued line closes the dialog and clears the queue. Presses inside the
// debounce window are ignored.
func (s *State) AdvanceDialog(now float64) {
	if s.modal != ModalDialog {
		return
	}
	if now-s.dialogOpenedAt < DebounceSeconds {
		return
	}
	s.index++
	if s.index >= len(s.queue) {
		s.modal = ModalNone
		s.queue = nil
		s.index = 0
	}
}

// DialogText returns the cumulative page: every line from the first through
// the current index, joined with newlines.
func (s *State) DialogText() string {
	if s.modal != ModalDialog {
		return ""
	}
	end := s.index + 1
	if end > len(s.queue) {
		end = len(s.queue)
	}
	return strings.Join(s.queue[:end], "\n")
}

// HasMoreLines reports whether lines remain after the current one.
func (s *State) HasMoreLines() bool {
	return s.modal == ModalDialog && s.index+1 < len(s.queue)
}

// OnLastLine reports whether the current line is the last queued.
func (s *State) OnLastLine() bool {
	return s.modal == ModalDialog && s.index+1 == len(s.queue)
}

// QueuedLines returns how many lines are waiting in the dialog queue.
func (s *State) QueuedLines() int { return len(s.queue) }

// blink is a repeating toggle timer for the dialog chevrons.
type blink struct {
	period  float64
	elapsed float64
	visible bool
}

func (b *blink) tick(dt float64) {
	b.elapsed += dt
	for b.elapsed >= b.period {
		b.elapsed -= b.period
		b.visible = !b.visible
	}
}

func (b *blink) reset() {
	b.elapsed = 0
	b.visible = false
}

// TickBlink advances the chevron blink timers by dt seconds. The continue
// chevron blinks while more lines wait; the end chevron blinks on the last
// page. An inactive chevron is hidden and its timer reset.
func (s *State) TickBlink(dt float64) {
	if s.HasMoreLines() {
		s.continueBlink.tick(dt)
	} else {
		s.continueBlink.reset()
	}
	if s.OnLastLine() {
		s.endBlink.tick(dt)
	} else {
		s.endBlink.reset()
	}
}

// ContinueChevronVisible reports the continue indicator's current blink phase.
func (s *State) ContinueChevronVisible() bool { return s.continueBlink.visible }

// EndChevronVisible reports the end indicator's current blink phase.
func (s *State) EndChevronVisible() bool { return s.endBlink.visible }
