package motion

// Trigger names a condition that starts animations, such as a section
// entering the viewport.
type Trigger string

// Once is a one-shot latch. It is not safe for concurrent use; views own
// their latches and only touch them from their event loop.
type Once struct {
	fired bool
}

// Fire reports true the first time it is called and false afterwards.
func (o *Once) Fire() bool {
	if o.fired {
		return false
	}
	o.fired = true
	return true
}

// Fired reports whether Fire has succeeded.
func (o *Once) Fired() bool { return o.fired }

// Timeline maps triggers to the actions they start.
type Timeline struct {
	entries map[Trigger]*entry
}

type entry struct {
	once    *Once
	actions []func()
	// restore brings state in line with an already revealed page without
	// replaying anything.
	restore []func()
}

// NewTimeline returns an empty timeline.
func NewTimeline() *Timeline {
	return &Timeline{entries: map[Trigger]*entry{}}
}

// OnFirst runs actions the first time trigger fires and never again.
func (t *Timeline) OnFirst(trigger Trigger, actions ...func()) {
	e := t.entry(trigger)
	if e.once == nil {
		e.once = &Once{}
	}
	e.actions = append(e.actions, actions...)
}

// OnRestore runs actions when a one-shot trigger is restored instead of
// fired.
func (t *Timeline) OnRestore(trigger Trigger, actions ...func()) {
	e := t.entry(trigger)
	e.restore = append(e.restore, actions...)
}

func (t *Timeline) entry(trigger Trigger) *entry {
	e, ok := t.entries[trigger]
	if !ok {
		e = &entry{}
		t.entries[trigger] = e
	}
	return e
}

// Fire runs the actions bound to trigger. It reports whether anything ran;
// unknown triggers and spent one-shot triggers report false.
func (t *Timeline) Fire(trigger Trigger) bool {
	e, ok := t.entries[trigger]
	if !ok {
		return false
	}
	if e.once != nil && !e.once.Fire() {
		return false
	}
	for _, a := range e.actions {
		a()
	}
	return true
}

// Restore marks a one-shot trigger as fired without running its actions,
// for a page that already shows the revealed section. It reports whether
// anything changed.
func (t *Timeline) Restore(trigger Trigger) bool {
	e, ok := t.entries[trigger]
	if !ok || e.once == nil || !e.once.Fire() {
		return false
	}
	for _, a := range e.restore {
		a()
	}
	return true
}

// Fired reports whether a one-shot trigger has already fired.
func (t *Timeline) Fired(trigger Trigger) bool {
	e, ok := t.entries[trigger]
	return ok && e.once != nil && e.once.Fired()
}
