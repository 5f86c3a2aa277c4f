package zrender

// Scheduler is a host context: an animator registry with a per-tick driver
// and a latched repaint request. It implements Host, so a node tree attaches
// to it directly with AddToHost.
type Scheduler struct {
	animators []*Animator
	scratch   []*Animator // reused tick snapshot

	needsRefresh bool
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Refresh latches a repaint request for the painter to consume.
func (s *Scheduler) Refresh() {
	s.needsRefresh = true
}

// ConsumeRefresh returns the latched repaint request and clears it.
func (s *Scheduler) ConsumeRefresh() bool {
	r := s.needsRefresh
	s.needsRefresh = false
	return r
}

// AddAnimator registers an animator for ticking. Re-registering one already
// present is a no-op.
func (s *Scheduler) AddAnimator(a *Animator) {
	for _, other := range s.animators {
		if other == a {
			return
		}
	}
	s.animators = append(s.animators, a)
}

// RemoveAnimator drops an animator from the registry. Finished and stopped
// animators remove themselves through here.
func (s *Scheduler) RemoveAnimator(a *Animator) {
	for i, other := range s.animators {
		if other == a {
			copy(s.animators[i:], s.animators[i+1:])
			s.animators[len(s.animators)-1] = nil
			s.animators = s.animators[:len(s.animators)-1]
			return
		}
	}
}

// NumAnimators returns the number of registered animators.
func (s *Scheduler) NumAnimators() int {
	return len(s.animators)
}

// Update advances every registered animator by dtMs milliseconds. The sweep
// runs over a snapshot so completion callbacks may register or remove
// animators without disturbing the tick.
func (s *Scheduler) Update(dtMs float64) {
	s.scratch = append(s.scratch[:0], s.animators...)
	for _, a := range s.scratch {
		a.Update(dtMs)
	}
	// Drop the snapshot's references so finished animators don't linger
	// until the next tick.
	for i := range s.scratch {
		s.scratch[i] = nil
	}
}
