package sitedata

import (
	"sync"
	"sync/atomic"
)

// Navigator orders navigations within one rendering session. Each navigation
// takes a Ticket; when its fetch resolves, the result is applied only if no
// newer navigation has begun. This discards the result of a stale in-flight
// fetch so a slow earlier request can never overwrite a faster later one.
//
// The underlying network operation is not cancelled; correctness depends
// only on ignoring stale results.
type Navigator struct {
	seq atomic.Uint64
}

// Ticket marks one navigation.
type Ticket struct {
	nav *Navigator
	seq uint64
}

// Begin starts a new navigation, superseding all earlier ones.
func (n *Navigator) Begin() Ticket {
	return Ticket{nav: n, seq: n.seq.Add(1)}
}

// Current reports whether this navigation is still the authoritative one.
func (t Ticket) Current() bool {
	return t.nav.seq.Load() == t.seq
}

// NavigatorSet orders navigations independently per key, for callers that
// maintain one shared slot per key (such as a cache entry) rather than a
// single rendering session.
type NavigatorSet struct {
	mu   sync.Mutex
	navs map[string]*Navigator
}

// NewNavigatorSet creates an empty set.
func NewNavigatorSet() *NavigatorSet {
	return &NavigatorSet{navs: make(map[string]*Navigator)}
}

// Begin starts a new navigation for key, superseding earlier ones for the
// same key only.
func (s *NavigatorSet) Begin(key string) Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	nav, ok := s.navs[key]
	if !ok {
		nav = &Navigator{}
		s.navs[key] = nav
	}
	return nav.Begin()
}
