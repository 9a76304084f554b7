// Package nav holds the page selection for the shell. Explicit navigation and
// URL fragment changes feed the same state cell; the last write wins.
package nav

import (
	"errors"
	"fmt"
	"strings"
)

// Page identifies one of the shell's pages.
type Page string

const (
	Home    Page = "home"
	About   Page = "about"
	Contact Page = "contact"
)

// ErrInvalidPage is returned by Navigate for identifiers outside the page set.
var ErrInvalidPage = errors.New("invalid page")

// Pages lists the page set in navigation order.
func Pages() []Page {
	return []Page{Home, About, Contact}
}

// Parse returns the page named id. Matching is exact and case-sensitive.
func Parse(id string) (Page, bool) {
	switch Page(id) {
	case Home, About, Contact:
		return Page(id), true
	}
	return "", false
}

// FromFragment derives a page from a URL fragment, with or without the
// leading '#'. Unrecognised fragments select Home.
func FromFragment(fragment string) Page {
	if p, ok := Parse(strings.TrimPrefix(fragment, "#")); ok {
		return p
	}
	return Home
}

// Navigator owns the current page for one shell. It is not safe for
// concurrent use.
type Navigator struct {
	current     Page
	subscribers map[int]func(Page)
	nextID      int
}

// New returns a Navigator positioned on Home.
func New() *Navigator {
	return &Navigator{current: Home, subscribers: make(map[int]func(Page))}
}

// Current returns the selected page.
func (n *Navigator) Current() Page {
	return n.current
}

// Navigate selects the page named id.
func (n *Navigator) Navigate(id string) error {
	p, ok := Parse(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidPage, id)
	}
	n.set(p)
	return nil
}

// ApplyFragment selects the page derived from a fragment change.
func (n *Navigator) ApplyFragment(fragment string) Page {
	p := FromFragment(fragment)
	n.set(p)
	return p
}

func (n *Navigator) set(p Page) {
	n.current = p
	for id := 0; id < n.nextID; id++ {
		if fn, ok := n.subscribers[id]; ok {
			fn(p)
		}
	}
}

// Subscribe registers fn to run after every page change and returns a
// function removing it.
func (n *Navigator) Subscribe(fn func(Page)) func() {
	id := n.nextID
	n.nextID++
	n.subscribers[id] = fn
	return func() {
		delete(n.subscribers, id)
	}
}

// FragmentSource delivers URL fragment change notifications.
type FragmentSource interface {
	OnFragmentChange(fn func(fragment string)) (remove func())
}

// Attach registers the navigator as a listener on src. The returned detach
// function releases the registration and is safe to call more than once.
func (n *Navigator) Attach(src FragmentSource) (detach func()) {
	remove := src.OnFragmentChange(func(fragment string) {
		n.ApplyFragment(fragment)
	})
	var done bool
	return func() {
		if done {
			return
		}
		done = true
		remove()
	}
}
