package theme

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Slot names every bundle must style.
const (
	SlotBackground  = "background"
	SlotText        = "text"
	SlotPrimary     = "primary"
	SlotPrimaryText = "primaryText"
	SlotFont        = "font"
	SlotLayout      = "layout"
	SlotCard        = "card"
	SlotButton      = "button"
	SlotHeader      = "header"
	SlotLink        = "link"
	SlotSidebar     = "sidebar"
	SlotContent     = "content"
	SlotSpan        = "span"
)

var requiredSlots = []string{
	SlotBackground,
	SlotText,
	SlotPrimary,
	SlotPrimaryText,
	SlotFont,
	SlotLayout,
	SlotCard,
	SlotButton,
	SlotHeader,
	SlotLink,
	SlotSidebar,
	SlotContent,
	SlotSpan,
}

// ErrNotFound is returned when a bundle identifier is not part of the catalog.
var ErrNotFound = errors.New("theme not found")

//go:embed themes.yaml
var builtinDefinition []byte

// Bundle is a named, immutable set of style tokens keyed by slot.
type Bundle struct {
	ID    string
	Name  string
	slots map[string]string
}

// Slot returns the style token for the named slot, or "" when the slot is unknown.
func (b Bundle) Slot(name string) string {
	return b.slots[name]
}

// Slots returns the slot names defined by the bundle in sorted order.
func (b Bundle) Slots() []string {
	names := make([]string, 0, len(b.slots))
	for name := range b.slots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Catalog maps theme identifiers to bundles, preserving definition order.
type Catalog struct {
	order      []string
	bundles    map[string]Bundle
	defaultKey string
}

type catalogDocument struct {
	Default string           `yaml:"default"`
	Themes  []bundleDocument `yaml:"themes"`
}

type bundleDocument struct {
	ID    string            `yaml:"id"`
	Name  string            `yaml:"name"`
	Slots map[string]string `yaml:"slots"`
}

// Load parses a YAML catalog definition and validates that every bundle
// styles exactly the required slots.
func Load(data []byte) (*Catalog, error) {
	var doc catalogDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing theme catalog: %w", err)
	}
	if len(doc.Themes) == 0 {
		return nil, errors.New("theme catalog defines no themes")
	}

	c := &Catalog{
		order:   make([]string, 0, len(doc.Themes)),
		bundles: make(map[string]Bundle, len(doc.Themes)),
	}
	for _, def := range doc.Themes {
		id := strings.TrimSpace(def.ID)
		if id == "" {
			return nil, errors.New("theme catalog entry without id")
		}
		if _, dup := c.bundles[id]; dup {
			return nil, fmt.Errorf("theme %q defined twice", id)
		}
		if err := checkSlots(id, def.Slots); err != nil {
			return nil, err
		}
		slots := make(map[string]string, len(def.Slots))
		for name, token := range def.Slots {
			slots[name] = strings.TrimSpace(token)
		}
		c.order = append(c.order, id)
		c.bundles[id] = Bundle{ID: id, Name: strings.TrimSpace(def.Name), slots: slots}
	}

	c.defaultKey = strings.TrimSpace(doc.Default)
	if c.defaultKey == "" {
		c.defaultKey = c.order[0]
	}
	if _, ok := c.bundles[c.defaultKey]; !ok {
		return nil, fmt.Errorf("default theme %q: %w", c.defaultKey, ErrNotFound)
	}
	return c, nil
}

func checkSlots(id string, slots map[string]string) error {
	for _, name := range requiredSlots {
		if _, ok := slots[name]; !ok {
			return fmt.Errorf("theme %q is missing slot %q", id, name)
		}
	}
	if len(slots) != len(requiredSlots) {
		for name := range slots {
			if !isRequiredSlot(name) {
				return fmt.Errorf("theme %q defines unknown slot %q", id, name)
			}
		}
	}
	return nil
}

func isRequiredSlot(name string) bool {
	for _, slot := range requiredSlots {
		if slot == name {
			return true
		}
	}
	return false
}

// Builtin returns the catalog compiled into the binary. It panics when the
// embedded definition is invalid, which can only happen with a broken build.
func Builtin() *Catalog {
	c, err := Load(builtinDefinition)
	if err != nil {
		panic(err)
	}
	return c
}

// Get returns the bundle registered under id.
func (c *Catalog) Get(id string) (Bundle, error) {
	b, ok := c.bundles[id]
	if !ok {
		return Bundle{}, fmt.Errorf("theme %q: %w", id, ErrNotFound)
	}
	return b, nil
}

// Contains reports whether id names a bundle in the catalog.
func (c *Catalog) Contains(id string) bool {
	_, ok := c.bundles[id]
	return ok
}

// Identifiers lists bundle identifiers in definition order.
func (c *Catalog) Identifiers() []string {
	ids := make([]string, len(c.order))
	copy(ids, c.order)
	return ids
}

// DefaultID is the identifier used when no valid preference exists.
func (c *Catalog) DefaultID() string {
	return c.defaultKey
}
