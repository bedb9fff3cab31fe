package carousel

import "github.com/google/uuid"

// Item is a single carousel entry. The ID is a stable identity token used
// by hosts for diffing and keying; it never changes once the item exists.
type Item struct {
	// ID uniquely identifies the item within its collection.
	ID string `toml:"id"`

	// Title is an optional display label.
	Title string `toml:"title"`

	// Image is the image reference for the item's card, interpreted by the
	// image resolution policy (remote URL, bundled asset, or symbol name).
	Image string `toml:"image"`

	// Placeholder optionally names an image shown while a remote Image is
	// still loading. Ignored for non-remote references.
	Placeholder string `toml:"placeholder"`
}

// NewItem creates an item with a generated UUID identity token.
func NewItem(title, image string) Item {
	return Item{
		ID:    uuid.NewString(),
		Title: title,
		Image: image,
	}
}

// Collection is an ordered, stable-identity sequence of items.
type Collection []Item

// Index returns the position of the item with the given identity token,
// or -1 if no item has that ID.
func (c Collection) Index(id string) int {
	for i, it := range c {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// IDs returns the identity tokens in collection order.
func (c Collection) IDs() []string {
	ids := make([]string, len(c))
	for i, it := range c {
		ids[i] = it.ID
	}
	return ids
}

// ensureIDs assigns generated identity tokens to items that were declared
// without one (e.g. in a manifest file).
func (c Collection) ensureIDs() {
	for i := range c {
		if c[i].ID == "" {
			c[i].ID = uuid.NewString()
		}
	}
}
