// Package inventory is the player's bounded item store. It is created once
// at startup and passed explicitly to whatever consults it — there is no
// package-level instance.
package inventory

import "github.com/gdamore/tcell/v2"

// DefaultCapacity is the number of items the player can carry.
const DefaultCapacity = 8

// Item is one carried object. ID doubles as the key identity doors match
// against, so content authors must keep key IDs 1:1 with their locks.
type Item struct {
	ID          string
	Name        string
	Description string
	IconColor   tcell.Color
}

// Inventory is an ordered, bounded sequence of items plus the display-panel
// open flag the presentation layer reads.
type Inventory struct {
	Items   []Item
	MaxSize int
	Open    bool
}

// New returns an empty inventory with the given capacity.
func New(maxSize int) *Inventory {
	return &Inventory{MaxSize: maxSize}
}

// Add appends item if there is room and reports whether it was stored.
func (inv *Inventory) Add(item Item) bool {
	if len(inv.Items) >= inv.MaxSize {
		return false
	}
	inv.Items = append(inv.Items, item)
	return true
}

// RemoveAt removes and returns the item at index i.
func (inv *Inventory) RemoveAt(i int) (Item, bool) {
	if i < 0 || i >= len(inv.Items) {
		return Item{}, false
	}
	item := inv.Items[i]
	inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
	return item, true
}

// TakeByID removes the first item whose ID matches and reports success.
func (inv *Inventory) TakeByID(id string) bool {
	for i, item := range inv.Items {
		if item.ID == id {
			inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
			return true
		}
	}
	return false
}

// HasID reports whether any carried item has the given ID.
func (inv *Inventory) HasID(id string) bool {
	for _, item := range inv.Items {
		if item.ID == id {
			return true
		}
	}
	return false
}
