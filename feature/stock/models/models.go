package models

import "fmt"

// Item is a single entry in the shop's stock ledger.
type Item struct {
	// Name identifies the item. It is fixed at creation and doubles as the
	// key used to look up the item's update rules.
	Name string `json:"name"`

	// SellIn is the number of days remaining until the sell date.
	// It keeps counting down into negative values once the date has passed.
	SellIn int `json:"sell_in"`

	// Quality is the item's desirability score, normally kept within [0,50].
	// Legendary items carry a fixed value above the cap (80 by convention).
	Quality int `json:"quality"`
}

// String renders the item in the classic "name, sellIn, quality" ledger form.
func (i Item) String() string {
	return fmt.Sprintf("%s, %d, %d", i.Name, i.SellIn, i.Quality)
}

// Clone returns an independent copy of the item.
func (i Item) Clone() *Item {
	c := i
	return &c
}
