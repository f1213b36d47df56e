package models_test

import (
	"testing"

	"stock-keeper/feature/stock/models"

	"github.com/stretchr/testify/assert"
)

func TestItem_String(t *testing.T) {
	it := models.Item{Name: "Aged Brie", SellIn: 2, Quality: 0}
	assert.Equal(t, "Aged Brie, 2, 0", it.String())
}

func TestItem_Clone(t *testing.T) {
	it := &models.Item{Name: "Elixir of the Mongoose", SellIn: 5, Quality: 7}

	c := it.Clone()
	c.SellIn = -1
	c.Quality = 0

	assert.Equal(t, 5, it.SellIn, "clone must not share state with the original")
	assert.Equal(t, 7, it.Quality)
}
