// Package shop holds the static item catalog and the purchase rules.
package shop

import (
	"errors"
	"time"

	"englishquest/internal/models"
)

var (
	ErrItemNotFound    = errors.New("item not found")
	ErrNotEnoughCoins  = errors.New("not enough coins")
	ErrUnknownItemType = errors.New("unknown item type")
)

const (
	ItemTypeHeart = "heart"
	ItemTypeCoins = "coins"
	ItemTypeBoost = "boost"

	coinsPackBonus = 100
	boostDuration  = 30 * time.Minute
)

type Item struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Type        string `json:"type"`
}

// Catalog is fixed at startup. The coins pack intentionally grants a flat 100
// coins regardless of its price.
var Catalog = []Item{
	{ID: 1, Name: "Extra Heart", Description: "Increase max hearts by 1", Price: 50, Type: ItemTypeHeart},
	{ID: 2, Name: "Coins Pack", Description: "Get 100 coins", Price: 200, Type: ItemTypeCoins},
	{ID: 3, Name: "Experience Boost", Description: "Double XP for 30 minutes", Price: 100, Type: ItemTypeBoost},
}

// FindItem looks an item up by id.
func FindItem(id int) (Item, bool) {
	for _, item := range Catalog {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

// Apply deducts the item price and applies its effect to the user in memory.
// The caller persists the user afterwards, so deduction and effect commit
// together.
func Apply(user *models.User, item Item, now time.Time) error {
	if user.Coins < item.Price {
		return ErrNotEnoughCoins
	}
	user.Coins -= item.Price

	switch item.Type {
	case ItemTypeHeart:
		user.MaxHearts++
		user.Hearts = user.MaxHearts
	case ItemTypeCoins:
		user.Coins += coinsPackBonus
	case ItemTypeBoost:
		// A new boost overwrites any running one; boosts do not stack.
		expires := now.Add(boostDuration)
		user.BoostExpiresAt = &expires
	default:
		return ErrUnknownItemType
	}
	return nil
}
