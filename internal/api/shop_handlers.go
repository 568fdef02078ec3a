package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"gorm.io/gorm"

	"englishquest/internal/shop"
)

func (h *ApiHandler) GetShopItems(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, shop.Catalog)
}

type BuyRequest struct {
	ItemID int `json:"item_id"`
}

func (h *ApiHandler) BuyItem(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}

	var req BuyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	item, found := shop.FindItem(req.ItemID)
	if !found {
		respondWithError(w, http.StatusNotFound, "Item not found")
		return
	}

	now := time.Now().UTC()
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := shop.Apply(user, item, now); err != nil {
			return err
		}
		return tx.Save(user).Error
	})
	if err != nil {
		if errors.Is(err, shop.ErrNotEnoughCoins) {
			respondWithError(w, http.StatusBadRequest, "Not enough coins")
			return
		}
		log.Printf("Failed purchase of item %d for user %d: %v", item.ID, user.ID, err)
		respondWithError(w, http.StatusInternalServerError, "Failed to complete purchase")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message":         fmt.Sprintf("Purchased %s successfully", item.Name),
		"remaining_coins": user.Coins,
		"max_hearts":      user.MaxHearts,
	})
}
