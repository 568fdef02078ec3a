package shop

import (
	"errors"
	"testing"
	"time"

	"englishquest/internal/models"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newUser(coins int) *models.User {
	return &models.User{Hearts: 3, MaxHearts: 5, Coins: coins}
}

func TestFindItem(t *testing.T) {
	for _, id := range []int{1, 2, 3} {
		item, found := FindItem(id)
		if !found {
			t.Errorf("FindItem(%d) not found", id)
			continue
		}
		if item.ID != id {
			t.Errorf("FindItem(%d).ID = %d", id, item.ID)
		}
	}

	if _, found := FindItem(99); found {
		t.Error("FindItem(99) found a nonexistent item")
	}
}

func TestBuyHeartRefillsAndRaisesMax(t *testing.T) {
	user := newUser(100)
	item, _ := FindItem(1)

	if err := Apply(user, item, testNow); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}

	if user.Coins != 50 {
		t.Errorf("Coins = %d, want 50", user.Coins)
	}
	if user.MaxHearts != 6 {
		t.Errorf("MaxHearts = %d, want 6", user.MaxHearts)
	}
	if user.Hearts != 6 {
		t.Errorf("Hearts = %d, want refilled to 6", user.Hearts)
	}
}

func TestBuyCoinsPackIsNetLoss(t *testing.T) {
	// The pack grants a flat 100 at a price of 200, so the user ends up 100
	// coins poorer. Kept as shipped.
	user := newUser(250)
	item, _ := FindItem(2)

	if err := Apply(user, item, testNow); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if user.Coins != 150 {
		t.Errorf("Coins = %d, want 150", user.Coins)
	}
}

func TestBuyBoostSetsAndOverwritesWindow(t *testing.T) {
	user := newUser(500)
	item, _ := FindItem(3)

	if err := Apply(user, item, testNow); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	want := testNow.Add(30 * time.Minute)
	if user.BoostExpiresAt == nil || !user.BoostExpiresAt.Equal(want) {
		t.Fatalf("BoostExpiresAt = %v, want %v", user.BoostExpiresAt, want)
	}

	// Buying again later overwrites rather than extends.
	later := testNow.Add(20 * time.Minute)
	if err := Apply(user, item, later); err != nil {
		t.Fatalf("second Apply returned error: %v", err)
	}
	want = later.Add(30 * time.Minute)
	if !user.BoostExpiresAt.Equal(want) {
		t.Errorf("BoostExpiresAt = %v, want %v (no stacking)", user.BoostExpiresAt, want)
	}
}

func TestInsufficientFundsLeavesUserUntouched(t *testing.T) {
	user := newUser(10)
	item, _ := FindItem(1)

	err := Apply(user, item, testNow)
	if !errors.Is(err, ErrNotEnoughCoins) {
		t.Fatalf("Apply error = %v, want ErrNotEnoughCoins", err)
	}
	if user.Coins != 10 || user.MaxHearts != 5 || user.Hearts != 3 {
		t.Errorf("user mutated on failed purchase: %+v", user)
	}
}
