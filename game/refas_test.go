package game

import (
	"testing"

	utils "prefsty/internal"
)

func TestRefasCreate(t *testing.T) {
	refas := NewRefas(2)

	utils.AssertNoError(t, refas.Create())
	utils.AssertNoError(t, refas.Create())
	utils.AssertEqual(t, refas.Open(), 2)

	t.Log("the pool is exhausted after two tokens")
	if err := refas.Create(); err != ErrNoRefasLeft {
		t.Fatalf("got %v, want %v", err, ErrNoRefasLeft)
	}
}

func TestRefasUseOncePerPlayer(t *testing.T) {
	refas := NewRefas(1)
	utils.AssertNoError(t, refas.Create())

	utils.AssertNoError(t, refas.Use(0))
	if err := refas.Use(0); err != ErrRefaAlreadyUsed {
		t.Fatalf("got %v, want %v", err, ErrRefaAlreadyUsed)
	}
}

func TestRefasRetireWhenAllUsed(t *testing.T) {
	refas := NewRefas(1)
	utils.AssertNoError(t, refas.Create())

	utils.AssertNoError(t, refas.Use(0))
	utils.AssertNoError(t, refas.Use(1))
	utils.AssertEqual(t, refas.Open(), 1)

	utils.AssertNoError(t, refas.Use(2))
	utils.AssertEqual(t, refas.Open(), 0)
}

func TestRefasRetireInOrder(t *testing.T) {
	refas := NewRefas(2)
	utils.AssertNoError(t, refas.Create())
	utils.AssertNoError(t, refas.Create())

	t.Log("uses land on the oldest token each player has not consumed")
	utils.AssertNoError(t, refas.Use(0))
	utils.AssertNoError(t, refas.Use(1))
	utils.AssertNoError(t, refas.Use(0))
	utils.AssertEqual(t, refas.Open(), 2)

	t.Log("finishing the older token retires it alone")
	utils.AssertNoError(t, refas.Use(2))
	utils.AssertEqual(t, refas.Open(), 1)
	utils.AssertTrue(t, refas.Queue[0].Used[0])
	utils.AssertTrue(t, !refas.Queue[0].Used[1])
}
