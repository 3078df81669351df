package cli

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethdb/memorydb"
)

var (
	alice = common.HexToAddress("0x1111111111111111111111111111111111111111")
	bob   = common.HexToAddress("0x2222222222222222222222222222222222222222")
)

func TestLoadStateAbsent(t *testing.T) {
	state, err := loadState(memorydb.New())
	if err != nil {
		t.Fatalf("loadState failed: %v", err)
	}
	if len(state.Accounts) != 0 {
		t.Errorf("Expected empty account book, got %d entries", len(state.Accounts))
	}
	if state.Current != (common.Address{}) {
		t.Errorf("Expected zero current account, got %s", state.Current.Hex())
	}
}

func TestStateRoundTrip(t *testing.T) {
	db := memorydb.New()

	state := &State{Current: alice, Accounts: []common.Address{alice, bob}}
	if err := saveState(db, state); err != nil {
		t.Fatalf("saveState failed: %v", err)
	}

	loaded, err := loadState(db)
	if err != nil {
		t.Fatalf("loadState failed: %v", err)
	}
	if loaded.Current != alice {
		t.Errorf("Expected current account %s, got %s", alice.Hex(), loaded.Current.Hex())
	}
	if len(loaded.Accounts) != 2 || loaded.Accounts[0] != alice || loaded.Accounts[1] != bob {
		t.Errorf("Expected accounts [%s %s], got %v", alice.Hex(), bob.Hex(), loaded.Accounts)
	}
}

func TestStateRegister(t *testing.T) {
	state := &State{}

	state.Register(alice)
	state.Register(bob)
	state.Register(alice) // duplicate, must not grow the book

	if len(state.Accounts) != 2 {
		t.Errorf("Expected 2 accounts after duplicate register, got %d", len(state.Accounts))
	}
}
