package erc1155

import (
	"testing"

	"github.com/ethereum/go-ethereum/ethdb/memorydb"
)

func TestNewStoreDefaults(t *testing.T) {
	store := NewStore(memorydb.New())
	if store.lenient {
		t.Error("Expected hardened decode by default")
	}
}

func TestWithLenientDecode(t *testing.T) {
	store := NewStore(memorydb.New(), WithLenientDecode())
	if !store.lenient {
		t.Error("Expected lenient decode to be enabled")
	}
}
