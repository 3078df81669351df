package cli

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethdb"
	"github.com/ethereum/go-ethereum/rlp"
)

// cliStateKey sits beside the ledger records in the shared store.
const cliStateKey = "cli-state"

// State is the CLI's local account book: the addresses it has seen and
// the one commands act as. It is glue, not ledger state — the ledger
// accepts any caller the CLI resolves.
type State struct {
	Accounts []common.Address
	Current  common.Address
}

// Register adds addr to the known accounts if it is not already present.
func (s *State) Register(addr common.Address) {
	for _, known := range s.Accounts {
		if known == addr {
			return
		}
	}
	s.Accounts = append(s.Accounts, addr)
}

// loadState reads the CLI state record, an empty one if absent.
func loadState(db ethdb.KeyValueStore) (*State, error) {
	ok, err := db.Has([]byte(cliStateKey))
	if err != nil {
		return nil, err
	}
	if !ok {
		return &State{}, nil
	}
	data, err := db.Get([]byte(cliStateKey))
	if err != nil {
		return nil, err
	}
	var state State
	if err := rlp.DecodeBytes(data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// saveState writes the CLI state record.
func saveState(db ethdb.KeyValueStore, state *State) error {
	data, err := rlp.EncodeToBytes(state)
	if err != nil {
		return err
	}
	return db.Put([]byte(cliStateKey), data)
}
