// Package cli implements the erc1155 command-line glue: subcommand
// dispatch, store bootstrap, and the local account book. It carries no
// ledger invariants of its own; everything of consequence happens in the
// erc1155 package.
package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/branched-services/go-erc1155"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethdb/pebble"
	"github.com/ethereum/go-ethereum/log"
	"github.com/google/subcommands"
	"github.com/holiman/uint256"
)

var storePath = flag.String("store", "", "Path to the ledger store directory (default $HOME/.erc1155/store)")

// Store bookkeeping keys that belong to the CLI, not the ledger core.
const (
	initializedKey = "initialized"

	bootstrapSupply = 100000
)

// Register adds every erc1155 subcommand to the commander.
func Register(c *subcommands.Commander) {
	c.Register(&accountsCmd{}, "accounts")
	c.Register(&currentCmd{}, "accounts")
	c.Register(&useCmd{}, "accounts")
	c.Register(&stateCmd{}, "accounts")

	c.Register(&createTokenCmd{}, "tokens")
	c.Register(&transferCmd{}, "tokens")
	c.Register(&balanceCmd{}, "tokens")

	c.Register(&approveCmd{}, "approvals")
	c.Register(&revokeCmd{}, "approvals")
	c.Register(&approvedCmd{}, "approvals")
}

// openStore opens the pebble-backed ledger store, bootstrapping it on
// first run. Callers must close the returned store's database.
func openStore() (*erc1155.Store, error) {
	path := *storePath
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, ".erc1155", "store")
	}
	if err := os.MkdirAll(path, 0o700); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}

	db, err := pebble.New(path, 16, 16, "erc1155", false)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	store := erc1155.NewStore(db)

	initialized, err := db.Has([]byte(initializedKey))
	if err != nil {
		db.Close()
		return nil, err
	}
	if !initialized {
		if err := bootstrap(store); err != nil {
			db.Close()
			return nil, fmt.Errorf("bootstrap store: %w", err)
		}
	}
	return store, nil
}

// bootstrap seeds a fresh store: two generated accounts, the first of
// which holds a newly created token. Private keys are display-only and
// discarded; the ledger trusts caller identities, it never checks
// signatures.
func bootstrap(store *erc1155.Store) error {
	aliceKey, err := crypto.GenerateKey()
	if err != nil {
		return err
	}
	bobKey, err := crypto.GenerateKey()
	if err != nil {
		return err
	}
	alice := crypto.PubkeyToAddress(aliceKey.PublicKey)
	bob := crypto.PubkeyToAddress(bobKey.PublicKey)

	state := &State{Current: alice, Accounts: []common.Address{alice, bob}}
	if err := saveState(store.DB(), state); err != nil {
		return err
	}

	ledger := erc1155.NewLedger(store, alice)
	id, err := ledger.CreateToken(uint256.NewInt(bootstrapSupply))
	if err != nil {
		return err
	}

	if err := store.DB().Put([]byte(initializedKey), []byte("true")); err != nil {
		return err
	}
	log.Info("Initialized ledger store",
		"current", alice.Hex(), "other", bob.Hex(),
		"token", id.Dec(), "supply", bootstrapSupply)
	return nil
}

// newLedger binds a ledger to the CLI's current account.
func newLedger(store *erc1155.Store, state *State) *erc1155.Ledger {
	return erc1155.NewLedger(store, state.Current)
}

// fail prints an error and maps it to an exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}

// parseAddress parses a canonical hex account identifier.
func parseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("invalid account address %q", s)
	}
	return common.HexToAddress(s), nil
}

// parseUintList parses a comma-separated list of unsigned decimal values
// (token ids or amounts).
func parseUintList(s string) ([]*uint256.Int, error) {
	if s == "" {
		return nil, fmt.Errorf("empty value list")
	}
	parts := strings.Split(s, ",")
	out := make([]*uint256.Int, len(parts))
	for i, part := range parts {
		v, err := uint256.FromDecimal(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", part, err)
		}
		out[i] = v
	}
	return out, nil
}
