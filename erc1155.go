// Package erc1155 provides a local, single-node implementation of the
// ERC-1155 multi-token standard backed by an embedded key-value store.
//
// Unlike an on-chain deployment there is no consensus layer and no
// signature verification: the caller identity is a trusted input supplied
// by the embedding process, and all contract state lives in a local ethdb
// store. The package is the ledger core only; argument parsing, key
// management, and store location policy belong to the embedding layer.
//
// # Basic Usage
//
// Open (or wrap) an ethdb key-value store, bind a ledger to a caller, and
// invoke operations:
//
//	db := memorydb.New()
//	store := erc1155.NewStore(db)
//
//	ledger := erc1155.NewLedger(store, alice)
//
//	// Mint a new token type with an initial supply credited to alice.
//	id, err := ledger.CreateToken(uint256.NewInt(100000))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Move 400 units of that token to bob.
//	err = ledger.SafeBatchTransferFrom(alice, bob,
//	    []*uint256.Int{id}, []*uint256.Int{uint256.NewInt(400)}, nil)
//
// # Entities
//
// Two record types are persisted, each independently addressable:
//
//   - Contract: a singleton holding the count of token identifiers ever
//     created. Token ids are allocated monotonically starting at 1.
//
//   - Account: per-address balances (token id to amount) and the set of
//     operators approved to transfer on the account's behalf.
//
// Both are created implicitly with zero values on first read; neither is
// ever deleted.
//
// # Invariants
//
// Transfers conserve value: a successful SafeBatchTransferFrom moves
// balance between exactly two records and never mints or burns. Batches
// are atomic with respect to persistence — if any index fails validation,
// no record is written. Amount arithmetic is checked; overflow and
// underflow are reported as errors, never wrapped.
//
// # Concurrency
//
// Every operation is a synchronous, bounded sequence of store reads and
// writes. The ledger holds no state between calls and performs no locking;
// serialization of concurrent access is whatever the underlying store
// provides.
//
// # References
//
// For the standard this package models, see:
//   - https://eips.ethereum.org/EIPS/eip-1155 (ERC-1155 multi-token standard)
package erc1155
