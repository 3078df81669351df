package erc1155

import (
	"bytes"
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/holiman/uint256"
)

// Contract is the singleton contract-wide record. It tracks the number of
// distinct token identifiers ever created; ids are allocated sequentially
// starting at 1 and the count only grows.
type Contract struct {
	tokenCount uint256.Int
}

// NewContract returns a zero-value contract record, the implicit state of
// a store that has never minted a token.
func NewContract() *Contract {
	return &Contract{}
}

// TokenCount returns a copy of the count of token ids ever created.
func (c *Contract) TokenCount() *uint256.Int {
	return new(uint256.Int).Set(&c.tokenCount)
}

// contractRecord is the wire form of Contract.
type contractRecord struct {
	TokenCount *uint256.Int
}

// encode serializes the contract record.
func (c *Contract) encode() ([]byte, error) {
	return rlp.EncodeToBytes(&contractRecord{TokenCount: &c.tokenCount})
}

// decodeContract deserializes a contract record.
func decodeContract(data []byte) (*Contract, error) {
	var rec contractRecord
	if err := rlp.DecodeBytes(data, &rec); err != nil {
		return nil, err
	}
	c := NewContract()
	if rec.TokenCount != nil {
		c.tokenCount.Set(rec.TokenCount)
	}
	return c, nil
}

// Account is the per-address record: balances by token id plus the set of
// operators approved to act on the account's behalf. Reads never create
// entries; an absent balance is indistinguishable from a zero one.
type Account struct {
	approvals map[common.Address]struct{}
	balances  map[uint256.Int]uint256.Int
}

// NewAccount returns an empty account record, the implicit state of an
// address that has never been touched.
func NewAccount() *Account {
	return &Account{
		approvals: make(map[common.Address]struct{}),
		balances:  make(map[uint256.Int]uint256.Int),
	}
}

// Balance returns a copy of the account's balance for the given token id,
// zero if the account has never held it.
func (a *Account) Balance(id *uint256.Int) *uint256.Int {
	bal := a.balances[*id]
	return new(uint256.Int).Set(&bal)
}

// setBalance records the balance for a token id.
func (a *Account) setBalance(id, value *uint256.Int) {
	a.balances[*id] = *value
}

// IsApproved reports whether operator is in the account's approval set.
func (a *Account) IsApproved(operator common.Address) bool {
	_, ok := a.approvals[operator]
	return ok
}

// approve inserts operator into the approval set.
func (a *Account) approve(operator common.Address) {
	a.approvals[operator] = struct{}{}
}

// revoke removes operator from the approval set. Removing a non-member is
// a no-op.
func (a *Account) revoke(operator common.Address) {
	delete(a.approvals, operator)
}

// Approvals returns the approval set as a bytewise-sorted slice.
func (a *Account) Approvals() []common.Address {
	out := make([]common.Address, 0, len(a.approvals))
	for addr := range a.approvals {
		out = append(out, addr)
	}
	sort.Slice(out, func(i, j int) bool {
		return bytes.Compare(out[i][:], out[j][:]) < 0
	})
	return out
}

// BalanceEntry is one (token id, amount) pair of an account's balances.
type BalanceEntry struct {
	ID    *uint256.Int
	Value *uint256.Int
}

// Balances returns the account's balance entries sorted by token id.
// Entries with a zero value are reported as stored; callers must treat
// them the same as absent ones.
func (a *Account) Balances() []BalanceEntry {
	out := make([]BalanceEntry, 0, len(a.balances))
	for id, val := range a.balances {
		out = append(out, BalanceEntry{
			ID:    new(uint256.Int).Set(&id),
			Value: new(uint256.Int).Set(&val),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID.Cmp(out[j].ID) < 0
	})
	return out
}

// accountRecord is the wire form of Account. Collections are sorted so
// equal states encode byte-identically.
type accountRecord struct {
	Approvals []common.Address
	Balances  []BalanceEntry
}

// encode serializes the account record in canonical order.
func (a *Account) encode() ([]byte, error) {
	return rlp.EncodeToBytes(&accountRecord{
		Approvals: a.Approvals(),
		Balances:  a.Balances(),
	})
}

// decodeAccount deserializes an account record.
func decodeAccount(data []byte) (*Account, error) {
	var rec accountRecord
	if err := rlp.DecodeBytes(data, &rec); err != nil {
		return nil, err
	}
	acct := NewAccount()
	for _, addr := range rec.Approvals {
		acct.approvals[addr] = struct{}{}
	}
	for _, entry := range rec.Balances {
		if entry.ID == nil || entry.Value == nil {
			continue
		}
		acct.balances[*entry.ID] = *entry.Value
	}
	return acct, nil
}
