package erc1155

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Ledger executes ERC-1155 operations against a Store on behalf of one
// caller. The caller identity is a trusted input from the embedding
// environment; it is not cryptographically verified here. A Ledger holds
// no state between calls, so one may be constructed per operation or
// reused freely.
type Ledger struct {
	store  *Store
	caller common.Address
}

// NewLedger binds a ledger to a store and a caller identity.
func NewLedger(store *Store, caller common.Address) *Ledger {
	return &Ledger{store: store, caller: caller}
}

// Caller returns the account on whose authority operations run.
func (l *Ledger) Caller() common.Address {
	return l.caller
}

// CreateToken allocates the next token identifier and credits the full
// initial supply to the caller. Any caller may mint; each call always
// creates a new token id, never tops up an existing one. Returns the
// allocated id.
func (l *Ledger) CreateToken(initialSupply *uint256.Int) (*uint256.Int, error) {
	if initialSupply == nil {
		return nil, ErrNilAmount
	}
	contract, err := l.store.LoadContract()
	if err != nil {
		return nil, err
	}

	id, overflow := new(uint256.Int).AddOverflow(&contract.tokenCount, uint256.NewInt(1))
	if overflow {
		return nil, ErrAmountOverflow
	}

	acct, err := l.store.LoadAccount(l.caller)
	if err != nil {
		return nil, err
	}
	acct.setBalance(id, initialSupply)
	if err := l.store.StoreAccount(l.caller, acct); err != nil {
		return nil, err
	}

	contract.tokenCount.Set(id)
	if err := l.store.StoreContract(contract); err != nil {
		return nil, err
	}
	return id, nil
}

// SafeBatchTransferFrom moves values[i] units of token ids[i] from one
// account to another for every index i. The call succeeds only if the
// caller is the from account or holds its approval, and only if every
// index clears the sufficiency check; on any failure nothing is written,
// so earlier indices of the batch are never partially applied. Each
// account record is persisted exactly once however long the batch is.
// The data payload is accepted for interface parity and has no effect.
func (l *Ledger) SafeBatchTransferFrom(from, to common.Address, ids, values []*uint256.Int, data []byte) error {
	if len(ids) != len(values) {
		return ErrArityMismatch
	}
	for i := range ids {
		if ids[i] == nil || values[i] == nil {
			return ErrNilAmount
		}
	}

	fromAcct, err := l.store.LoadAccount(from)
	if err != nil {
		return err
	}
	toAcct := fromAcct
	if to != from {
		toAcct, err = l.store.LoadAccount(to)
		if err != nil {
			return err
		}
	}

	if l.caller != from && !fromAcct.IsApproved(l.caller) {
		return &NotAuthorizedError{Caller: l.caller, From: from}
	}

	for i := range ids {
		id, val := ids[i], values[i]

		fromBal := fromAcct.Balance(id)
		if fromBal.Lt(val) {
			return &InsufficientBalanceError{TokenID: new(uint256.Int).Set(id)}
		}
		fromAcct.setBalance(id, new(uint256.Int).Sub(fromBal, val))

		// Read after the decrement so a self-transfer nets to zero.
		toBal := toAcct.Balance(id)
		newBal, overflow := new(uint256.Int).AddOverflow(toBal, val)
		if overflow {
			return ErrAmountOverflow
		}
		toAcct.setBalance(id, newBal)
	}

	if err := l.store.StoreAccount(from, fromAcct); err != nil {
		return err
	}
	if to != from {
		if err := l.store.StoreAccount(to, toAcct); err != nil {
			return err
		}
	}
	return nil
}

// BalanceOfBatch returns owners[i]'s balance of token ids[i] for every
// index i, zero for pairs with no prior activity. Balance queries are
// public; no authorization applies.
func (l *Ledger) BalanceOfBatch(owners []common.Address, ids []*uint256.Int) ([]*uint256.Int, error) {
	if len(owners) != len(ids) {
		return nil, ErrArityMismatch
	}
	balances := make([]*uint256.Int, len(owners))
	for i := range owners {
		if ids[i] == nil {
			return nil, ErrNilAmount
		}
		acct, err := l.store.LoadAccount(owners[i])
		if err != nil {
			return nil, err
		}
		balances[i] = acct.Balance(ids[i])
	}
	return balances, nil
}

// SetApprovalForAll grants or revokes operator authority over the
// caller's own account. Revoking a non-member is a no-op. An account can
// only manage its own approval set.
func (l *Ledger) SetApprovalForAll(operator common.Address, approved bool) error {
	acct, err := l.store.LoadAccount(l.caller)
	if err != nil {
		return err
	}
	if approved {
		acct.approve(operator)
	} else {
		acct.revoke(operator)
	}
	return l.store.StoreAccount(l.caller, acct)
}

// IsApprovedForAll reports whether operator holds owner's approval.
func (l *Ledger) IsApprovedForAll(owner, operator common.Address) (bool, error) {
	acct, err := l.store.LoadAccount(owner)
	if err != nil {
		return false, err
	}
	return acct.IsApproved(operator), nil
}

// AccountState returns the persisted record for addr, the implicit empty
// record if it has never been touched.
func (l *Ledger) AccountState(addr common.Address) (*Account, error) {
	return l.store.LoadAccount(addr)
}
