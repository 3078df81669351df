package erc1155

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethdb"
)

// Persisted key layout. Keys are human-debuggable strings; account keys
// embed the EIP-55 hex form of the address.
const (
	contractKey   = "contract"
	accountPrefix = "account-"
)

// accountKey derives the store key for an account record.
func accountKey(addr common.Address) []byte {
	return []byte(accountPrefix + addr.Hex())
}

// Store maps Contract and Account records to an embedded key-value store.
// It is responsible only for key derivation and encoding; it enforces no
// business rules. The underlying database handle is shared by reference
// and may back several stores or ledgers at once.
type Store struct {
	db      ethdb.KeyValueStore
	lenient bool
}

// NewStore wraps an ethdb key-value store.
func NewStore(db ethdb.KeyValueStore, opts ...StoreOption) *Store {
	s := &Store{db: db}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DB returns the underlying key-value store, for embedding layers that
// keep their own records beside the ledger's.
func (s *Store) DB() ethdb.KeyValueStore {
	return s.db
}

// get reads a raw record, reporting presence separately from I/O failure.
func (s *Store) get(key []byte) ([]byte, bool, error) {
	ok, err := s.db.Has(key)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}
	data, err := s.db.Get(key)
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// LoadContract reads the singleton contract record. An absent record
// yields the zero-value default. Undecodable bytes are a *DecodeError
// unless the store was built with WithLenientDecode.
func (s *Store) LoadContract() (*Contract, error) {
	data, ok, err := s.get([]byte(contractKey))
	if err != nil {
		return nil, err
	}
	if !ok {
		return NewContract(), nil
	}
	c, err := decodeContract(data)
	if err != nil {
		if s.lenient {
			return NewContract(), nil
		}
		return nil, &DecodeError{Key: contractKey, Err: err}
	}
	return c, nil
}

// StoreContract writes the singleton contract record.
func (s *Store) StoreContract(c *Contract) error {
	data, err := c.encode()
	if err != nil {
		return err
	}
	return s.db.Put([]byte(contractKey), data)
}

// LoadAccount reads the record for addr, with the same absent-key and
// decode semantics as LoadContract.
func (s *Store) LoadAccount(addr common.Address) (*Account, error) {
	key := accountKey(addr)
	data, ok, err := s.get(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return NewAccount(), nil
	}
	acct, err := decodeAccount(data)
	if err != nil {
		if s.lenient {
			return NewAccount(), nil
		}
		return nil, &DecodeError{Key: string(key), Err: err}
	}
	return acct, nil
}

// StoreAccount writes the record for addr.
func (s *Store) StoreAccount(addr common.Address, acct *Account) error {
	data, err := acct.encode()
	if err != nil {
		return err
	}
	return s.db.Put(accountKey(addr), data)
}
