package erc1155

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Sentinel errors for common failure conditions.
var (
	// ErrArityMismatch indicates parallel input slices of unequal length.
	ErrArityMismatch = errors.New("erc1155: parallel input slices differ in length")

	// ErrAmountOverflow indicates checked arithmetic on an amount or
	// counter overflowed.
	ErrAmountOverflow = errors.New("erc1155: amount arithmetic overflow")

	// ErrNilAmount indicates a nil *uint256.Int where an amount or token
	// id is required.
	ErrNilAmount = errors.New("erc1155: nil amount or token id")
)

// NotAuthorizedError indicates the caller is neither the source account
// nor one of its approved operators.
type NotAuthorizedError struct {
	Caller common.Address
	From   common.Address
}

func (e *NotAuthorizedError) Error() string {
	return fmt.Sprintf("erc1155: caller %s does not have approval of account %s", e.Caller.Hex(), e.From.Hex())
}

// InsufficientBalanceError indicates a transfer value exceeds the source
// account's balance for a specific token. The whole batch is aborted.
type InsufficientBalanceError struct {
	TokenID *uint256.Int
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("erc1155: insufficient balance for token %s", e.TokenID.Dec())
}

// DecodeError indicates a stored record was present but failed to decode.
// An absent record is never an error; it yields the zero-value default.
type DecodeError struct {
	Key string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("erc1155: undecodable record at key %q: %v", e.Key, e.Err)
}

// Unwrap returns the underlying decoding error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}
