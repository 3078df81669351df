package erc1155

import (
	"bytes"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

var (
	addrA = common.HexToAddress("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	addrB = common.HexToAddress("0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")
	addrC = common.HexToAddress("0xcccccccccccccccccccccccccccccccccccccccc")
)

func TestNewContract(t *testing.T) {
	c := NewContract()
	if !c.TokenCount().IsZero() {
		t.Errorf("Expected zero token count, got %s", c.TokenCount().Dec())
	}
}

func TestContractRoundTrip(t *testing.T) {
	c := NewContract()
	c.tokenCount.SetUint64(42)

	data, err := c.encode()
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	decoded, err := decodeContract(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded.TokenCount().Uint64() != 42 {
		t.Errorf("Expected token count 42, got %s", decoded.TokenCount().Dec())
	}
}

func TestContractZeroValueRoundTrip(t *testing.T) {
	data, err := NewContract().encode()
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	decoded, err := decodeContract(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !decoded.TokenCount().IsZero() {
		t.Errorf("Expected zero token count, got %s", decoded.TokenCount().Dec())
	}
}

func TestAccountBalanceDefault(t *testing.T) {
	acct := NewAccount()

	bal := acct.Balance(uint256.NewInt(1))
	if !bal.IsZero() {
		t.Errorf("Expected zero balance, got %s", bal.Dec())
	}

	// A read must not create a map entry.
	if len(acct.balances) != 0 {
		t.Errorf("Expected no balance entries after read, got %d", len(acct.balances))
	}
}

func TestAccountBalanceReturnsCopy(t *testing.T) {
	acct := NewAccount()
	acct.setBalance(uint256.NewInt(1), uint256.NewInt(100))

	bal := acct.Balance(uint256.NewInt(1))
	bal.SetUint64(999)

	if got := acct.Balance(uint256.NewInt(1)); got.Uint64() != 100 {
		t.Errorf("Expected stored balance 100 after mutating a copy, got %s", got.Dec())
	}
}

func TestAccountApprovals(t *testing.T) {
	acct := NewAccount()

	if acct.IsApproved(addrB) {
		t.Error("Expected no approval on a fresh account")
	}

	acct.approve(addrB)
	if !acct.IsApproved(addrB) {
		t.Error("Expected approval after approve")
	}

	// Revoking twice must be a no-op, not an error or a panic.
	acct.revoke(addrB)
	acct.revoke(addrB)
	if acct.IsApproved(addrB) {
		t.Error("Expected no approval after revoke")
	}
}

func TestAccountApprovalsSorted(t *testing.T) {
	acct := NewAccount()
	acct.approve(addrC)
	acct.approve(addrA)
	acct.approve(addrB)

	approvals := acct.Approvals()
	if len(approvals) != 3 {
		t.Fatalf("Expected 3 approvals, got %d", len(approvals))
	}
	for i := 1; i < len(approvals); i++ {
		if bytes.Compare(approvals[i-1][:], approvals[i][:]) >= 0 {
			t.Errorf("Expected bytewise-sorted approvals, got %v", approvals)
		}
	}
}

func TestAccountBalancesSorted(t *testing.T) {
	acct := NewAccount()
	acct.setBalance(uint256.NewInt(9), uint256.NewInt(90))
	acct.setBalance(uint256.NewInt(1), uint256.NewInt(10))
	acct.setBalance(uint256.NewInt(5), uint256.NewInt(50))

	entries := acct.Balances()
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].ID.Cmp(entries[i].ID) >= 0 {
			t.Errorf("Expected entries sorted by token id, got %v then %v", entries[i-1].ID, entries[i].ID)
		}
	}
}

func TestAccountEncodeCanonical(t *testing.T) {
	// Same content inserted in different orders must encode identically.
	first := NewAccount()
	first.approve(addrA)
	first.approve(addrB)
	first.setBalance(uint256.NewInt(1), uint256.NewInt(10))
	first.setBalance(uint256.NewInt(2), uint256.NewInt(20))

	second := NewAccount()
	second.setBalance(uint256.NewInt(2), uint256.NewInt(20))
	second.setBalance(uint256.NewInt(1), uint256.NewInt(10))
	second.approve(addrB)
	second.approve(addrA)

	firstData, err := first.encode()
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	secondData, err := second.encode()
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if !bytes.Equal(firstData, secondData) {
		t.Error("Expected identical encodings for equal account states")
	}
}

func TestAccountRoundTrip(t *testing.T) {
	acct := NewAccount()
	acct.approve(addrB)
	acct.setBalance(uint256.NewInt(1), uint256.NewInt(99600))
	acct.setBalance(uint256.NewInt(3), uint256.NewInt(0))

	data, err := acct.encode()
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	decoded, err := decodeAccount(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if !decoded.IsApproved(addrB) {
		t.Error("Expected approval to survive the round trip")
	}
	if got := decoded.Balance(uint256.NewInt(1)); got.Uint64() != 99600 {
		t.Errorf("Expected balance 99600, got %s", got.Dec())
	}
	// A stored zero entry reads back as zero, same as an absent one.
	if got := decoded.Balance(uint256.NewInt(3)); !got.IsZero() {
		t.Errorf("Expected zero balance, got %s", got.Dec())
	}
}

func TestAccountZeroValueRoundTrip(t *testing.T) {
	data, err := NewAccount().encode()
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	decoded, err := decodeAccount(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(decoded.Approvals()) != 0 || len(decoded.Balances()) != 0 {
		t.Error("Expected an empty account after round-tripping the zero value")
	}
}

func TestDecodeGarbage(t *testing.T) {
	garbage := []byte{0xde, 0xad, 0xbe, 0xef}

	if _, err := decodeContract(garbage); err == nil {
		t.Error("Expected decodeContract to fail on garbage bytes")
	}
	if _, err := decodeAccount(garbage); err == nil {
		t.Error("Expected decodeAccount to fail on garbage bytes")
	}
}
