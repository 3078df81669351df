package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/subcommands"
	"github.com/holiman/uint256"
)

type createTokenCmd struct {
	supply string
}

func (*createTokenCmd) Name() string     { return "create-token" }
func (*createTokenCmd) Synopsis() string { return "mint a new token type to the current account" }
func (*createTokenCmd) Usage() string {
	return `erc1155 create-token -supply <amount>

  Allocates the next token identifier and credits the full initial supply
  to the current account.
`
}

func (c *createTokenCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.supply, "supply", "", "Initial supply of the new token.")
}

func (c *createTokenCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	supply, err := uint256.FromDecimal(c.supply)
	if err != nil {
		return fail(fmt.Errorf("invalid supply %q: %w", c.supply, err))
	}

	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer store.DB().Close()

	state, err := loadState(store.DB())
	if err != nil {
		return fail(err)
	}

	id, err := newLedger(store, state).CreateToken(supply)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("created token %s with supply %s for %s\n", id.Dec(), supply.Dec(), state.Current.Hex())
	return subcommands.ExitSuccess
}

type transferCmd struct {
	from    string
	to      string
	ids     string
	amounts string
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "transfer tokens between two accounts" }
func (*transferCmd) Usage() string {
	return `erc1155 transfer [-from <address>] -to <address> -ids <id,...> -amounts <amount,...>

  Moves amounts[i] units of token ids[i] from one account to another as a
  single atomic batch. The caller is the current account; transferring
  from another account requires its approval.
`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Account to transfer from. Defaults to the current account.")
	f.StringVar(&c.to, "to", "", "Account to transfer to.")
	f.StringVar(&c.ids, "ids", "", "Comma-separated token ids.")
	f.StringVar(&c.amounts, "amounts", "", "Comma-separated amounts, parallel to -ids.")
}

func (c *transferCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	to, err := parseAddress(c.to)
	if err != nil {
		return fail(err)
	}
	ids, err := parseUintList(c.ids)
	if err != nil {
		return fail(fmt.Errorf("invalid -ids: %w", err))
	}
	amounts, err := parseUintList(c.amounts)
	if err != nil {
		return fail(fmt.Errorf("invalid -amounts: %w", err))
	}

	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer store.DB().Close()

	state, err := loadState(store.DB())
	if err != nil {
		return fail(err)
	}
	from := state.Current
	if c.from != "" {
		if from, err = parseAddress(c.from); err != nil {
			return fail(err)
		}
	}

	if err := newLedger(store, state).SafeBatchTransferFrom(from, to, ids, amounts, nil); err != nil {
		return fail(err)
	}
	fmt.Printf("transferred %d token(s) from %s to %s\n", len(ids), from.Hex(), to.Hex())
	return subcommands.ExitSuccess
}

type balanceCmd struct {
	owner string
	ids   string
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "query token balances" }
func (*balanceCmd) Usage() string {
	return `erc1155 balance [-owner <address>] -ids <id,...>

  Prints the owner's balance for each listed token id. Accounts or tokens
  with no prior activity report zero.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.owner, "owner", "", "Account to query. Defaults to the current account.")
	f.StringVar(&c.ids, "ids", "", "Comma-separated token ids.")
}

func (c *balanceCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ids, err := parseUintList(c.ids)
	if err != nil {
		return fail(fmt.Errorf("invalid -ids: %w", err))
	}

	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer store.DB().Close()

	state, err := loadState(store.DB())
	if err != nil {
		return fail(err)
	}
	owner := state.Current
	if c.owner != "" {
		if owner, err = parseAddress(c.owner); err != nil {
			return fail(err)
		}
	}

	owners := make([]common.Address, len(ids))
	for i := range owners {
		owners[i] = owner
	}
	balances, err := newLedger(store, state).BalanceOfBatch(owners, ids)
	if err != nil {
		return fail(err)
	}
	for i, bal := range balances {
		fmt.Printf("token %s: %s\n", ids[i].Dec(), bal.Dec())
	}
	return subcommands.ExitSuccess
}
