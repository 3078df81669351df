package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list the known accounts" }
func (*accountsCmd) Usage() string {
	return `erc1155 accounts

  Lists every account the CLI knows about; the current one is starred.
`
}
func (*accountsCmd) SetFlags(*flag.FlagSet) {}

func (*accountsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer store.DB().Close()

	state, err := loadState(store.DB())
	if err != nil {
		return fail(err)
	}
	for _, addr := range state.Accounts {
		marker := " "
		if addr == state.Current {
			marker = "*"
		}
		fmt.Printf("%s %s\n", marker, addr.Hex())
	}
	return subcommands.ExitSuccess
}

type currentCmd struct{}

func (*currentCmd) Name() string     { return "current" }
func (*currentCmd) Synopsis() string { return "show the current account" }
func (*currentCmd) Usage() string {
	return `erc1155 current

  Prints the account commands act on behalf of.
`
}
func (*currentCmd) SetFlags(*flag.FlagSet) {}

func (*currentCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer store.DB().Close()

	state, err := loadState(store.DB())
	if err != nil {
		return fail(err)
	}
	fmt.Println(state.Current.Hex())
	return subcommands.ExitSuccess
}

type useCmd struct {
	account string
}

func (*useCmd) Name() string     { return "use" }
func (*useCmd) Synopsis() string { return "switch the current account" }
func (*useCmd) Usage() string {
	return `erc1155 use -account <address>

  Makes the given account the caller for subsequent commands, registering
  it in the account book if needed.
`
}

func (c *useCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Address of the account to act as.")
}

func (c *useCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	addr, err := parseAddress(c.account)
	if err != nil {
		return fail(err)
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
	state.Current = addr
	state.Register(addr)
	if err := saveState(store.DB(), state); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}

type stateCmd struct {
	account string
}

func (*stateCmd) Name() string     { return "state" }
func (*stateCmd) Synopsis() string { return "dump an account's persisted record" }
func (*stateCmd) Usage() string {
	return `erc1155 state [-account <address>]

  Prints the balances and operator approvals of an account (default: the
  current one).
`
}

func (c *stateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Address to inspect. Defaults to the current account.")
}

func (c *stateCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer store.DB().Close()

	state, err := loadState(store.DB())
	if err != nil {
		return fail(err)
	}
	addr := state.Current
	if c.account != "" {
		if addr, err = parseAddress(c.account); err != nil {
			return fail(err)
		}
	}

	acct, err := newLedger(store, state).AccountState(addr)
	if err != nil {
		return fail(err)
	}

	fmt.Println("account:", addr.Hex())
	fmt.Println("balances:")
	for _, entry := range acct.Balances() {
		fmt.Printf("  token %s: %s\n", entry.ID.Dec(), entry.Value.Dec())
	}
	fmt.Println("approvals:")
	for _, operator := range acct.Approvals() {
		fmt.Printf("  %s\n", operator.Hex())
	}
	return subcommands.ExitSuccess
}
