package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type approveCmd struct {
	operator string
}

func (*approveCmd) Name() string     { return "approve" }
func (*approveCmd) Synopsis() string { return "approve an operator for the current account" }
func (*approveCmd) Usage() string {
	return `erc1155 approve -operator <address>

  Grants the operator authority to transfer tokens on behalf of the
  current account.
`
}

func (c *approveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.operator, "operator", "", "Address of the account to approve.")
}

func (c *approveCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return setApproval(c.operator, true)
}

type revokeCmd struct {
	operator string
}

func (*revokeCmd) Name() string     { return "revoke" }
func (*revokeCmd) Synopsis() string { return "revoke an operator of the current account" }
func (*revokeCmd) Usage() string {
	return `erc1155 revoke -operator <address>

  Removes the operator's authority over the current account. Revoking an
  operator that was never approved is a no-op.
`
}

func (c *revokeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.operator, "operator", "", "Address of the account to revoke.")
}

func (c *revokeCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return setApproval(c.operator, false)
}

// setApproval runs SetApprovalForAll for both the approve and revoke
// commands.
func setApproval(operator string, approved bool) subcommands.ExitStatus {
	addr, err := parseAddress(operator)
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

	if err := newLedger(store, state).SetApprovalForAll(addr, approved); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}

type approvedCmd struct {
	owner    string
	operator string
}

func (*approvedCmd) Name() string     { return "approved" }
func (*approvedCmd) Synopsis() string { return "check whether an operator is approved" }
func (*approvedCmd) Usage() string {
	return `erc1155 approved [-owner <address>] -operator <address>

  Prints true if the operator holds the owner's approval (default owner:
  the current account).
`
}

func (c *approvedCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.owner, "owner", "", "Owner account. Defaults to the current account.")
	f.StringVar(&c.operator, "operator", "", "Operator account to check.")
}

func (c *approvedCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	operator, err := parseAddress(c.operator)
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
	owner := state.Current
	if c.owner != "" {
		if owner, err = parseAddress(c.owner); err != nil {
			return fail(err)
		}
	}

	ok, err := newLedger(store, state).IsApprovedForAll(owner, operator)
	if err != nil {
		return fail(err)
	}
	fmt.Println(ok)
	return subcommands.ExitSuccess
}
