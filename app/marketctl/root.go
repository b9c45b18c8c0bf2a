package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/x-xyz/hbarmarket/app/bootstrap"
	"github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/base/env"
	"github.com/x-xyz/hbarmarket/base/log"
	"github.com/x-xyz/hbarmarket/domain/account"
	accountService "github.com/x-xyz/hbarmarket/service/account"
)

type globalOpts struct {
	configPath string
	jsonMode   bool
	noColor    bool
	yes        bool
	verbose    bool
}

// session is built once per invocation, before the subcommand runs.
type session struct {
	opts globalOpts
	c    ctx.Ctx
	app  *bootstrap.App
	out  *printer
}

func newRootCmd() *cobra.Command {
	s := &session{}

	cmd := &cobra.Command{
		Use:   "marketctl",
		Short: "Deploy, mint, list and buy NFTs on a Hedera EVM marketplace",
		Long: `marketctl drives the marketplace contracts from one configured account.

Every transaction is shown for confirmation before it is signed, pass --yes
to sign without prompting.

Examples:
  # Show the connected account and its HBAR balance
  marketctl account

  # List an NFT for 1.5 HBAR, approving the marketplace first when needed
  marketctl listing create 0xabc... 7 1.5 --approve

  # Buy two units of listing 3
  marketctl listing buy 3 --quantity 2`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.init()
		},
	}

	fs := cmd.PersistentFlags()
	fs.StringVarP(&s.opts.configPath, "config", "c", env.ConfigFile(bootstrap.DefaultConfigFile), "Path to the yaml configuration")
	fs.BoolVar(&s.opts.jsonMode, "json", false, "Output in JSON format")
	fs.BoolVar(&s.opts.noColor, "no-color", false, "Disable colored output")
	fs.BoolVarP(&s.opts.yes, "yes", "y", false, "Sign every transaction without prompting")
	fs.BoolVarP(&s.opts.verbose, "verbose", "v", false, "Log at debug level")

	cmd.AddCommand(
		newAccountCmd(s),
		newListingsCmd(s),
		newListingCmd(s),
		newApprovalCmd(s),
		newDeployCmd(s),
		newMintCmd(s),
		newConnectCmd(s),
		newPortfolioCmd(s),
		newTxCmd(s),
		newHealthCmd(s),
	)
	return cmd
}

func (s *session) init() error {
	s.out = newPrinter(os.Stdout, s.opts.jsonMode, s.opts.noColor)

	if err := bootstrap.ReadConfig(s.opts.configPath); err != nil {
		return err
	}
	// the terminal only shows warnings unless --verbose, whatever the config says
	lvl := "warn"
	if s.opts.verbose {
		lvl = "debug"
	}
	if err := log.Configure(log.Options{Level: lvl, Console: true}); err != nil {
		return err
	}
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	c, cancel := ctx.WithCancel(ctx.Background())
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		cancel()
	}()
	s.c = c

	var approver account.Approver = accountService.AutoApprover{}
	if !s.opts.yes {
		approver = &promptApprover{out: s.out}
	}
	s.app, err = bootstrap.Build(c, cfg, approver)
	return err
}

// addWaitFlag registers --wait on commands that broadcast a transaction.
func addWaitFlag(fs *pflag.FlagSet, wait *bool) {
	fs.BoolVarP(wait, "wait", "w", true, "Wait for the receipt before returning")
}
