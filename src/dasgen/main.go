package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/overline-mining/dasgen/src/common"
	"github.com/overline-mining/dasgen/src/config"
	"github.com/overline-mining/dasgen/src/dashash"
	db "github.com/overline-mining/dasgen/src/database"
	"github.com/overline-mining/dasgen/src/emitter"
	"github.com/overline-mining/dasgen/src/genesis"
	"github.com/overline-mining/dasgen/src/reserved"
	"github.com/overline-mining/dasgen/src/validation"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var cli struct {
	LogLevel string `help:"Logging level. Supported levels: DEV, DEBUG, INFO, WARN, ERROR, FATAL." default:"INFO"`
	Network  string `help:"Built-in profile and category table: mainnet or testnet." default:"testnet"`
	Profile  string `help:"TOML file overriding the profile parameters."`

	Config struct {
		DataDir string `help:"Directory holding the input lists." default:"data"`
		Table   string `help:"YAML category table used instead of the built-in one."`
		Ledger  string `help:"bbolt file remembering the previous run; changed cells are logged."`
	} `cmd:"" help:"Generate every ConfigCell."`

	Account struct{} `cmd:"" help:"Generate the root AccountCell of the account chain."`

	Wallet struct{} `cmd:"" help:"Generate the root WalletCell."`

	Combine struct {
		Input  string `short:"i" help:"Directory of raw reserved account lists." default:"raw-reserved-accounts"`
		Output string `short:"o" help:"Combined reserved account file." default:"data/reserved_accounts.txt"`
	} `cmd:"" help:"Combine raw lists of reserved .bit accounts into one file."`

	Affected struct {
		Names []string `arg:"" optional:"" help:"New reserved account names."`
		File  string   `help:"Newline-delimited file of new reserved account names."`
	} `cmd:"" help:"List the preserved account ConfigCells that adding names would change."`
}

func PrintProgramHeader() {
	zap.S().Infof("dasgen version: %s", common.GetVersion())
}

func loadParams() config.Params {
	p, err := config.ProfileFor(cli.Network)
	common.CheckError(err)
	if cli.Profile != "" {
		p, err = config.LoadParams(cli.Profile, p)
		common.CheckError(err)
	}
	common.CheckError(p.Validate())
	zap.S().Debugf("Profile %+v", p)
	return p
}

func runConfig(p config.Params) {
	var table *config.Table
	var err error
	if cli.Config.Table != "" {
		table, err = config.LoadTable(cli.Config.Table)
	} else {
		table, err = config.DefaultTable(p.Network)
	}
	common.CheckError(err)

	g, err := genesis.NewGenerator(p, table, cli.Config.DataDir)
	common.CheckError(err)
	outputs, err := g.Run()
	common.CheckError(err)

	if cli.Config.Ledger != "" {
		ledger := &db.Ledger{Config: db.DefaultLedgerConfig()}
		common.CheckError(ledger.Open(cli.Config.Ledger))
		changes, err := ledger.Diff(p.Network, outputs)
		common.CheckError(err)
		if changes.NetworkSwitched {
			zap.S().Warnf("Ledger %v was written for another network", cli.Config.Ledger)
		}
		for _, d := range changes.Changed {
			zap.S().Infof("Changed since last run: %v", d)
			previous, ok, err := ledger.Line(d)
			common.CheckError(err)
			if ok {
				zap.S().Debugf("Previous %v: %v", d, previous)
			}
		}
		zap.S().Infof("%d cells changed, %d unchanged", len(changes.Changed), len(changes.Unchanged))
		common.CheckError(ledger.Record(p.Network, common.GetVersion(), outputs))
		common.CheckError(ledger.Close())
	}

	fmt.Println(emitter.Join(outputs))
}

func runAffected(p config.Params) {
	names := append([]string(nil), cli.Affected.Names...)
	if cli.Affected.File != "" {
		lines, err := genesis.ReadLines(cli.Affected.File)
		if err != nil {
			common.CheckError(&common.InputUnreadableError{Category: "affected", Path: cli.Affected.File, Err: err})
		}
		names = append(names, lines...)
	}
	names = validation.CleanLines(names)
	if len(names) == 0 {
		common.CheckError(&common.InvalidParametersError{Reason: "no account names given"})
	}
	for _, key := range genesis.AffectedBuckets(names, p, dashash.Blake2b256) {
		fmt.Println(key)
	}
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("dasgen"),
		kong.Description("Genesis and config data generator for the DAS cell contracts."),
	)

	common.SetupLogger(cli.LogLevel, os.Stderr)
	defer zap.L().Sync()

	PrintProgramHeader()

	switch strings.Fields(ctx.Command())[0] {
	case "config":
		runConfig(loadParams())
	case "account":
		out, err := genesis.BuildRootAccountCell(loadParams(), dashash.Blake2b256)
		common.CheckError(err)
		fmt.Println(out)
	case "wallet":
		fmt.Println(genesis.BuildRootWalletCell())
	case "combine":
		accounts, err := reserved.Combine(cli.Combine.Input, os.Stderr)
		common.CheckError(err)
		common.CheckError(reserved.WriteAccounts(cli.Combine.Output, accounts))
		zap.S().Infof("Wrote %d accounts to %v", len(accounts), cli.Combine.Output)
	case "affected":
		runAffected(loadParams())
	default:
		common.CheckError(errors.Errorf("unknown command %q", ctx.Command()))
	}
}
