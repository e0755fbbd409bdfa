package main

import (
	"errors"
	"fmt"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"
)

func licenseCommand() *cli.Command {
	return &cli.Command{
		Name:  "license",
		Usage: l10n.T("Manage the Pro license"),
		Subcommands: []*cli.Command{
			{
				Name:      "activate",
				Usage:     l10n.T("Activate Pro with the email used at checkout"),
				ArgsUsage: "EMAIL",
				Action:    runActivate,
			},
			{
				Name:   "status",
				Usage:  l10n.T("Show the stored license"),
				Action: runStatus,
			},
			{
				Name:   "deactivate",
				Usage:  l10n.T("Remove the stored license"),
				Action: runDeactivate,
			},
		},
	}
}

func runActivate(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	defer e.Close()

	svc, err := e.entitlement()
	if err != nil {
		return err
	}
	res := svc.Activate(e.ctx, c.Args().First())
	if !res.Success {
		return errors.New(l10n.T(res.Error))
	}
	return nil
}

func runStatus(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	defer e.Close()

	svc, err := e.entitlement()
	if err != nil {
		return err
	}
	lic, err := svc.License(e.ctx)
	if err != nil {
		return err
	}
	if lic == nil || !lic.Valid {
		fmt.Fprintln(c.App.Writer, l10n.T("Free plan: no active license"))
		return nil
	}
	fmt.Fprintln(c.App.Writer, l10n.F("Pro plan: %s (activated %s)", lic.Email, lic.ActivatedAt.Local().Format("2006-01-02 15:04")))
	return nil
}

func runDeactivate(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	defer e.Close()

	svc, err := e.entitlement()
	if err != nil {
		return err
	}
	return svc.Deactivate(e.ctx)
}
