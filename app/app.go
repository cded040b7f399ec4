package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/lumii-app/lumii/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the lumii app instance.
func Get() *cli.App {
	lumiiApp := &cli.App{
		Name: "lumii",
		Usage: `
		Lumii tracks your certification study habits from the command line. It
		logs study sessions, renders a contribution-style activity heatmap, and
		keeps streak statistics to help the habit stick.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "log",
				Usage:  "Record a completed study session",
				Action: logAction,
				Flags: []cli.Flag{
					durationFlag,
					techniqueFlag,
					certFlag,
					dateFlag,
					userFlag,
				},
			},
			{
				Name:   "timer",
				Usage:  "Count down a study session and record it when it ends",
				Action: timerAction,
				Flags: []cli.Flag{
					durationFlag,
					techniqueFlag,
					certFlag,
					userFlag,
					disableNotificationFlag,
					sessionCmdFlag,
				},
			},
			{
				Name:  "cert",
				Usage: "Manage the certifications you are studying towards",
				Subcommands: []*cli.Command{
					{
						Name:   "add",
						Usage:  "Register a certification",
						Action: certAddAction,
						Flags: []cli.Flag{
							targetHoursFlag,
							userFlag,
						},
					},
					{
						Name:   "list",
						Usage:  "List registered certifications",
						Action: certListAction,
						Flags: []cli.Flag{
							userFlag,
						},
					},
				},
			},
			{
				Name:   "serve",
				Usage:  "Serve the tracker data as JSON over HTTP",
				Action: serveAction,
				Flags: []cli.Flag{
					servePortFlag,
				},
			},
		},
		Flags: []cli.Flag{
			monthsFlag,
			userFlag,
			jsonFlag,
			noColorFlag,
		},
		Action: dashboardAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return lumiiApp
}
