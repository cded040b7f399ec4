package app

import "github.com/urfave/cli/v2"

var (
	monthsFlag = &cli.IntFlag{
		Name:    "months",
		Aliases: []string{"m"},
		Usage:   "Number of months of study activity to report on",
	}

	userFlag = &cli.StringFlag{
		Name:    "user",
		Aliases: []string{"u"},
		Usage:   "Report on a specific user instead of the configured one",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output in JSON format",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	durationFlag = &cli.IntFlag{
		Name:    "duration",
		Aliases: []string{"d"},
		Usage:   "Session duration in minutes",
	}

	techniqueFlag = &cli.StringFlag{
		Name:    "technique",
		Aliases: []string{"t"},
		Usage:   "Study technique used: pomodoro, focused, or mock-exam",
	}

	certFlag = &cli.StringFlag{
		Name:    "cert",
		Aliases: []string{"c"},
		Usage:   "Attribute the session to a certification by its ID",
	}

	dateFlag = &cli.StringFlag{
		Name:  "date",
		Usage: "Backdate the session (e.g. 'yesterday 3pm', '2 days ago')",
	}

	targetHoursFlag = &cli.IntFlag{
		Name:  "target-hours",
		Usage: "Total study hours the certification is expected to take",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"dn"},
		Usage:   "Disable the system notification that appears after a session is completed",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after the session is recorded",
	}

	servePortFlag = &cli.UintFlag{
		Name:  "port",
		Usage: "Specify the port for the statistics server",
		Value: 1111,
	}
)
