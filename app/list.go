package app

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/lumii-app/lumii/internal/models"
)

func printTable(data [][]string, writer io.Writer) {
	d := [][]string{
		{"#", "NAME", "ID", "TARGET HOURS", "ADDED"},
	}

	d = append(d, data...)

	table := pterm.DefaultTable
	table.Boxed = true

	str, err := table.WithHasHeader().WithData(d).Srender()
	if err != nil {
		pterm.Error.Printfln("Failed to output certification table: %s", err.Error())
		return
	}

	fmt.Fprintln(writer, str)
}

func printCertsTable(w io.Writer, certs []*models.Certificate) {
	tableBody := make([][]string, 0, len(certs))

	for i, cert := range certs {
		target := ""
		if cert.TargetHours > 0 {
			target = fmt.Sprintf("%d", cert.TargetHours)
		}

		row := []string{
			fmt.Sprintf("%d", i+1),
			cert.Name,
			cert.ID,
			target,
			cert.CreatedAt.Format("January 02, 2006"),
		}

		tableBody = append(tableBody, row)
	}

	printTable(tableBody, w)
}
