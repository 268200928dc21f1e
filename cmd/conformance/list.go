package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/rolluplabs/evm-conformance/internal/conformance"
)

func list(_ *cli.Context) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, check := range conformance.Catalog() {
		marker := ""
		if check.NeedsFunds {
			marker = "[funds]"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", check.Name, marker, check.Desc)
	}
	return w.Flush()
}
