package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/JRed1989/ambari/pkg/appstore"
)

// RunModels prints the slices of the application state.
func RunModels(opts GlobalOptions, stdout io.Writer) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	app, err := appstore.New(appstore.WithConfig(cfg))
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MODEL\tKIND\tITEM")
	for _, s := range app.Slices() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Model, s.Kind, s.Item)
	}
	return tw.Flush()
}
