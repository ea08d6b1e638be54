package commands

import (
	"fmt"
	"io"
	"reflect"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	config "martianoff/adt/internal/config"
	"martianoff/adt/typecompat"
)

// Report is the outcome of analyzing one pair of types.
type Report struct {
	Left     string `yaml:"left"`
	Right    string `yaml:"right"`
	Strategy string `yaml:"strategy"`
	Reason   string `yaml:"reason"`
}

// typePair keys the verdict cache for pairs named on the command line.
type typePair struct {
	left, right reflect.Type
}

func newStrategyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategy <left> <right>",
		Short: "Show the storage strategy of Either[left, right]",
		Long: `Show whether Either[left, right] stores its payload directly or boxed.

Types are Go spellings of well-known types, optionally prefixed with * or []:
  adt strategy int string
  adt strategy io.Reader *os.File
  adt strategy -o yaml error fmt.Stringer`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := config.GetOutputFormat()
			if err != nil {
				return err
			}

			report, err := analyzePair(args[0], args[1])
			if err != nil {
				return err
			}

			return writeReport(cmd.OutOrStdout(), format, report)
		},
	}
}

func analyzePair(left, right string) (Report, error) {
	l, err := typecompat.Lookup(left)
	if err != nil {
		return Report{}, errors.Wrap(err, "left type")
	}
	r, err := typecompat.Lookup(right)
	if err != nil {
		return Report{}, errors.Wrap(err, "right type")
	}

	verdict := typecompat.Resolve(typePair{left: l, right: r}, l, r)
	zap.S().Debugw("analyzed pair", "left", l.String(), "right", r.String(), "cached", typecompat.Cached())

	return Report{
		Left:     l.String(),
		Right:    r.String(),
		Strategy: verdict.Strategy.String(),
		Reason:   verdict.Reason,
	}, nil
}

func writeReport(w io.Writer, format string, report Report) error {
	if format == config.OutputYAML {
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return errors.Wrap(enc.Encode(report), "encode report")
	}

	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	fmt.Fprintf(tw, "left:\t%s\n", report.Left)
	fmt.Fprintf(tw, "right:\t%s\n", report.Right)
	fmt.Fprintf(tw, "strategy:\t%s\n", report.Strategy)
	fmt.Fprintf(tw, "reason:\t%s\n", report.Reason)
	return tw.Flush()
}
