package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Options holds the per-invocation CLI settings that are not part of the
// layered configuration
type Options struct {
	// Interface is the definition text given inline
	Interface string

	// File is the path of a file holding the definition; "-" reads stdin
	File string

	// Output is the destination file; empty writes to stdout
	Output string
}

// flagKeys maps flag names to configuration keys
var flagKeys = map[string]string{
	"count":      "count",
	"seed":       "seed",
	"mode":       "mode",
	"target":     "target",
	"format":     "format",
	"go-package": "go_package",
	"verbose":    "verbose",
	"quiet":      "quiet",
	"addr":       "server.http_addr",
	"log-json":   "server.log_json",
	"log-level":  "server.log_level",
}

// bindFlags binds every configuration flag defined on cmd to v so that set
// flags override file and environment values
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok || bindErr != nil {
			return
		}
		bindErr = v.BindPFlag(key, f)
	})
	return bindErr
}

func addInputFlags(cmd *cobra.Command, opts *Options) {
	cmd.Flags().StringVarP(&opts.Interface, "interface", "i", "", "Definition text, e.g. 'interface User { id: string }'")
	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "File containing the definition (- for stdin)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output file (default: stdout)")
}
