// Package plugin provides the entry point for structlint ruleset plugins.
//
// This file contains the main Serve function that plugins call to
// start serving their ruleset to the host.

package plugin

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	"github.com/mlindh/structlint/structlint"
)

// ServeOpts contains the options for serving a plugin.
type ServeOpts struct {
	// RuleSet is the ruleset implementation to serve.
	RuleSet structlint.RuleSet
}

// Serve starts serving the ruleset as a plugin.
// This function blocks until the host disconnects. It should be called
// from the main function of a plugin binary:
//
//	func main() {
//		plugin.Serve(&plugin.ServeOpts{
//			RuleSet: rules.NewRuleSet(nil),
//		})
//	}
func Serve(opts *ServeOpts) {
	if opts == nil || opts.RuleSet == nil {
		fmt.Fprintln(os.Stderr, "Error: ServeOpts.RuleSet must be set")
		os.Exit(1)
	}

	// Detect direct invocation before go-plugin does, so users get a
	// readable message instead of a protocol error.
	if os.Getenv(MagicCookieKey) != MagicCookieValue {
		printDirectInvocationMessage(opts.RuleSet)
		os.Exit(1)
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:       opts.RuleSet.RuleSetName(),
		Level:      hclog.LevelFromString(os.Getenv("STRUCTLINT_LOG")),
		Output:     os.Stderr,
		JSONFormat: true,
	})

	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: Handshake,
		Plugins: map[string]plugin.Plugin{
			PluginName: &RuleSetPlugin{Impl: opts.RuleSet},
		},
		Logger: logger,
	})
}

func printDirectInvocationMessage(ruleset structlint.RuleSet) {
	fmt.Fprintf(os.Stderr, "This binary is the %q structlint plugin. It is not meant to be executed directly.\n", ruleset.RuleSetName())
	fmt.Fprintln(os.Stderr, "Place it in the plugin directory and run structlint to load it.")
}
