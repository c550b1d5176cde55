// Package plugin provides the entry point for structlint ruleset plugins.
//
// This file contains the host-side client used to launch a plugin
// binary and speak to its ruleset.

package plugin

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"
)

// Discover returns the plugin binaries installed under dir, sorted by
// name. Only regular executable files named structlint-ruleset-* are
// considered.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading plugin directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), "structlint-ruleset-") {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.Mode()&0o111 == 0 {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// Client launches the plugin binary at path and returns the running
// go-plugin client. The caller owns the client and must Kill it when
// done.
func Client(path string, logger hclog.Logger) *plugin.Client {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig: Handshake,
		Plugins:         PluginMap,
		Cmd:             exec.Command(path),
		Logger:          logger,
	})
}

// Dispense connects to the plugin served by client and returns its
// ruleset client.
func Dispense(client *plugin.Client) (*RuleSetClient, error) {
	rpcClient, err := client.Client()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to plugin: %w", err)
	}

	raw, err := rpcClient.Dispense(PluginName)
	if err != nil {
		return nil, fmt.Errorf("failed to dispense ruleset: %w", err)
	}

	ruleset, ok := raw.(*RuleSetClient)
	if !ok {
		return nil, fmt.Errorf("plugin returned unexpected type %T", raw)
	}
	return ruleset, nil
}
