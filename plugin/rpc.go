// Package plugin provides the entry point for structlint ruleset plugins.
//
// This file implements the go-plugin Plugin interface over its net/rpc
// protocol, bridging the native structlint.RuleSet interface with the
// plugin process boundary. The whole surface is Go-to-Go with
// gob-friendly types (FileView, Violation), so no generated stubs are
// involved.

package plugin

import (
	"net/rpc"

	"github.com/hashicorp/go-plugin"

	"github.com/mlindh/structlint/engine"
	"github.com/mlindh/structlint/source"
	"github.com/mlindh/structlint/structlint"
)

// Ensure RuleSetPlugin implements plugin.Plugin.
var _ plugin.Plugin = (*RuleSetPlugin)(nil)

// RuleSetPlugin is the go-plugin implementation for the RuleSet service.
// This is used by both the host (to create a client) and the plugin
// (to create a server).
type RuleSetPlugin struct {
	// Impl is the concrete implementation of the RuleSet interface.
	// Only used when serving (plugin side).
	Impl structlint.RuleSet
}

// Server is called on the plugin side to create the RPC server.
func (p *RuleSetPlugin) Server(_ *plugin.MuxBroker) (interface{}, error) {
	return &RuleSetServer{impl: p.Impl}, nil
}

// Client is called on the host side to create the RPC client.
func (p *RuleSetPlugin) Client(_ *plugin.MuxBroker, c *rpc.Client) (interface{}, error) {
	return &RuleSetClient{client: c}, nil
}

// =============================================================================
// RPC argument and response types
// =============================================================================

// ApplyGlobalConfigArgs carries the wire config for ApplyGlobalConfig.
type ApplyGlobalConfigArgs struct {
	Config *WireConfig
}

// ApplyGlobalConfigResponse is the empty ApplyGlobalConfig reply.
type ApplyGlobalConfigResponse struct{}

// CheckFileArgs carries one scanned file for CheckFile.
type CheckFileArgs struct {
	View *source.FileView
}

// CheckFileResponse carries the violations found by the plugin.
type CheckFileResponse struct {
	Violations []structlint.Violation
}

// =============================================================================
// RuleSetServer - Plugin side
// =============================================================================

// RuleSetServer wraps a structlint.RuleSet to serve RPC requests.
// This runs in the plugin process and handles requests from the host.
type RuleSetServer struct {
	impl   structlint.RuleSet
	config *structlint.Config
}

// RuleSetName returns the name of the ruleset.
func (s *RuleSetServer) RuleSetName(_ interface{}, resp *string) error {
	*resp = s.impl.RuleSetName()
	return nil
}

// RuleSetVersion returns the version of the ruleset.
func (s *RuleSetServer) RuleSetVersion(_ interface{}, resp *string) error {
	*resp = s.impl.RuleSetVersion()
	return nil
}

// RuleNames returns the names of all rules in this ruleset.
func (s *RuleSetServer) RuleNames(_ interface{}, resp *[]string) error {
	*resp = s.impl.RuleNames()
	return nil
}

// VersionConstraint returns the host version constraint.
func (s *RuleSetServer) VersionConstraint(_ interface{}, resp *string) error {
	*resp = s.impl.VersionConstraint()
	return nil
}

// ApplyGlobalConfig applies the host configuration to the ruleset and
// keeps it for later CheckFile calls.
func (s *RuleSetServer) ApplyGlobalConfig(args *ApplyGlobalConfigArgs, _ *ApplyGlobalConfigResponse) error {
	s.config = fromWireConfig(args.Config)
	return s.impl.ApplyGlobalConfig(s.config)
}

// CheckFile runs all enabled rules against the shipped FileView and
// returns the collected violations.
func (s *RuleSetServer) CheckFile(args *CheckFileArgs, resp *CheckFileResponse) error {
	runner := engine.NewFileRunner(args.View, s.config)

	// Let the ruleset optionally wrap the runner
	wrapped, err := s.impl.NewRunner(runner)
	if err != nil {
		return err
	}

	builtin := s.impl.BuiltinImpl()
	for _, rule := range builtin.EnabledRules() {
		if err := rule.Check(wrapped); err != nil {
			return err
		}
	}

	resp.Violations = runner.Violations()
	return nil
}

// =============================================================================
// RuleSetClient - Host side (implements structlint.RuleSet)
// =============================================================================

// Ensure RuleSetClient implements structlint.RuleSet.
var _ structlint.RuleSet = (*RuleSetClient)(nil)

// RuleSetClient wraps the RPC client to implement structlint.RuleSet.
// This runs in the host process and calls the plugin.
type RuleSetClient struct {
	client *rpc.Client
}

// RuleSetName returns the name of the ruleset.
func (c *RuleSetClient) RuleSetName() string {
	var resp string
	if err := c.client.Call("Plugin.RuleSetName", new(interface{}), &resp); err != nil {
		return ""
	}
	return resp
}

// RuleSetVersion returns the version of the ruleset.
func (c *RuleSetClient) RuleSetVersion() string {
	var resp string
	if err := c.client.Call("Plugin.RuleSetVersion", new(interface{}), &resp); err != nil {
		return ""
	}
	return resp
}

// RuleNames returns the names of all rules in this ruleset.
func (c *RuleSetClient) RuleNames() []string {
	var resp []string
	if err := c.client.Call("Plugin.RuleNames", new(interface{}), &resp); err != nil {
		return nil
	}
	return resp
}

// VersionConstraint returns the host version constraint.
func (c *RuleSetClient) VersionConstraint() string {
	var resp string
	if err := c.client.Call("Plugin.VersionConstraint", new(interface{}), &resp); err != nil {
		return ""
	}
	return resp
}

// ApplyGlobalConfig applies the host configuration in the plugin process.
func (c *RuleSetClient) ApplyGlobalConfig(config *structlint.Config) error {
	args := &ApplyGlobalConfigArgs{Config: toWireConfig(config)}
	return c.client.Call("Plugin.ApplyGlobalConfig", args, &ApplyGlobalConfigResponse{})
}

// NewRunner returns the runner unchanged on the host side; wrapping
// happens in the plugin process.
func (c *RuleSetClient) NewRunner(runner structlint.Runner) (structlint.Runner, error) {
	return runner, nil
}

// BuiltinImpl returns nil on the host side.
// The actual implementation lives in the plugin process.
func (c *RuleSetClient) BuiltinImpl() *structlint.BuiltinRuleSet {
	return nil
}

// CheckFile ships a scanned file to the plugin and returns the
// violations its enabled rules found.
func (c *RuleSetClient) CheckFile(view *source.FileView) ([]structlint.Violation, error) {
	var resp CheckFileResponse
	if err := c.client.Call("Plugin.CheckFile", &CheckFileArgs{View: view}, &resp); err != nil {
		return nil, err
	}
	return resp.Violations, nil
}
