package plugin

import (
	"reflect"
	"testing"

	"github.com/mlindh/structlint/structlint"
)

func TestConfigConversion_RoundTrip(t *testing.T) {
	config := &structlint.Config{
		Rules: map[string]*structlint.RuleConfig{
			"import_order": {Name: "import_order", Enabled: true},
			"file_length":  {Name: "file_length", Enabled: false},
		},
		DisabledByDefault: true,
		Only:              []string{"import_order"},
		SeverityOverrides: map[string]structlint.Severity{
			"trailing_whitespace": structlint.WARNING,
		},
		StdlibModules: []string{"os", "sys"},
	}

	got := fromWireConfig(toWireConfig(config))

	if got.DisabledByDefault != config.DisabledByDefault {
		t.Errorf("DisabledByDefault = %v, want %v", got.DisabledByDefault, config.DisabledByDefault)
	}
	if !reflect.DeepEqual(got.Only, config.Only) {
		t.Errorf("Only = %v, want %v", got.Only, config.Only)
	}
	if !reflect.DeepEqual(got.SeverityOverrides, config.SeverityOverrides) {
		t.Errorf("SeverityOverrides = %v, want %v", got.SeverityOverrides, config.SeverityOverrides)
	}
	if !reflect.DeepEqual(got.StdlibModules, config.StdlibModules) {
		t.Errorf("StdlibModules = %v, want %v", got.StdlibModules, config.StdlibModules)
	}
	for name, ruleConfig := range config.Rules {
		converted, ok := got.Rules[name]
		if !ok {
			t.Errorf("rule %q missing after conversion", name)
			continue
		}
		if converted.Enabled != ruleConfig.Enabled {
			t.Errorf("rule %q Enabled = %v, want %v", name, converted.Enabled, ruleConfig.Enabled)
		}
	}
}

func TestConfigConversion_Nil(t *testing.T) {
	if toWireConfig(nil) != nil {
		t.Error("toWireConfig(nil) should be nil")
	}
	if fromWireConfig(nil) != nil {
		t.Error("fromWireConfig(nil) should be nil")
	}
}
