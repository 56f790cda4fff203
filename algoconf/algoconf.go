// Package algoconf loads deployment configuration for the algorithm
// registries: provider selection weights and optional hardware provider
// settings.
//
// The registries work with zero configuration; an embedding application
// loads a config file and applies it before heavy use.
package algoconf

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/x/values"
	"github.com/effective-security/xlog"
	"gopkg.in/yaml.v3"

	"github.com/rafalsk/botan/algoreg"
)

var logger = xlog.NewPackageLogger("github.com/rafalsk/botan", "algoconf")

// EnvPkcs11Module names the environment variable that can supply the
// PKCS#11 module path when the config file does not.
const EnvPkcs11Module = "BOTAN_PKCS11_MODULE"

// Config is the on-disk configuration, in YAML or JSON.
type Config struct {
	// ProviderWeights overrides selection priorities by provider name.
	// Providers not listed keep their default weight.
	ProviderWeights map[string]int `json:"ProviderWeights" yaml:"provider_weights"`

	// PKCS11 configures the optional PKCS#11 provider.
	PKCS11 PKCS11Config `json:"PKCS11" yaml:"pkcs11"`
}

// PKCS11Config describes the PKCS#11 module to load.
type PKCS11Config struct {
	// Path is the full path to the PKCS#11 library.
	Path string `json:"Path" yaml:"path"`

	// TokenLabel selects a token by label; the first token wins when empty.
	TokenLabel string `json:"TokenLabel" yaml:"token_label"`
}

// Load reads configuration from a YAML or JSON file.
func Load(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()

	cfg := new(Config)
	if strings.HasSuffix(filename, ".json") {
		err = json.NewDecoder(f).Decode(cfg)
	} else {
		err = yaml.NewDecoder(f).Decode(cfg)
	}
	if err != nil {
		return nil, errors.WithMessagef(err, "unable to parse config: %s", filename)
	}
	return cfg, nil
}

// Pkcs11Module returns the configured PKCS#11 module path, falling back to
// the BOTAN_PKCS11_MODULE environment variable.
func (c *Config) Pkcs11Module() string {
	return values.StringsCoalesce(c.PKCS11.Path, os.Getenv(EnvPkcs11Module))
}

// Apply installs the configured provider weights process-wide. Providers
// without an override keep their default priority.
func (c *Config) Apply() {
	if len(c.ProviderWeights) == 0 {
		return
	}

	overrides := make(map[string]int, len(c.ProviderWeights))
	for name, w := range c.ProviderWeights {
		overrides[name] = w
	}
	logger.KV(xlog.INFO, "reason", "provider_weights", "overrides", len(overrides))

	algoreg.SetProviderWeight(func(provider string) int {
		if w, ok := overrides[provider]; ok {
			return w
		}
		return algoreg.DefaultProviderWeight(provider)
	})
}
