package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	tconfig "github.com/spietras/timon-interpreter/cmd/timon/config"
)

// printConfig renders the effective configuration (embedded defaults
// merged with any user config files) as YAML, for `--dump-config`.
func printConfig() error {
	cfg := tconfig.Get()
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	fmt.Fprint(os.Stdout, string(out))
	return nil
}
