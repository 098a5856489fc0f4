// ABOUTME: ValidateCmd loads a pool deployment config file and reports whether it is well-formed.
package main

import (
	"fmt"

	"github.com/lexlapax/go-respool/pkg/cliexit"
	"github.com/lexlapax/go-respool/pkg/poolconfig"
)

// ValidateCmd checks a YAML deployment config against DeploymentConfig.Validate.
type ValidateCmd struct {
	File string `arg:"" help:"Path to the pool deployment YAML file."`
}

func (c *ValidateCmd) Run() error {
	loader := poolconfig.NewLoader(poolconfig.LoaderOptions{})
	cfg, err := loader.LoadFile(c.File)
	if err != nil {
		return cliexit.ConfigErrorf(err, "loading %s", c.File)
	}
	fmt.Printf("ok: max_size=%d queue_mode=%s timeouts={wait:%q create:%q recycle:%q}\n",
		cfg.MaxSize, cfg.QueueMode, cfg.Timeouts.Wait, cfg.Timeouts.Create, cfg.Timeouts.Recycle)
	return nil
}
