// ABOUTME: StatusCmd loads a pool deployment config, builds a demo pool from it, and prints a Status snapshot.
package main

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/lexlapax/go-respool/pkg/cliexit"
	"github.com/lexlapax/go-respool/pkg/pool"
	"github.com/lexlapax/go-respool/pkg/poolconfig"
)

// StatusCmd builds a pool of trivial demo resources from a deployment
// config, acquires a few handles, and prints the resulting Status snapshot
// -- useful for sanity-checking a config file end to end.
type StatusCmd struct {
	File   string `arg:"" optional:"" help:"Path to a pool deployment YAML file (defaults searched if omitted)."`
	Holds  int    `default:"1" help:"How many handles to hold open before reporting status."`
}

func (c *StatusCmd) Run() error {
	loader := poolconfig.NewLoader(poolconfig.LoaderOptions{ConfigFile: c.File, ValidateOnLoad: true})
	depCfg, err := loader.Load()
	if err != nil {
		return cliexit.ConfigErrorf(err, "loading pool deployment config")
	}
	cfg, err := depCfg.ToPoolConfig()
	if err != nil {
		return cliexit.ConfigErrorf(err, "converting deployment config")
	}

	var next atomic.Int64
	mgr := pool.FuncManager[int64]{
		CreateFunc: func(ctx context.Context) (int64, error) {
			return next.Add(1), nil
		},
	}
	p := pool.NewWithConfig[int64](mgr, cfg)
	defer p.Close()

	handles := make([]*pool.Handle[int64], 0, c.Holds)
	for i := 0; i < c.Holds; i++ {
		h, err := p.Get(context.Background())
		if err != nil {
			return cliexit.PoolErrorf(err, "acquiring demo resource")
		}
		handles = append(handles, h)
	}
	defer func() {
		for _, h := range handles {
			h.Release()
		}
	}()

	status := p.Status()
	fmt.Printf("max_size=%d size=%d available=%d waiting=%d\n",
		status.MaxSize, status.Size, status.Available, status.Waiting)
	return nil
}
