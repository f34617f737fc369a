package main

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/blogforge/internal/pipeline"
	"github.com/sells-group/blogforge/internal/store"
)

// pipelineEnv holds the store and pipeline shared by the run, batch, and
// serve commands.
type pipelineEnv struct {
	Store    store.Store
	Pipeline *pipeline.Pipeline
}

// Close releases resources held by the pipeline environment.
func (pe *pipelineEnv) Close() {
	if pe.Store != nil {
		_ = pe.Store.Close()
	}
}

// initStore opens the run history database and applies migrations.
func initStore(ctx context.Context) (store.Store, error) {
	st, err := store.NewSQLite(cfg.Store.Path)
	if err != nil {
		return nil, eris.Wrap(err, "open store")
	}
	if err := st.Migrate(ctx); err != nil {
		_ = st.Close()
		return nil, eris.Wrap(err, "migrate store")
	}
	return st, nil
}

// initPipeline sets up the store and builds all nine stages. Callers should
// defer env.Close().
func initPipeline(ctx context.Context) (*pipelineEnv, error) {
	st, err := initStore(ctx)
	if err != nil {
		return nil, err
	}

	p, err := pipeline.Build(cfg, st)
	if err != nil {
		_ = st.Close()
		return nil, eris.Wrap(err, "build pipeline")
	}

	return &pipelineEnv{Store: st, Pipeline: p}, nil
}
