package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// ErrKindAborted marks a failure that makes further progress for the current
// kind pointless (credentials rejected by the service, for example). The run
// stops fanning the kind out to the remaining regions and moves on.
var ErrKindAborted = errors.New("resource kind aborted")

// Source supplies the account identity, the region set, and the kinds to
// enumerate.
type Source interface {
	// ResolveAccount returns the account ID all rows are stamped with.
	// Failure here is fatal to the run.
	ResolveAccount(ctx context.Context) (string, error)

	// Regions returns the regions regional kinds fan out to. Failure
	// degrades regional kinds to zero regions; it does not abort the run.
	Regions(ctx context.Context) ([]string, error)

	Kinds() []Kind
}

// Writer serializes the collected tables into a single artifact and returns
// its path.
type Writer interface {
	Write(account string, tables []Table) (string, error)
}

// Run executes one collection pass: identity, regions, then every kind in
// order, one region at a time. Everything below identity resolution is
// caught, logged, and scoped to the smallest failing unit so the run always
// ends with an artifact.
func Run(ctx context.Context, src Source, w Writer) (string, error) {
	account, err := src.ResolveAccount(ctx)
	if err != nil {
		return "", fmt.Errorf("resolve account identity: %w", err)
	}
	log.Info().Str("account", account).Msg("account identity resolved")

	regions, err := src.Regions(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("region resolution failed, regional kinds degrade to zero regions")
		regions = nil
	}

	tables := make([]Table, 0, len(src.Kinds()))
	for _, kind := range src.Kinds() {
		tables = append(tables, collectKind(ctx, kind, regions))
	}

	return w.Write(account, tables)
}

func collectKind(ctx context.Context, kind Kind, regions []string) Table {
	table := Table{Name: kind.Sheet, Header: kind.Header}

	targets := regions
	if kind.Global {
		targets = []string{""}
	}

	for _, region := range targets {
		rows, err := kind.Collect(ctx, region)
		if err != nil {
			if errors.Is(err, ErrKindAborted) {
				log.Warn().Err(err).Str("kind", kind.Sheet).Str("region", region).
					Msg("kind aborted, skipping remaining regions")
				break
			}
			log.Warn().Err(err).Str("kind", kind.Sheet).Str("region", region).
				Msg("collection failed, continuing with next region")
			continue
		}
		table.Rows = append(table.Rows, rows...)
	}

	log.Debug().Str("kind", kind.Sheet).Int("rows", len(table.Rows)).Msg("kind collected")
	return table
}
