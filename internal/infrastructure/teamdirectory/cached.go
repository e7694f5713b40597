package teamdirectory

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/nhl/internal/domain/team"
	"github.com/riskibarqy/nhl/internal/platform/cache"
	"github.com/riskibarqy/nhl/internal/platform/logging"
	"github.com/riskibarqy/nhl/internal/platform/resilience"
	"github.com/riskibarqy/nhl/internal/usecase"
)

const keyPrefix = "team:id:"

// Cached is a read-through team.Directory. A nil store disables caching and a disabled
// breaker config disables circuit protection.
type Cached struct {
	next    team.Directory
	store   *cache.Store
	breaker *resilience.CircuitBreaker
	logger  *logging.Logger
}

func NewCached(next team.Directory, store *cache.Store, breakerCfg resilience.CircuitBreakerConfig, logger *logging.Logger) *Cached {
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.Named("teamdirectory")

	d := &Cached{next: next, store: store, logger: logger}
	if breakerCfg.Enabled {
		d.breaker = resilience.NewCircuitBreakerFromConfig(breakerCfg)
		d.breaker.OnStateChange(func(from, to resilience.CircuitState) {
			logger.Warn("team directory circuit changed state", "from", string(from), "to", string(to))
		})
	}
	return d
}

func (d *Cached) Find(ctx context.Context, id int64) (team.Team, error) {
	if d.next == nil {
		return team.Team{}, errors.New("team directory has no upstream")
	}
	if id <= 0 {
		return team.Team{}, errors.Wrapf(usecase.ErrInvalidInput, "team id must be greater than zero, got %d", id)
	}
	if d.store == nil {
		return d.load(ctx, id)
	}

	v, err := d.store.GetOrLoad(ctx, key(id), func(ctx context.Context) (any, error) {
		return d.load(ctx, id)
	})
	if err != nil {
		return team.Team{}, err
	}

	item, _ := v.(team.Team)
	return item, nil
}

// Invalidate drops one cached team.
func (d *Cached) Invalidate(ctx context.Context, id int64) {
	if d.store != nil {
		d.store.Delete(ctx, key(id))
	}
}

// Purge drops every cached team.
func (d *Cached) Purge(ctx context.Context) {
	if d.store != nil {
		d.store.DeletePrefix(ctx, keyPrefix)
	}
}

// CircuitState reports the breaker state, or closed when protection is off.
func (d *Cached) CircuitState() resilience.CircuitState {
	if d.breaker == nil {
		return resilience.CircuitStateClosed
	}
	return d.breaker.State()
}

func (d *Cached) load(ctx context.Context, id int64) (team.Team, error) {
	if d.breaker == nil {
		return d.next.Find(ctx, id)
	}

	if err := d.breaker.Allow(); err != nil {
		d.logger.WarnContext(ctx, "team lookup rejected by circuit breaker", "team_id", id)
		return team.Team{}, fmt.Errorf("%w: find team id=%d: %w", usecase.ErrDependencyUnavailable, id, err)
	}

	item, err := d.next.Find(ctx, id)
	d.breaker.Record(outcomeOf(err))
	if err != nil {
		return team.Team{}, err
	}
	return item, nil
}

// outcomeOf counts unknown ids and bad input as healthy answers; a cancelled caller says nothing.
func outcomeOf(err error) resilience.Outcome {
	switch {
	case err == nil,
		errors.Is(err, usecase.ErrNotFound),
		errors.Is(err, usecase.ErrInvalidInput):
		return resilience.OutcomeSuccess
	case errors.Is(err, context.Canceled):
		return resilience.OutcomeIgnored
	default:
		return resilience.OutcomeFailure
	}
}

func key(id int64) string {
	return keyPrefix + strconv.FormatInt(id, 10)
}
