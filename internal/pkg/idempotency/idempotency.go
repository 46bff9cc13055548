// Package idempotency guards operations with a client supplied key stored in Redis.
//
// A key moves through in_progress -> completed. A failed operation releases
// its key so the caller can retry with the same key after fixing the input.
// Once the operation succeeded its result stands even if the completed state
// cannot be stored; the key then expires with the lock.
package idempotency

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	// ErrAlreadyInProgress is returned while another call holds the key.
	ErrAlreadyInProgress = errors.New("operation already in progress")
	// ErrAlreadyCompleted is returned when the key was used by a successful call.
	ErrAlreadyCompleted = errors.New("operation already completed")
	// ErrInvalidState is returned when the stored value is not a known state.
	ErrInvalidState = errors.New("invalid state")
)

// State is the stored state of a key.
type State string

const (
	StateNone       State = "none"        // operation can proceed
	StateInProgress State = "in_progress" // operation already in progress
	StateCompleted  State = "completed"   // operation already completed
	StateError      State = "error"       // state lookup failed
)

func (s State) String() string {
	return string(s)
}

// Idempotency runs fn at most once per key.
type Idempotency interface {
	Exec(ctx context.Context, key string, fn func(context.Context) error, opts ...Option) error
}

// StateTracker implements Idempotency on Redis.
type StateTracker struct {
	client redis.Cmdable
	prefix string
}

// New returns a StateTracker storing keys under "idempotency:".
func New(client redis.Cmdable) *StateTracker {
	return &StateTracker{
		client: client,
		prefix: "idempotency:",
	}
}

const (
	defaultLockDuration = time.Minute
	defaultStateTTL     = 24 * time.Hour
)

// Option customizes a single Exec call.
type Option func(*execOptions)

type execOptions struct {
	lockDuration time.Duration
	stateTTL     time.Duration
}

// WithLockDuration bounds how long an in-progress key blocks other callers.
func WithLockDuration(lockDuration time.Duration) Option {
	return func(o *execOptions) {
		o.lockDuration = lockDuration
	}
}

// WithStateTTL sets how long a completed key is remembered.
func WithStateTTL(stateTTL time.Duration) Option {
	return func(o *execOptions) {
		o.stateTTL = stateTTL
	}
}

// Acquire tries to start an operation.
func (s *StateTracker) Acquire(ctx context.Context, key string, lockDuration time.Duration) (State, error) {
	fk := s.prefix + key

	acquired, err := s.client.SetNX(ctx, fk, StateInProgress.String(), lockDuration).Result()
	if err != nil {
		return StateError, err
	}
	if acquired {
		return StateNone, nil
	}

	result, err := s.client.Get(ctx, fk).Result()
	if errors.Is(err, redis.Nil) {
		// expired between SetNX and Get
		return s.Acquire(ctx, key, lockDuration)
	}
	if err != nil {
		return StateError, err
	}

	switch State(result) {
	case StateInProgress:
		return StateInProgress, nil
	case StateCompleted:
		return StateCompleted, nil
	default:
		return StateError, ErrInvalidState
	}
}

// MarkCompleted records a successful operation for ttl.
func (s *StateTracker) MarkCompleted(ctx context.Context, key string, ttl time.Duration) error {
	return s.client.Set(ctx, s.prefix+key, StateCompleted.String(), ttl).Err()
}

// Release forgets the key.
func (s *StateTracker) Release(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.prefix+key).Err()
}

// Exec runs fn unless key is in progress or completed. An empty key runs fn
// unguarded.
func (s *StateTracker) Exec(ctx context.Context, key string, fn func(context.Context) error, opts ...Option) error {
	if key == "" {
		return fn(ctx)
	}

	execOpt := &execOptions{
		lockDuration: defaultLockDuration,
		stateTTL:     defaultStateTTL,
	}
	for _, opt := range opts {
		opt(execOpt)
	}
	if execOpt.lockDuration <= 0 {
		execOpt.lockDuration = defaultLockDuration
	}
	if execOpt.stateTTL <= 0 {
		execOpt.stateTTL = defaultStateTTL
	}

	state, err := s.Acquire(ctx, key, execOpt.lockDuration)
	if err != nil {
		return err
	}

	switch state {
	case StateInProgress:
		return ErrAlreadyInProgress
	case StateCompleted:
		return ErrAlreadyCompleted
	}

	if err := fn(ctx); err != nil {
		if relErr := s.Release(ctx, key); relErr != nil {
			return errors.Join(err, relErr)
		}
		return err
	}

	if err := s.MarkCompleted(ctx, key, execOpt.stateTTL); err != nil {
		slog.WarnContext(ctx, "failed to mark idempotency key completed", "idempotency_key", key, "error", err)
	}

	return nil
}

// Noop runs every call. Used when no Redis is configured.
type Noop struct{}

// Exec runs fn.
func (Noop) Exec(ctx context.Context, _ string, fn func(context.Context) error, _ ...Option) error {
	return fn(ctx)
}
