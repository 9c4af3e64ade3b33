// Package fetchstate tracks the lifecycle of one remote resource: idle,
// loading, then success or error.
package fetchstate

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-lookup/internal/providers"
)

// State is a point-in-time copy of a Holder.
type State[T any] struct {
	Data    T
	HasData bool
	Loading bool
	Error   string
}

type Option func(*options)

type options struct {
	supersede bool
	onChange  func()
}

// WithSupersede lets a trigger replace an in-flight fetch instead of being
// ignored. The older response is discarded when it arrives.
func WithSupersede() Option {
	return func(o *options) {
		o.supersede = true
	}
}

// WithOnChange registers a callback run after every state transition,
// outside the holder's lock.
func WithOnChange(fn func()) Option {
	return func(o *options) {
		o.onChange = fn
	}
}

// Holder fetches url through a Getter and decodes the payload into T.
type Holder[T any] struct {
	getter providers.Getter
	url    string
	opts   options

	mu         sync.Mutex
	state      State[T]
	seq        uint64
	lastParams providers.Params
}

func NewHolder[T any](getter providers.Getter, url string, opts ...Option) *Holder[T] {
	h := &Holder[T]{
		getter: getter,
		url:    url,
	}
	for _, opt := range opts {
		opt(&h.opts)
	}
	return h
}

// Trigger starts a fetch with params. It reports false and does nothing when
// a fetch is already in flight, unless the holder was built WithSupersede.
// The returned channel is closed once this fetch has resolved.
func (h *Holder[T]) Trigger(ctx context.Context, params providers.Params) (<-chan struct{}, bool) {
	h.mu.Lock()
	if h.state.Loading && !h.opts.supersede {
		h.mu.Unlock()
		log.Debug().Str("url", h.url).Msg("fetch already in flight, trigger ignored")
		return nil, false
	}

	h.seq++
	seq := h.seq
	h.state.Loading = true
	h.state.Error = ""
	h.lastParams = append(providers.Params(nil), params...)
	h.mu.Unlock()
	h.notify()

	done := make(chan struct{})
	go func() {
		defer close(done)
		h.resolve(seq, h.fetch(ctx, params))
	}()

	return done, true
}

type result[T any] struct {
	data T
	err  error
}

func (h *Holder[T]) fetch(ctx context.Context, params providers.Params) result[T] {
	body, err := h.getter.Get(ctx, h.url, params)
	if err != nil {
		return result[T]{err: err}
	}
	data, err := providers.DecodeJSON[T](body)
	return result[T]{data: data, err: err}
}

func (h *Holder[T]) resolve(seq uint64, res result[T]) {
	h.mu.Lock()
	if seq != h.seq {
		h.mu.Unlock()
		log.Debug().Str("url", h.url).Uint64("seq", seq).Msg("discarding stale response")
		return
	}

	if res.err != nil {
		h.state.Error = res.err.Error()
	} else {
		h.state.Data = res.data
		h.state.HasData = true
	}
	h.state.Loading = false
	h.mu.Unlock()

	if res.err != nil {
		log.Warn().Err(res.err).Str("url", h.url).Msg("fetch failed")
	}
	h.notify()
}

func (h *Holder[T]) State() State[T] {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// LastParams returns the parameters of the most recent accepted trigger.
func (h *Holder[T]) LastParams() providers.Params {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append(providers.Params(nil), h.lastParams...)
}

func (h *Holder[T]) notify() {
	if h.opts.onChange != nil {
		h.opts.onChange()
	}
}
