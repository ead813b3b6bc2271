package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/trebuchet-org/arbiter/internal/domain"
)

// SubmitPhase is the lifecycle of one submission
type SubmitPhase int

const (
	SubmitIdle SubmitPhase = iota
	SubmitSigning
	SubmitConfirming
	SubmitConfirmed
	SubmitFailed
)

func (p SubmitPhase) String() string {
	switch p {
	case SubmitIdle:
		return "idle"
	case SubmitSigning:
		return "signing"
	case SubmitConfirming:
		return "confirming"
	case SubmitConfirmed:
		return "confirmed"
	case SubmitFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SubmitStatus is a snapshot of a submitter
type SubmitStatus struct {
	Seq     uint64
	Phase   SubmitPhase
	Hash    common.Hash
	Receipt *types.Receipt
	Err     error
}

// IsLoading is true from submission until the receipt or a failure
func (s SubmitStatus) IsLoading() bool {
	return s.Phase == SubmitSigning || s.Phase == SubmitConfirming
}

// Submission is the handle for one Submit call
type Submission struct {
	seq  uint64
	done chan struct{}

	mu     sync.Mutex
	status SubmitStatus
}

// Seq identifies the submission within its submitter
func (s *Submission) Seq() uint64 { return s.seq }

// Done is closed once the submission is confirmed or failed
func (s *Submission) Done() <-chan struct{} { return s.done }

// Status returns the latest status of this submission
func (s *Submission) Status() SubmitStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Wait blocks until the submission settles or ctx ends. Cancelling ctx
// stops waiting; the broadcast transaction is unaffected.
func (s *Submission) Wait(ctx context.Context) (*types.Receipt, error) {
	select {
	case <-s.done:
		st := s.Status()
		return st.Receipt, st.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *Submission) set(st SubmitStatus) {
	s.mu.Lock()
	s.status = st
	s.mu.Unlock()
}

// ChangeFunc observes status transitions of a submitter
type ChangeFunc func(prev, next SubmitStatus)

// Submitter wraps one mutating contract call. Submit is fire-and-forget;
// progress is observed through Status, OnChange and Watch.
type Submitter struct {
	call      string
	tx        Transactor
	txTimeout time.Duration
	log       *slog.Logger

	mu        sync.Mutex
	seq       uint64
	status    SubmitStatus
	listeners []ChangeFunc
	watchers  map[int]chan SubmitStatus
	nextWatch int
	wg        sync.WaitGroup
}

// NewSubmitter creates a submitter for the named contract call
func NewSubmitter(call string, tx Transactor, txTimeout time.Duration, log *slog.Logger) *Submitter {
	if log == nil {
		log = slog.Default()
	}
	return &Submitter{
		call:      call,
		tx:        tx,
		txTimeout: txTimeout,
		log:       log.With("call", call),
		watchers:  make(map[int]chan SubmitStatus),
	}
}

// Call returns the contract call this submitter sends
func (s *Submitter) Call() string { return s.call }

// Status returns the status of the latest submission
func (s *Submitter) Status() SubmitStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// IsLoading reports whether the latest submission is still in flight
func (s *Submitter) IsLoading() bool {
	return s.Status().IsLoading()
}

// Err returns the failure of the latest submission, if any
func (s *Submitter) Err() error {
	return s.Status().Err
}

// OnChange registers fn for every status transition. Callbacks run in
// transition order on the submitting goroutine and must not block.
func (s *Submitter) OnChange(fn ChangeFunc) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// Watch returns a channel of status transitions. Slow readers miss
// intermediate states but always see the newest one.
func (s *Submitter) Watch() (<-chan SubmitStatus, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextWatch
	s.nextWatch++
	ch := make(chan SubmitStatus, 1)
	s.watchers[id] = ch
	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.watchers, id)
	}
}

// Submit signs and broadcasts req in the background. The submitter is
// loading before Submit returns.
func (s *Submitter) Submit(ctx context.Context, req TxRequest) *Submission {
	if req.Label == "" {
		req.Label = s.call
	}

	s.mu.Lock()
	s.seq++
	sub := &Submission{seq: s.seq, done: make(chan struct{})}
	s.mu.Unlock()

	s.transition(sub, SubmitStatus{Seq: sub.seq, Phase: SubmitSigning})

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer close(sub.done)
		s.run(context.WithoutCancel(ctx), sub, req)
	}()
	return sub
}

func (s *Submitter) run(ctx context.Context, sub *Submission, req TxRequest) {
	if s.txTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.txTimeout)
		defer cancel()
	}

	hash, err := s.tx.Send(ctx, req)
	if err != nil {
		s.log.Warn("submission failed", "error", err)
		s.transition(sub, SubmitStatus{
			Seq:   sub.seq,
			Phase: SubmitFailed,
			Err:   domain.SubmissionError{Call: s.call, Err: err},
		})
		return
	}
	s.log.Debug("transaction sent", "hash", hash.Hex())
	s.transition(sub, SubmitStatus{Seq: sub.seq, Phase: SubmitConfirming, Hash: hash})

	receipt, err := s.tx.WaitReceipt(ctx, hash)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("still processing after %s: %w", s.txTimeout, err)
		}
		s.log.Warn("transaction not confirmed", "hash", hash.Hex(), "error", err)
		s.transition(sub, SubmitStatus{
			Seq:     sub.seq,
			Phase:   SubmitFailed,
			Hash:    hash,
			Receipt: receipt,
			Err:     domain.SubmissionError{Call: s.call, Err: err},
		})
		return
	}
	s.log.Debug("transaction confirmed", "hash", hash.Hex(), "block", receipt.BlockNumber)
	s.transition(sub, SubmitStatus{Seq: sub.seq, Phase: SubmitConfirmed, Hash: hash, Receipt: receipt})
}

// transition records next for sub. Only the newest submission drives the
// submitter-level status; superseded ones update their handle only.
func (s *Submitter) transition(sub *Submission, next SubmitStatus) {
	sub.set(next)

	s.mu.Lock()
	if next.Seq != s.seq {
		s.mu.Unlock()
		return
	}
	prev := s.status
	s.status = next
	listeners := append([]ChangeFunc(nil), s.listeners...)
	for _, ch := range s.watchers {
		select {
		case <-ch:
		default:
		}
		ch <- next
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(prev, next)
	}
}

// Close waits for in-flight submissions to settle
func (s *Submitter) Close() {
	s.wg.Wait()
}
