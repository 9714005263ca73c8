// Package testutil holds fakes shared by the package tests.
package testutil

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/vcare/contactmail/config"
	"github.com/vcare/contactmail/mailer"
)

// ErrSendFailed is returned for FailFor messages when Err is nil.
var ErrSendFailed = errors.New("fake send failed")

// ErrNotConcurrent is returned by FakeTransport when Wait is set and the
// expected sends did not all arrive in time.
var ErrNotConcurrent = errors.New("sends were not concurrent")

// FakeTransport records every message it is given. It is safe for concurrent use.
type FakeTransport struct {
	// FailFor makes Send return Err, or ErrSendFailed when Err is nil,
	// for messages of that kind.
	FailFor string
	Err     error
	// Wait, when set, makes every Send block until all expected sends arrived.
	Wait *sync.WaitGroup

	mu   sync.Mutex
	sent []mailer.Message
}

var _ mailer.Transport = (*FakeTransport)(nil)

func (f *FakeTransport) Name() string { return "fake" }

func (f *FakeTransport) Send(_ context.Context, msg mailer.Message) error {
	f.mu.Lock()
	f.sent = append(f.sent, msg)
	f.mu.Unlock()
	if f.Wait != nil {
		f.Wait.Done()
		done := make(chan struct{})
		go func() { f.Wait.Wait(); close(done) }()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			return ErrNotConcurrent
		}
	}
	if f.FailFor != "" && f.FailFor == msg.Kind {
		if f.Err == nil {
			return ErrSendFailed
		}
		return f.Err
	}
	return nil
}

// Messages returns a copy of the messages sent so far.
func (f *FakeTransport) Messages() []mailer.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]mailer.Message(nil), f.sent...)
}

// ByKind returns the first message of the given kind.
func (f *FakeTransport) ByKind(kind string) (mailer.Message, bool) {
	for _, m := range f.Messages() {
		if m.Kind == kind {
			return m, true
		}
	}
	return mailer.Message{}, false
}

// Factory returns a TransportFactory that always yields f and counts its calls.
func (f *FakeTransport) Factory(calls *int) mailer.TransportFactory {
	return func(config.MailConfig, mailer.Credentials) (mailer.Transport, error) {
		if calls != nil {
			*calls++
		}
		return f, nil
	}
}
