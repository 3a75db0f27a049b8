package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/localnerve/legalaid-api/internal/ai"
	"github.com/localnerve/legalaid-api/internal/services"
)

// ErrInvalidSession is returned by FakeSessions for unknown cookies.
var ErrInvalidSession = errors.New("invalid session")

// FakeSessions is a SessionValidator backed by a cookie to identity map.
type FakeSessions struct {
	mu       sync.Mutex
	sessions map[string]services.Identity
}

// NewFakeSessions returns an empty FakeSessions.
func NewFakeSessions() *FakeSessions {
	return &FakeSessions{sessions: map[string]services.Identity{}}
}

// Add makes cookie a valid session for identity.
func (f *FakeSessions) Add(cookie string, identity services.Identity) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[cookie] = identity
}

func (f *FakeSessions) ValidateSession(_ context.Context, cookie string) (*services.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	identity, ok := f.sessions[cookie]
	if !ok {
		return nil, ErrInvalidSession
	}
	return &identity, nil
}

// FakeCompleter replays a canned reply and records requests.
type FakeCompleter struct {
	Reply string
	Err   error

	mu       sync.Mutex
	Requests []ai.ChatRequest
}

func (f *FakeCompleter) Complete(ctx context.Context, req ai.ChatRequest) (string, error) {
	f.mu.Lock()
	f.Requests = append(f.Requests, req)
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	return f.Reply, f.Err
}

// Last returns the most recent request.
func (f *FakeCompleter) Last() ai.ChatRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Requests) == 0 {
		return ai.ChatRequest{}
	}
	return f.Requests[len(f.Requests)-1]
}
