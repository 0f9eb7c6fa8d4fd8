package runner

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Invocation is a recorded call to MockRunner.Run
type Invocation struct {
	Name string
	Args []string
}

// String renders the invocation as a command line (for assertions and debugging)
func (i Invocation) String() string {
	return strings.TrimSpace(i.Name + " " + strings.Join(i.Args, " "))
}

type mockResponse struct {
	result Result
	err    error
}

// MockRunner implements Runner for testing. It records every invocation and
// answers with queued responses per program, succeeding when none is queued.
type MockRunner struct {
	mu          sync.Mutex
	invocations []Invocation
	responses   map[string][]mockResponse
}

// NewMockRunner creates a new MockRunner
func NewMockRunner() *MockRunner {
	return &MockRunner{
		responses: make(map[string][]mockResponse),
	}
}

// Respond queues the outcome of the next call to program name
func (m *MockRunner) Respond(name string, result Result, err error) *MockRunner {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.responses[name] = append(m.responses[name], mockResponse{result: result, err: err})
	return m
}

// RespondExit queues an exit status for the next call to program name
func (m *MockRunner) RespondExit(name string, code int) *MockRunner {
	return m.Respond(name, Result{ExitCode: code}, nil)
}

// RespondError queues a start failure for the next call to program name
func (m *MockRunner) RespondError(name string, err error) *MockRunner {
	return m.Respond(name, Result{ExitCode: -1}, err)
}

func (m *MockRunner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.invocations = append(m.invocations, Invocation{
		Name: name,
		Args: append([]string(nil), args...),
	})

	if err := ctx.Err(); err != nil {
		return Result{ExitCode: -1}, fmt.Errorf("failed to run %s: %w", name, err)
	}

	queue := m.responses[name]
	if len(queue) == 0 {
		return Result{}, nil
	}

	next := queue[0]
	m.responses[name] = queue[1:]
	return next.result, next.err
}

// Invocations returns all recorded invocations in call order
func (m *MockRunner) Invocations() []Invocation {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]Invocation(nil), m.invocations...)
}

// Calls returns the recorded invocations of program name
func (m *MockRunner) Calls(name string) []Invocation {
	m.mu.Lock()
	defer m.mu.Unlock()

	var calls []Invocation
	for _, inv := range m.invocations {
		if inv.Name == name {
			calls = append(calls, inv)
		}
	}
	return calls
}
