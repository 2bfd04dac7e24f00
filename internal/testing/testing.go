// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/flintapp/flint-cli/internal/models"
	"github.com/flintapp/flint-cli/internal/session"
)

// MockCatalog is a test double for the catalog search backend.
type MockCatalog struct {
	Results []models.ContentRef
	Err     error
	Calls   []string
}

func (m *MockCatalog) SearchContents(ctx context.Context, keyword string) ([]models.ContentRef, error) {
	m.Calls = append(m.Calls, keyword)
	return m.Results, m.Err
}

// MemoryStore is an in-memory [session.Store] for tests.
type MemoryStore struct {
	Identity  *session.Identity
	TempToken string
	LoadErr   error
	SaveErr   error
}

func (m *MemoryStore) Load() (*session.Identity, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if !m.Identity.LoggedIn() {
		return nil, nil
	}
	return m.Identity, nil
}

func (m *MemoryStore) Save(identity *session.Identity) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Identity = identity
	return nil
}

func (m *MemoryStore) Clear() error {
	m.Identity = nil
	m.TempToken = ""
	return nil
}

func (m *MemoryStore) SaveTempToken(token string) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.TempToken = token
	return nil
}

func (m *MemoryStore) TakeTempToken() (string, error) {
	token := m.TempToken
	m.TempToken = ""
	return token, nil
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
