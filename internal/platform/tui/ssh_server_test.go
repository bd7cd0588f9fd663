package tui

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/storage"
)

// fakeListener records whether the store was still usable while the
// server drained.
type fakeListener struct {
	store       *storage.Store
	serveErr    error
	shutdownErr error
	drainErr    error
	drained     bool
}

func (f *fakeListener) ListenAndServe() error { return f.serveErr }

func (f *fakeListener) Shutdown(context.Context) error {
	f.drained = true
	_, f.drainErr = f.store.HighScore()
	return f.shutdownErr
}

func newFakeServer(t *testing.T, fake *fakeListener) *SSHServer {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	fake.store = store
	return &SSHServer{
		config: DefaultSSHServerConfig(),
		game:   config.Default(),
		server: fake,
		store:  store,
		logger: log.New(io.Discard),
	}
}

func TestSSHServerShutdownDrainsBeforeClosingStore(t *testing.T) {
	fake := &fakeListener{}
	srv := newFakeServer(t, fake)

	if err := srv.Shutdown(); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if !fake.drained {
		t.Fatal("Shutdown should stop the ssh server")
	}
	if fake.drainErr != nil {
		t.Errorf("store closed before sessions drained: %v", fake.drainErr)
	}
	if _, err := srv.store.HighScore(); err == nil {
		t.Error("store should be closed after Shutdown")
	}
}

func TestSSHServerShutdownReportsServerError(t *testing.T) {
	drainErr := errors.New("drain timed out")
	fake := &fakeListener{shutdownErr: drainErr}
	srv := newFakeServer(t, fake)

	err := srv.Shutdown()
	if !errors.Is(err, drainErr) {
		t.Fatalf("Shutdown error = %v, expected %v", err, drainErr)
	}
	if _, err := srv.store.HighScore(); err == nil {
		t.Error("store should be closed even when draining fails")
	}
}

func TestSSHServerListenErrorShutsDown(t *testing.T) {
	bindErr := errors.New("address already in use")
	drainErr := errors.New("drain timed out")
	fake := &fakeListener{serveErr: bindErr, shutdownErr: drainErr}
	srv := newFakeServer(t, fake)

	err := srv.ListenAndServe()
	if !errors.Is(err, bindErr) {
		t.Fatalf("ListenAndServe error = %v, expected %v", err, bindErr)
	}
	if !errors.Is(err, drainErr) {
		t.Errorf("shutdown error dropped from %v", err)
	}
	if !strings.HasPrefix(err.Error(), "ssh server: ") {
		t.Errorf("error should be wrapped, got %q", err)
	}
	if !fake.drained {
		t.Error("listen failure should still shut the server down")
	}
}

func TestNewSSHServer(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "keys", "host_key")
	cfg.DBPath = filepath.Join(dir, "scores.db")

	srv, err := NewSSHServer(cfg, config.Default(), log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer: %v", err)
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q, expected 127.0.0.1:0", srv.Addr())
	}
	if srv.store == nil {
		t.Fatal("scores database should be open")
	}
	if err := srv.Shutdown(); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}
