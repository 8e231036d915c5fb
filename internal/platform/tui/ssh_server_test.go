package tui

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"

	"github.com/vovakirdan/cgapaint/internal/core"
	"github.com/vovakirdan/cgapaint/internal/editor"
)

func TestDrawingPath(t *testing.T) {
	tests := []struct {
		user string
		want string
	}{
		{"alice", "alice.cga"},
		{"bob-42_x", "bob-42_x.cga"},
		{"../etc/passwd", "_etc_passwd.cga"},
		{"a/b", "a_b.cga"},
		{"", "anonymous.cga"},
		{"...", "anonymous.cga"},
		{"émile", "_mile.cga"},
	}

	for _, tt := range tests {
		got := DrawingPath("drawings", tt.user)
		if got != filepath.Join("drawings", tt.want) {
			t.Errorf("DrawingPath(%q) = %q, expected %q", tt.user, got, filepath.Join("drawings", tt.want))
		}
	}
}

func newTestSSHServer(t *testing.T) *SSHServer {
	t.Helper()
	cfg := DefaultSSHServerConfig()
	cfg.Dir = t.TempDir()
	cfg.Width, cfg.Height = 4, 2
	return &SSHServer{
		config: cfg,
		logger: log.New(io.Discard),
		conns:  make(map[string]*connection),
		owners: make(map[string]string),
	}
}

// fakeContext and fakeSession implement only what teaHandler touches.
type fakeContext struct {
	ssh.Context
	id string
}

func (c fakeContext) SessionID() string { return c.id }

type fakeSession struct {
	ssh.Session
	user string
	ctx  fakeContext
	out  bytes.Buffer
}

func newFakeSession(user, id string) *fakeSession {
	return &fakeSession{user: user, ctx: fakeContext{id: id}}
}

func (s *fakeSession) User() string                { return s.user }
func (s *fakeSession) Context() ssh.Context        { return s.ctx }
func (s *fakeSession) Write(p []byte) (int, error) { return s.out.Write(p) }
func (s *fakeSession) Pty() (ssh.Pty, <-chan ssh.Window, bool) {
	return ssh.Pty{Window: ssh.Window{Width: 80, Height: 24}}, nil, true
}

func TestClaimRelease(t *testing.T) {
	s := newTestSSHServer(t)
	c, _ := core.NewCanvas(1, 1)
	sess := editor.NewSession(c, "alice.cga")

	if !s.claim("id-1", "alice") {
		t.Fatal("first claim should succeed")
	}
	s.attach("id-1", sess)
	if s.claim("id-2", "alice") {
		t.Error("second claim for the same user should fail")
	}
	if !s.claim("id-3", "bob") {
		t.Error("another user should be able to claim")
	}

	if conn := s.release("id-2"); conn != nil {
		t.Error("release of a rejected session should return nil")
	}
	conn := s.release("id-1")
	if conn == nil || conn.user != "alice" || conn.sess != sess {
		t.Fatalf("release() = %+v, expected alice's connection", conn)
	}
	if !s.claim("id-4", "alice") {
		t.Error("claim after release should succeed")
	}
}

func TestTeaHandlerBusyUserLeavesFileAlone(t *testing.T) {
	s := newTestSSHServer(t)
	path := DrawingPath(s.config.Dir, "alice")

	// alice is painting and her file is mid-rewrite
	if !s.claim("id-1", "alice") {
		t.Fatal("claim failed")
	}
	if err := os.WriteFile(path, []byte("88"), 0o644); err != nil {
		t.Fatal(err)
	}

	second := newFakeSession("alice", "id-2")
	model, _ := s.teaHandler(second)
	if model != nil {
		t.Error("second session should not get an editor")
	}
	if !strings.Contains(second.out.String(), "already open") {
		t.Errorf("output = %q, expected the already-open message", second.out.String())
	}

	data, err := os.ReadFile(path)
	if err != nil || string(data) != "88" {
		t.Errorf("file = %q (%v), expected it untouched", data, err)
	}
	if s.owners["alice"] != "id-1" {
		t.Errorf("owner = %q, expected id-1", s.owners["alice"])
	}
}

func TestTeaHandlerOpenFailureReleasesClaim(t *testing.T) {
	s := newTestSSHServer(t)
	path := DrawingPath(s.config.Dir, "bob")
	if err := os.WriteFile(path, []byte("not a drawing\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	sess := newFakeSession("bob", "id-1")
	model, _ := s.teaHandler(sess)
	if model != nil {
		t.Error("malformed drawing should not open an editor")
	}
	if !strings.Contains(sess.out.String(), "cannot open your drawing") {
		t.Errorf("output = %q, expected the open error", sess.out.String())
	}
	if _, busy := s.owners["bob"]; busy {
		t.Error("failed open should release the claim")
	}
	if len(s.conns) != 0 {
		t.Errorf("conns = %d, expected 0", len(s.conns))
	}
}
