// dissonance-server hosts the game over SSH: every connection gets its own
// world, screen and session. Build:
//
//	go build -o dissonance-server ./cmd/server
//
// Usage:
//
//	./dissonance-server [--port 2222] [--key server_host_key]
//
// Connect with:
//
//	ssh -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	xssh "golang.org/x/crypto/ssh"

	"dissonance/internal/game"
	internalssh "dissonance/internal/ssh"
	"dissonance/pkg/logger"
)

// termMu protects os.Setenv("TERM") around screen creation. tcell reads TERM
// from the process environment, so concurrent connects must not interleave.
var termMu sync.Mutex

// allowedTerms is the set of TERM values accepted from clients. The value
// ends up in os.Setenv and a terminfo lookup, so arbitrary client strings
// are not welcome.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode-256color": true,
}

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	flag.Parse()

	log := logger.New(os.Stdout)
	signer := loadOrCreateHostKey(*keyFile, log)

	srv := &gossh.Server{
		Addr: fmt.Sprintf(":%d", *port),
		Handler: func(s gossh.Session) {
			handleSession(s, log)
		},
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Accept any authentication — appropriate for a private home server.
		// Add gossh.PublicKeyAuth or gossh.PasswordAuth options for real auth.
		HostSigners: []gossh.Signer{signer},
	}

	log.Infof("dissonance SSH server listening on :%d", *port)
	log.Fatal(srv.ListenAndServe())
}

// handleSession runs one complete game for one SSH connection. It blocks
// until the player quits or disconnects.
func handleSession(s gossh.Session, log *logrus.Logger) {
	sessionID := uuid.NewString()
	slog := log.WithFields(logrus.Fields{
		"session": sessionID,
		"user":    s.User(),
		"remote":  s.RemoteAddr().String(),
	})

	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p 2222 <host>")
		slog.Warn("rejected session without PTY")
		return
	}

	term := "xterm-256color"
	for _, env := range s.Environ() {
		if strings.HasPrefix(env, "TERM=") && allowedTerms[env[5:]] {
			term = env[5:]
			break
		}
	}

	// TERM must be set in the process environment before NewTerminfoScreenFromTty.
	tty := internalssh.NewSessionTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		slog.WithError(err).Error("terminal setup failed")
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		slog.WithError(err).Error("screen init failed")
		return
	}

	slog.Info("session started")
	game.New(screen, log).Run()
	slog.Info("session ended")
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, log *logrus.Logger) gossh.Signer {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Infof("loaded host key from %s", path)
			return signer
		}
	}

	log.Infof("generating new ed25519 host key at %s", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		log.Fatalf("generate host key: %v", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		log.Fatalf("create signer: %v", err)
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "dissonance server"); err == nil {
		_ = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0600)
	}
	return signer
}
