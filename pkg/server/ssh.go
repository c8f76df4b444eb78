// Package server serves the renderer over SSH. Each session gets its own
// camera, renderer and framebuffer over one shared level.
package server

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/gliderlabs/ssh"

	"github.com/taigrr/sector/pkg/control"
	"github.com/taigrr/sector/pkg/level"
	"github.com/taigrr/sector/pkg/render"
)

const (
	altScreenOn  = "\x1b[?1049h"
	altScreenOff = "\x1b[?1049l"
	hideCursor   = "\x1b[?25l"
	showCursor   = "\x1b[?25h"
	clearScreen  = "\x1b[2J"
)

// Config controls the server and every session it starts.
type Config struct {
	Addr       string
	HostKey    string // path to a PEM host key
	FPS        int
	FOV        float64
	Background render.Color
}

// Server is an SSH frontend for one level.
type Server struct {
	cfg   Config
	level *level.Level
	srv   *ssh.Server

	mu       sync.Mutex
	sessions int
}

// New creates a server. The level is shared read-only by all sessions.
func New(lvl *level.Level, cfg Config) *Server {
	if cfg.FPS <= 0 {
		cfg.FPS = 30
	}
	if cfg.FOV <= 0 {
		cfg.FOV = render.DefaultFOV
	}
	if cfg.Background == (render.Color{}) {
		cfg.Background = render.ColorSky
	}
	return &Server{cfg: cfg, level: lvl}
}

// ListenAndServe accepts sessions until Shutdown is called.
func (s *Server) ListenAndServe() error {
	s.srv = &ssh.Server{
		Addr:    s.cfg.Addr,
		Handler: s.handleSession,
	}
	if err := s.srv.SetOption(ssh.HostKeyFile(s.cfg.HostKey)); err != nil {
		return fmt.Errorf("set host key: %w", err)
	}

	log.Printf("ssh server listening on %s", s.cfg.Addr)
	if err := s.srv.ListenAndServe(); err != nil && err != ssh.ErrServerClosed {
		return fmt.Errorf("serve ssh: %w", err)
	}
	return nil
}

// Shutdown stops accepting sessions and waits for open ones to end.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

// Sessions returns the number of connected sessions.
func (s *Server) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions
}

func (s *Server) track(delta int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions += delta
	return s.sessions
}

func (s *Server) handleSession(sess ssh.Session) {
	ptyReq, winCh, ok := sess.Pty()
	if !ok {
		fmt.Fprintln(sess, "Error: PTY required. Use: ssh -t ...")
		return
	}

	user := sess.User()
	if user == "" {
		user = "anonymous"
	}
	log.Printf("session opened: %s from %s (%d active)", user, sess.RemoteAddr(), s.track(1))
	defer func() {
		log.Printf("session closed: %s (%d active)", user, s.track(-1))
	}()

	v := newView(s.level, s.cfg, ptyReq.Window.Width, ptyReq.Window.Height)

	io.WriteString(sess, altScreenOn+hideCursor+clearScreen)
	defer io.WriteString(sess, reset+showCursor+altScreenOff)

	quit := make(chan struct{})
	go func() {
		defer close(quit)
		buf := make([]byte, 64)
		for {
			n, err := sess.Read(buf)
			if err != nil {
				return
			}
			for _, a := range control.ParseBytes(buf[:n]) {
				if a == control.Quit {
					return
				}
				v.latch.Press(a, time.Now())
			}
		}
	}()

	var sizeMu sync.Mutex
	width, height := ptyReq.Window.Width, ptyReq.Window.Height
	go func() {
		for win := range winCh {
			sizeMu.Lock()
			width, height = win.Width, win.Height
			sizeMu.Unlock()
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(s.cfg.FPS))
	defer ticker.Stop()
	last := time.Now()
	var sb strings.Builder

	for {
		select {
		case <-quit:
			return
		case <-sess.Context().Done():
			return
		case now := <-ticker.C:
			sizeMu.Lock()
			w, h := width, height
			sizeMu.Unlock()
			if v.resize(w, h) {
				io.WriteString(sess, clearScreen)
			}

			dt := now.Sub(last).Seconds()
			last = now

			sb.Reset()
			v.frame(now, dt, &sb)
			if _, err := io.WriteString(sess, sb.String()); err != nil {
				return
			}
		}
	}
}
