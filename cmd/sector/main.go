// sector - sector-based pseudo-3D renderer
// Walk a level of extruded polygon sectors in your terminal, a desktop
// window, or over SSH.
//
// Controls:
//
//	W/S         - Move forward/back
//	A/D         - Turn left/right
//	Left/Right  - Strafe (also , and .)
//	Q/E         - Climb up/down
//	Up/Down     - Look up/down (also PgUp/PgDn)
//	R           - Return to spawn
//	?           - Toggle HUD overlay
//	Esc         - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/taigrr/sector/pkg/level"
	"github.com/taigrr/sector/pkg/render"
	"github.com/taigrr/sector/pkg/server"
	"github.com/taigrr/sector/pkg/window"
)

var (
	texturePath = flag.String("textures", "", "Texture directory (T0.png, T1.json, ...) or .glb/.gltf pack")
	targetFPS   = flag.Int("fps", 30, "Target FPS")
	bgColor     = flag.String("bg", "24,28,40", "Background color (R,G,B or #rrggbb)")
	focal       = flag.Float64("fov", render.DefaultFOV, "Focal length in pixels for a 160 pixel wide view")
	windowMode  = flag.Bool("window", false, "Open a desktop window instead of drawing in the terminal")
	scale       = flag.Int("scale", 4, "Window pixels per render pixel (with -window)")
	renderSize  = flag.String("size", "160x120", "Render size for -window and -screenshot")
	sshAddr     = flag.String("ssh", "", "Serve over SSH on this address, e.g. :2222 (PORT overrides the port)")
	hostKeyPath = flag.String("hostkey", "host_key", "SSH host key (generated if missing)")
	screenshot  = flag.String("screenshot", "", "Render one frame to this PNG and exit")
	verbose     = flag.Bool("v", false, "Log asset loading to stderr")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "sector - sector-based pseudo-3D renderer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: sector [options] [level.json]\n\n")
		fmt.Fprintf(os.Stderr, "Without a level the built-in demo is shown.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  W/S         - Move forward/back\n")
		fmt.Fprintf(os.Stderr, "  A/D         - Turn left/right\n")
		fmt.Fprintf(os.Stderr, "  Left/Right  - Strafe\n")
		fmt.Fprintf(os.Stderr, "  Q/E         - Climb up/down\n")
		fmt.Fprintf(os.Stderr, "  Up/Down     - Look up/down\n")
		fmt.Fprintf(os.Stderr, "  R           - Return to spawn\n")
		fmt.Fprintf(os.Stderr, "  ?           - Toggle HUD overlay\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(levelPath string) error {
	log.SetFlags(log.Ltime | log.Lshortfile)
	if *verbose {
		level.SetLogger(log.New(os.Stderr, "level: ", log.Ltime))
	}
	if *targetFPS <= 0 {
		return fmt.Errorf("invalid fps: %d", *targetFPS)
	}

	bg, err := parseBackground(*bgColor)
	if err != nil {
		return err
	}

	lvl, name, err := loadLevel(levelPath, *texturePath)
	if err != nil {
		return err
	}
	cam := render.CameraFor(lvl)

	// Context for clean shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	switch {
	case *screenshot != "":
		w, h, err := parseSize(*renderSize)
		if err != nil {
			return err
		}
		return saveScreenshot(lvl, cam, w, h, bg, *screenshot)

	case *sshAddr != "":
		return serveSSH(ctx, lvl, bg)

	case *windowMode:
		w, h, err := parseSize(*renderSize)
		if err != nil {
			return err
		}
		return window.Run(lvl, cam, window.Config{
			Title:      "sector - " + name,
			Width:      w,
			Height:     h,
			Scale:      *scale,
			FPS:        *targetFPS,
			FOV:        focalFor(w),
			Background: bg,
		})

	default:
		return runTerminal(ctx, cancel, lvl, name, bg)
	}
}

// loadLevel returns the level at levelPath, or the demo level when the path
// is empty.
func loadLevel(levelPath, texturePath string) (*level.Level, string, error) {
	if levelPath == "" {
		lvl := level.Demo()
		if texturePath != "" {
			tex, err := level.LoadTextures(texturePath)
			if err != nil {
				return nil, "", err
			}
			lvl.Textures = tex
			if err := lvl.Validate(); err != nil {
				return nil, "", fmt.Errorf("validate level: %w", err)
			}
		}
		return lvl, lvl.Name, nil
	}

	if texturePath == "" {
		texturePath = filepath.Join(filepath.Dir(levelPath), "textures")
	}
	lvl, err := level.Load(levelPath, texturePath)
	if err != nil {
		return nil, "", err
	}
	name := lvl.Name
	if name == "" {
		name = filepath.Base(levelPath)
	}
	return lvl, name, nil
}

// focalFor scales the focal length to a raster width so the horizontal
// field of view stays constant.
func focalFor(width int) float64 {
	return *focal * float64(width) / render.DefaultWidth
}

// parseBackground accepts "R,G,B" or "#rrggbb".
func parseBackground(s string) (render.Color, error) {
	if strings.HasPrefix(s, "#") {
		c, ok := render.ParseHex(s)
		if !ok {
			return render.Color{}, fmt.Errorf("invalid background color: %q", s)
		}
		return c, nil
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%d,%d,%d", &r, &g, &b); err != nil {
		return render.Color{}, fmt.Errorf("invalid background color %q: %w", s, err)
	}
	return render.RGB(r, g, b), nil
}

// parseSize parses "WxH".
func parseSize(s string) (int, int, error) {
	var w, h int
	if _, err := fmt.Sscanf(s, "%dx%d", &w, &h); err != nil {
		return 0, 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	if w < 3 || h < 3 {
		return 0, 0, fmt.Errorf("invalid size %q: too small", s)
	}
	return w, h, nil
}

func saveScreenshot(lvl *level.Level, cam *render.Camera, w, h int, bg render.Color, path string) error {
	fb := render.NewFramebuffer(w, h)
	fb.Clear(bg)
	r := render.NewRenderer(lvl, w, h)
	r.SetFOV(focalFor(w))
	r.Draw(cam, fb)
	if err := fb.SavePNG(path); err != nil {
		return err
	}
	fmt.Printf("Saved %s (%dx%d, %d walls drawn)\n", path, w, h, r.Stats.WallsProjected)
	return nil
}

func serveSSH(ctx context.Context, lvl *level.Level, bg render.Color) error {
	addr := *sshAddr
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	if err := server.EnsureHostKey(*hostKeyPath); err != nil {
		return err
	}

	srv := server.New(lvl, server.Config{
		Addr:       addr,
		HostKey:    *hostKeyPath,
		FPS:        *targetFPS,
		FOV:        *focal,
		Background: bg,
	})

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	log.Printf("connect with: ssh -t -p %s localhost", strings.TrimPrefix(addr, ":"))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown ssh: %w", err)
	}
	return nil
}
