package main

import (
	"context"
	"image/color"
	"log"
	"net"
	"time"

	"LocalPaint/internal/config"
	"LocalPaint/internal/remote"
	"LocalPaint/internal/state"
	"LocalPaint/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	log.Printf("Starting LocalPaint session %s", state.SessionID())

	shared := state.NewShared(state.ToolPen, color.RGBA{A: 255}, cfg.BrushSize)

	if cfg.RemoteAddr != "" {
		stop := startRemotePanel(cfg, shared)
		defer stop()
	}

	ui.RunApp(cfg.Width, cfg.Height, shared, func(s state.Stroke) {
		log.Printf("[CANVAS] Stroke %d: %s %v -> %v size %d", s.Seq, s.Tool, s.From, s.To, s.Size)
	})
}

// startRemotePanel serves the remote tool panel and, if configured,
// advertises it. The returned func tears both down.
func startRemotePanel(cfg *config.Config, shared *state.Shared) func() {
	server := remote.NewServer(shared)
	addr, err := server.Start(cfg.RemoteAddr)
	if err != nil {
		log.Fatalf("Failed to start remote panel: %v", err)
	}
	port := addr.(*net.TCPAddr).Port
	log.Printf("Remote panel available at %s", remote.PanelURL(remote.OutgoingIP(), port))

	var stopMDNS func() error
	if cfg.Advertise {
		mdnsServer, err := remote.Advertise(port, state.SessionID())
		if err != nil {
			log.Printf("mDNS advertisement disabled: %v", err)
		} else {
			stopMDNS = mdnsServer.Shutdown
		}
	}

	return func() {
		if stopMDNS != nil {
			if err := stopMDNS(); err != nil {
				log.Printf("Error stopping mDNS: %v", err)
			}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("Error stopping remote panel: %v", err)
		}
	}
}
