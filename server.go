package main

import (
	"encoding/json"
	"log"
	"net"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/websocket"
	"github.com/skip2/go-qrcode"
)

const (
	qrDefaultSize = 256
	qrMinSize     = 128
	qrMaxSize     = 1024
	recentGoals   = 10
	statsDays     = 7
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true // Non-browser clients don't send Origin
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		return u.Host == r.Host
	},
}

func extractIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// SetupRoutes configures HTTP routes. Static files are only served when
// clientDir is set.
func SetupRoutes(hub *Hub, clientDir string) *http.ServeMux {
	mux := http.NewServeMux()

	if clientDir != "" {
		// Serve static files with no-cache so browsers always revalidate
		fs := http.FileServer(http.Dir(clientDir))
		mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "no-cache")
			fs.ServeHTTP(w, r)
		}))
	}

	// WebSocket endpoint
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		ip := extractIP(r)
		if !hub.CanAccept(ip) {
			http.Error(w, "too many connections", http.StatusServiceUnavailable)
			return
		}

		codec := CodecJSON
		if r.URL.Query().Get("codec") == "msgpack" {
			codec = CodecMsgpack
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("upgrade error: %v", err)
			return
		}

		hub.TrackConnect(ip)

		client := NewClient(hub, conn, ip, codec)
		hub.Register(client)

		go client.WritePump()
		go client.ReadPump()
	})

	mux.HandleFunc("/join.png", func(w http.ResponseWriter, r *http.Request) {
		size := qrDefaultSize
		if s, err := strconv.Atoi(r.URL.Query().Get("size")); err == nil {
			size = int(Clamp(float64(s), qrMinSize, qrMaxSize))
		}
		png, err := qrcode.Encode(joinURL(r), qrcode.Medium, size)
		if err != nil {
			log.Printf("qr encode error: %v", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "no-cache")
		w.Write(png)
	})

	mux.HandleFunc("/stats", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(collectStats(hub)); err != nil {
			log.Printf("stats encode error: %v", err)
		}
	})

	return mux
}

// joinURL is the page a scanned QR code opens
func joinURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return (&url.URL{Scheme: scheme, Host: r.Host, Path: "/"}).String()
}

// StatsResponse is served at /stats
type StatsResponse struct {
	Game        GameStats      `json:"game"`
	Connections int            `json:"connections"`
	Tracked     int            `json:"tracked"` // connections counted against the limits
	Peers       int            `json:"peers,omitempty"`
	Events      map[string]int `json:"events,omitempty"`
	RecentGoals []GoalRecord   `json:"recentGoals,omitempty"`
}

func collectStats(hub *Hub) StatsResponse {
	resp := StatsResponse{
		Game:        hub.game.Stats(),
		Connections: hub.ClientCount(),
		Tracked:     hub.TotalConns(),
	}
	if hub.events == nil {
		return resp
	}
	resp.Peers = hub.events.ConcurrentPeers()
	if counts, err := hub.events.EventCounts(statsDays); err != nil {
		log.Printf("stats: event counts: %v", err)
	} else {
		resp.Events = counts
	}
	if goals, err := hub.events.RecentGoals(recentGoals); err != nil {
		log.Printf("stats: recent goals: %v", err)
	} else {
		resp.RecentGoals = goals
	}
	return resp
}
