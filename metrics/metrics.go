// SPDX-License-Identifier: GPL-2.0-or-later

// Package metrics exports the per frame render statistics to prometheus.
package metrics

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"godoom/conlog"
	"godoom/render"
)

// Frame is the last observed frame as served on /debug/frame.
type Frame struct {
	Number   int          `json:"number"`
	Map      string       `json:"map"`
	State    string       `json:"state"`
	Duration float64      `json:"duration_seconds"`
	Stats    render.Stats `json:"stats"`
}

// Recorder collects frame statistics. Observe is called from the render
// loop, the http handlers may run concurrently.
type Recorder struct {
	registry *prometheus.Registry

	frames    prometheus.Counter
	frameTime prometheus.Histogram
	visited   *prometheus.GaugeVec
	dropped   *prometheus.CounterVec
	clipData  prometheus.Gauge

	mu   sync.Mutex
	last Frame
}

func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "godoom_frames_total",
			Help: "Frames rendered",
		}),
		frameTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "godoom_frame_duration_seconds",
			Help:    "Time spent drawing a frame",
			Buckets: []float64{0.001, 0.002, 0.005, 0.01, 0.02, 0.0286, 0.05, 0.1},
		}),
		visited: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "godoom_frame_visited",
			Help: "Elements visited in the last frame",
		}, []string{"kind"}),
		dropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "godoom_dropped_total",
			Help: "Elements dropped because a frame buffer was full",
		}, []string{"kind"}),
		clipData: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "godoom_clip_data_used",
			Help: "Clip data entries used by the last frame",
		}),
	}
	r.registry.MustRegister(r.frames, r.frameTime, r.visited, r.dropped, r.clipData)
	return r
}

// Observe records one drawn frame.
func (r *Recorder) Observe(mapName, state string, s render.Stats, d time.Duration) {
	r.frames.Inc()
	r.frameTime.Observe(d.Seconds())
	r.visited.WithLabelValues("node").Set(float64(s.Nodes))
	r.visited.WithLabelValues("subsector").Set(float64(s.Subsectors))
	r.visited.WithLabelValues("seg").Set(float64(s.Segs))
	r.visited.WithLabelValues("wall_range").Set(float64(s.WallRanges))
	r.visited.WithLabelValues("sprite").Set(float64(s.Sprites))
	r.visited.WithLabelValues("masked_post").Set(float64(s.MaskedPosts))
	r.dropped.WithLabelValues("wall_range").Add(float64(s.DroppedWallRanges))
	r.dropped.WithLabelValues("sprite").Add(float64(s.DroppedSprites))
	r.clipData.Set(float64(s.ClipDataUsed))

	r.mu.Lock()
	r.last = Frame{
		Number:   r.last.Number + 1,
		Map:      mapName,
		State:    state,
		Duration: d.Seconds(),
		Stats:    s,
	}
	r.mu.Unlock()
}

// Last returns the most recent frame.
func (r *Recorder) Last() Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

// Handler returns the router serving /metrics and /debug/frame. It opens
// no listener.
func (r *Recorder) Handler() http.Handler {
	m := chi.NewRouter()
	m.Use(middleware.Recoverer)
	m.Handle("/metrics", promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{}))
	m.Get("/debug/frame", r.handleFrame)
	return m
}

func (r *Recorder) handleFrame(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(r.Last()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Serve listens on localhost:port until ctx is done.
func (r *Recorder) Serve(ctx context.Context, port int) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf("127.0.0.1:%d", port),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Shutdown(sctx)
	}()
	conlog.Printf("metrics on http://%s/metrics\n", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "metrics server")
	}
	return nil
}
