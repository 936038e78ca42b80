package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/viewtree-dev/viewtree/internal/config"
	"github.com/viewtree-dev/viewtree/pkg/metrics"
	"github.com/viewtree-dev/viewtree/pkg/render"
	"github.com/viewtree-dev/viewtree/pkg/stream"
	"github.com/viewtree-dev/viewtree/pkg/vtree"
)

// liveClient reconnects with backoff and reloads the page when the server
// announces a new tree version. Patch frames are binary; the reload path
// keeps the preview client trivial.
const liveClient = `<script>
(function () {
  var delay = 250;
  function connect() {
    var ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");
    ws.binaryType = "arraybuffer";
    ws.onmessage = function () { location.reload(); };
    ws.onclose = function () {
      setTimeout(connect, delay);
      delay = Math.min(delay * 2, 5000);
    };
    ws.onopen = function () { delay = 250; };
  }
  connect();
})();
</script>`

func serveCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "serve TREE.json",
		Short: "Serve a tree snapshot with live patch streaming",
		Long: `Serve renders the snapshot as an HTML document and watches the
file for changes. Connected websocket clients receive a binary patch
frame for every change, computed by diffing the previous tree against
the new one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile, cmd.Flags())
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg, args[0])
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "Config file path (default: auto-detect vtreectl.yaml)")
	cmd.Flags().String("addr", ":8464", "HTTP listen address")
	cmd.Flags().String("title", "viewtree preview", "Document title")
	cmd.Flags().Bool("pretty", false, "Indent rendered HTML")
	cmd.Flags().Bool("strict-keys", false, "Fail diffs on duplicate sibling keys")

	return cmd
}

// previewServer holds the current tree and the set of connected clients.
type previewServer struct {
	cfg      *config.Config
	path     string
	logger   *slog.Logger
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	tree    *vtree.Node
	clients map[*stream.Sender]*websocket.Conn
}

func runServe(ctx context.Context, cfg *config.Config, path string) error {
	tree, err := loadSnapshot(path)
	if err != nil {
		return err
	}

	srv := &previewServer{
		cfg:    cfg,
		path:   path,
		logger: slog.Default().With("component", "serve"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		tree:    tree,
		clients: make(map[*stream.Sender]*websocket.Conn),
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()
	// Watch the directory: editors often replace the file on save, which
	// invalidates a watch on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go srv.watchLoop(ctx, watcher)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/", srv.handleIndex)
	r.Get("/ws", srv.handleWebSocket)
	r.Handle("/metrics", promhttp.Handler())

	httpSrv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		srv.logger.Info("serving snapshot", "path", path, "addr", cfg.Addr)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}

func (s *previewServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	tree := s.tree
	s.mu.RUnlock()

	renderer := render.New(render.Config{Pretty: s.cfg.Pretty})
	html, err := renderer.Document(s.cfg.Title, tree)
	if err != nil {
		s.logger.Error("render failed", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, html)
	fmt.Fprint(w, liveClient)
}

func (s *previewServer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	sender := stream.NewSender(conn, stream.WithLogger(s.logger))

	s.mu.Lock()
	s.clients[sender] = conn
	s.mu.Unlock()

	s.logger.Info("client connected", "remote", conn.RemoteAddr())

	// Drain reads so pings and close frames are processed; drop the client
	// once the connection dies.
	go func() {
		defer s.dropClient(sender)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (s *previewServer) dropClient(sender *stream.Sender) {
	s.mu.Lock()
	conn, ok := s.clients[sender]
	if ok {
		delete(s.clients, sender)
	}
	s.mu.Unlock()
	if ok {
		conn.Close()
		s.logger.Info("client disconnected", "remote", conn.RemoteAddr())
	}
}

func (s *previewServer) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	// Editors fire bursts of events per save; debounce before reloading.
	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(s.path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = time.After(100 * time.Millisecond)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.logger.Warn("watch error", "error", err)
		case <-pending:
			pending = nil
			s.reload()
		}
	}
}

func (s *previewServer) reload() {
	next, err := loadSnapshot(s.path)
	if err != nil {
		s.logger.Error("reload failed", "error", err)
		return
	}

	s.mu.Lock()
	prev := s.tree
	s.tree = next
	clients := make([]*stream.Sender, 0, len(s.clients))
	for sender := range s.clients {
		clients = append(clients, sender)
	}
	s.mu.Unlock()

	patches, err := vtree.DiffWithOptions(prev, next, vtree.Options{StrictKeys: s.cfg.StrictKeys})
	if err != nil {
		s.logger.Error("diff failed", "error", err)
		return
	}
	metrics.ObserveDiff(len(patches))
	if len(patches) == 0 {
		s.logger.Debug("snapshot unchanged")
		return
	}

	s.logger.Info("snapshot changed", "patches", len(patches))
	for _, sender := range clients {
		if err := sender.SendPatches(patches); err != nil {
			if !errors.Is(err, context.Canceled) {
				s.logger.Warn("send failed", "error", err)
			}
			s.dropClient(sender)
		}
	}
}
