package revealdown

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

var (
	writeWait    = 10 * time.Second
	pingInterval = 30 * time.Second
)

const liveReloadScript = `		<script>
			(function() {
				var proto = location.protocol === "https:" ? "wss://" : "ws://";
				var ws = new WebSocket(proto + location.host + "/livereload");
				ws.onmessage = function() { location.reload(); };
			})();
		</script>
`

// withLiveReload adds the livereload client to the page footer.
func withLiveReload() Option {
	return func(c *Config) {
		c.Footer = injectLiveReload(c.Footer)
	}
}

func injectLiveReload(footer string) string {
	idx := strings.LastIndex(strings.ToLower(footer), "</body>")
	if idx < 0 {
		return footer + liveReloadScript
	}
	return footer[:idx] + liveReloadScript + footer[idx:]
}

// PresentationServer serves a rendered deck together with reveal.js and
// tells connected browsers to reload whenever the deck is rerendered.
type PresentationServer struct {
	deckPath        string
	opts            []Option
	ctx             context.Context
	httpServer      *http.Server
	indexBytes      []byte
	wsUpgrader      websocket.Upgrader
	livereloadConns []*websocket.Conn
	log             *logrus.Entry

	indexLock *sync.Mutex
	connLock  *sync.Mutex
}

// NewPresentationServer renders the deck at deckPath and prepares a server
// for addr. A nil logger logs to the logrus standard logger.
func NewPresentationServer(ctx context.Context, deckPath, addr string, logger *logrus.Entry, opts ...Option) (*PresentationServer, error) {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	server := &http.Server{
		Addr: addr,
	}

	p := &PresentationServer{
		ctx:             ctx,
		deckPath:        deckPath,
		opts:            append(append([]Option{}, opts...), withLiveReload()),
		httpServer:      server,
		indexLock:       &sync.Mutex{},
		connLock:        &sync.Mutex{},
		wsUpgrader:      websocket.Upgrader{},
		livereloadConns: make([]*websocket.Conn, 0, 100),
		log:             logger.WithField("deck", deckPath),
	}

	if err := p.Rerender(); err != nil {
		return nil, err
	}

	mux := ServeRevealJS()
	mux.Handle("/", http.HandlerFunc(p.serveIndex))
	mux.Handle("/livereload", http.HandlerFunc(p.livereloadHandler))
	server.Handler = mux

	return p, nil
}

func (p *PresentationServer) Handler() http.Handler {
	return p.httpServer.Handler
}

func (p *PresentationServer) serveIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" && r.URL.Path != "/index.html" {
		http.NotFound(w, r)
		return
	}
	p.indexLock.Lock()
	defer p.indexLock.Unlock()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(p.indexBytes)
}

func (p *PresentationServer) livereloadHandler(w http.ResponseWriter, r *http.Request) {
	ws, err := p.wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		p.log.WithError(err).Warn("livereload upgrade failed")
		return
	}

	p.connLock.Lock()
	p.livereloadConns = append(p.livereloadConns, ws)
	p.connLock.Unlock()
	p.log.WithField("remote", r.RemoteAddr).Debug("livereload client connected")

	ctx, cancel := context.WithCancel(p.ctx)
	go p.ping(ctx, cancel, ws)
	go p.readUntilClosed(cancel, ws)
}

// readUntilClosed consumes client frames so close and pong messages are
// processed.
func (p *PresentationServer) readUntilClosed(cancel context.CancelFunc, ws *websocket.Conn) {
	defer cancel()
	for {
		if _, _, err := ws.NextReader(); err != nil {
			return
		}
	}
}

func (p *PresentationServer) ping(ctx context.Context, cancel context.CancelFunc, ws *websocket.Conn) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	defer cancel()
	defer p.dropConn(ws)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := ws.WriteControl(websocket.PingMessage, []byte{}, time.Now().Add(writeWait)); err != nil {
				p.log.WithError(err).Debug("livereload ping failed")
				return
			}
		}
	}
}

func (p *PresentationServer) dropConn(ws *websocket.Conn) {
	p.connLock.Lock()
	defer p.connLock.Unlock()
	for i, c := range p.livereloadConns {
		if c == ws {
			p.livereloadConns = append(p.livereloadConns[:i], p.livereloadConns[i+1:]...)
			break
		}
	}
	ws.Close()
}

func (p *PresentationServer) clientCount() int {
	p.connLock.Lock()
	defer p.connLock.Unlock()
	return len(p.livereloadConns)
}

// Rerender renders the deck again and asks all browsers to reload. If
// rendering fails the previous page stays in place.
func (p *PresentationServer) Rerender() error {
	page, err := RenderFile(p.deckPath, p.opts...)
	if err != nil {
		p.log.WithError(err).Error("rendering deck failed")
		return err
	}

	p.indexLock.Lock()
	p.indexBytes = page
	p.indexLock.Unlock()
	p.log.WithField("bytes", len(page)).Info("deck rendered")

	p.connLock.Lock()
	alive := p.livereloadConns[:0]
	for _, ws := range p.livereloadConns {
		ws.SetWriteDeadline(time.Now().Add(writeWait))
		if err := ws.WriteMessage(websocket.TextMessage, []byte(`Reload`)); err != nil {
			ws.Close()
			continue
		}
		alive = append(alive, ws)
	}
	p.livereloadConns = alive
	p.connLock.Unlock()
	return nil
}

func (p *PresentationServer) Close() error {
	p.connLock.Lock()
	for _, ws := range p.livereloadConns {
		ws.Close()
	}
	p.livereloadConns = p.livereloadConns[:0]
	p.connLock.Unlock()

	ctx, cancel := context.WithTimeout(p.ctx, time.Second*15)
	defer cancel()
	return p.httpServer.Shutdown(ctx)
}

func (p *PresentationServer) Run() {
	go func() {
		if err := p.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			p.log.WithError(err).Error("presentation server stopped")
		}
	}()
}
