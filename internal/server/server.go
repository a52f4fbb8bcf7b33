package server

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/tartampluch/go-yourage/internal/config"
	"github.com/tartampluch/go-yourage/internal/engine"
)

// ShareServer renders shareable links: the age page for a query string and
// its vCard / iCalendar exports. It is stateless; every request decodes its
// own query.
type ShareServer struct {
	Clock engine.Clock
	Port  string
}

// NewShareServer creates a new instance of the server.
func NewShareServer(port string, clock engine.Clock) *ShareServer {
	return &ShareServer{
		Clock: clock,
		Port:  port,
	}
}

// ShareURL returns the link that reopens the given encoded query.
func (s *ShareServer) ShareURL(query string) string {
	u := config.SchemeHTTP + "://" + config.LocalhostBindAddr + config.AddrSeparator + s.Port + config.RouteRoot
	if query == "" {
		return u
	}
	return u + config.QueryPrefix + query
}

// Handler returns the routing table.
func (s *ShareServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(config.RouteRoot, s.handlePage)
	mux.HandleFunc(config.RouteVCard, s.handleVCard)
	mux.HandleFunc(config.RouteICal, s.handleICal)
	return mux
}

// Start initializes the HTTP server and blocks until the context is cancelled.
func (s *ShareServer) Start(ctx context.Context) error {
	if s.Port == "" {
		return errors.New(config.ErrPortRequired)
	}

	srv := &http.Server{
		Addr:         config.LocalhostBindAddr + config.AddrSeparator + s.Port,
		Handler:      s.Handler(),
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	serverError := make(chan error, config.ChannelBufferSize)

	go func() {
		slog.Info(config.MsgServerListen,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyPort, s.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverError <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info(config.MsgServerStop, config.LogKeyComponent, config.CompServer)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: %w", config.ErrServerShutdown, err)
		}
		return nil

	case err := <-serverError:
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
}

// handlePage serves the age page (GET/HEAD) and applies form edits (POST).
func (s *ShareServer) handlePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != config.RouteRoot {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet, http.MethodHead:
		state := engine.NewState(engine.DecodeQuery(r.URL.RawQuery), s.Clock.Now())
		s.renderPage(w, r, state)
	case http.MethodPost:
		s.handleUpdate(w, r)
	default:
		w.Header().Set(config.HeaderAllow, config.AllowedMethodsPage)
		http.Error(w, config.HTTPMsgMethodNotAll, http.StatusMethodNotAllowed)
	}
}

// handleUpdate treats each submitted form field as one input-change event,
// runs them through the reducer and redirects to the re-encoded query.
// This is the web rendition of writing the page location.
func (s *ShareServer) handleUpdate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, config.MaxFormBytes)
	if err := r.ParseForm(); err != nil {
		slog.Warn(config.ErrParseForm,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyError, err,
		)
		http.Error(w, config.HTTPMsgBadRequest, http.StatusBadRequest)
		return
	}

	state := engine.NewState(engine.QueryParams{}, s.Clock.Now())
	for _, field := range []string{config.QueryKeyName, config.QueryKeyBirthday} {
		action, err := engine.ActionFromInput(field, r.PostForm)
		if err != nil {
			slog.Warn(config.ErrMissingInput,
				config.LogKeyComponent, config.CompServer,
				config.LogKeyKey, field,
			)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		state, _ = engine.Reduce(state, action)
	}

	target := config.RouteRoot
	if q := engine.EncodeQuery(state.Query()); q != "" {
		target += config.QueryPrefix + q
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (s *ShareServer) handleVCard(w http.ResponseWriter, r *http.Request) {
	if !allowRead(w, r) {
		return
	}
	data, err := engine.EncodeVCard(engine.DecodeQuery(r.URL.RawQuery))
	s.serveExport(w, r, data, err, config.MimeTextVCard, config.FileNameVCard)
}

func (s *ShareServer) handleICal(w http.ResponseWriter, r *http.Request) {
	if !allowRead(w, r) {
		return
	}
	data, err := engine.EncodeICal(engine.DecodeQuery(r.URL.RawQuery), s.Clock.Now())
	s.serveExport(w, r, data, err, config.MimeTextCalendar, config.FileNameICal)
}

// allowRead restricts export routes to GET and HEAD.
func allowRead(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set(config.HeaderAllow, config.AllowedMethods)
		http.Error(w, config.HTTPMsgMethodNotAll, http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// serveExport writes an attachment with an ETag so clients can revalidate.
func (s *ShareServer) serveExport(w http.ResponseWriter, r *http.Request, data []byte, err error, mime, filename string) {
	if errors.Is(err, engine.ErrIncompleteShare) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		slog.Error(err.Error(),
			config.LogKeyComponent, config.CompServer,
			config.LogKeyRoute, r.URL.Path,
		)
		http.Error(w, config.HTTPMsgInternalErr, http.StatusInternalServerError)
		return
	}

	hash := sha256.Sum256(data)
	etag := fmt.Sprintf(config.FormatETag, hex.EncodeToString(hash[:]))

	w.Header().Set(config.HeaderContentType, mime)
	w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
	w.Header().Set(config.HeaderCacheControl, config.CacheControlPrivate)
	w.Header().Set(config.HeaderContentDisposition, fmt.Sprintf(config.FormatAttachment, filename))
	w.Header().Set(config.HeaderETag, etag)
	w.Header().Set(config.HeaderServer, config.UserAgent)

	if match := r.Header.Get(config.HeaderIfNoneMatch); match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	slog.Debug(config.MsgShareServed,
		config.LogKeyComponent, config.CompServer,
		config.LogKeyRoute, r.URL.Path,
		config.LogKeySizeBytes, len(data),
		config.LogKeyETag, etag,
	)

	if r.Method == http.MethodGet {
		if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
			slog.Error(config.ErrWriteResp,
				config.LogKeyComponent, config.CompServer,
				config.LogKeyError, err,
			)
		}
	}
}
