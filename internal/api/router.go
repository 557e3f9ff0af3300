package api

import (
	"net/http"

	"github.com/gorilla/websocket"

	"colorviz/internal/config"
	"colorviz/internal/display"
	"colorviz/internal/service"
	"colorviz/internal/storage"
	"colorviz/internal/ws"
)

func NewRouter(
	cfg config.Config,
	svc *service.AnalysisService,
	store *storage.Store,
	hub *ws.Hub,
	oled *display.OLED,
) http.Handler {
	h := &Handler{
		cfg:   cfg,
		svc:   svc,
		store: store,
		hub:   hub,
		oled:  oled,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", h.Page)
	mux.HandleFunc("/healthz", h.Healthz)
	mux.HandleFunc("/v1/ws", h.WebSocket)
	mux.HandleFunc("/v1/result", h.Result)
	mux.HandleFunc("/v1/modes", h.Modes)
	mux.HandleFunc("/v1/menu", h.Menu)
	mux.HandleFunc("/v1/palette", h.Palette)
	mux.HandleFunc("/v1/simulate", h.Simulate)
	mux.HandleFunc("/v1/history", h.History)
	mux.HandleFunc("/v1/display.png", h.DisplayPNG)
	mux.HandleFunc("/v1/display.raw", h.DisplayRaw)
	mux.HandleFunc("/v1/swatch.png", h.SwatchPNG)

	return limitBody(cfg.MaxUploadSizeBytes, mux)
}

func limitBody(maxSize int64, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxSize)
		next.ServeHTTP(w, r)
	})
}
