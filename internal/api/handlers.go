package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"colorviz/internal/config"
	"colorviz/internal/display"
	"colorviz/internal/model"
	"colorviz/internal/service"
	"colorviz/internal/storage"
	"colorviz/internal/ws"
)

const (
	maxDisplayScale = 8
	swatchSize      = 64
)

type Handler struct {
	cfg      config.Config
	svc      *service.AnalysisService
	store    *storage.Store
	hub      *ws.Hub
	oled     *display.OLED
	upgrader websocket.Upgrader
}

type apiError struct {
	Error string `json:"error"`
}

type resultResponse struct {
	Published bool          `json:"published"`
	Mode      model.Variant `json:"mode"`
	Name      string        `json:"name"`
	RGB       model.RGB     `json:"rgb"`
	Hex       string        `json:"hex"`
	Sensed    model.RGB     `json:"sensed"`
	DeltaE    float64       `json:"delta_e"`
}

type paletteEntry struct {
	Name   string    `json:"name"`
	Sensor model.RGB `json:"sensor"`
	Ideal  model.RGB `json:"ideal"`
	Hex    string    `json:"hex"`
}

type simulateResponse struct {
	Mode     model.Variant `json:"mode"`
	Name     string        `json:"name"`
	Input    model.RGB     `json:"input"`
	Matched  model.RGB     `json:"matched"`
	RGB      model.RGB     `json:"rgb"`
	Hex      string        `json:"hex"`
	Distance float32       `json:"distance"`
}

func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, errors.New("websocket requires GET"))
		return
	}
	if !websocket.IsWebSocketUpgrade(r) {
		writeErr(w, http.StatusBadRequest, errors.New("websocket upgrade required"))
		return
	}
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: remote=%s host=%s uri=%s err=%v", r.RemoteAddr, r.Host, r.RequestURI, err)
		return
	}
	client := ws.NewClient(h.hub, conn)
	h.hub.Register(client)
	h.hub.BroadcastEvent(model.Event{ID: uuid.NewString(), Type: "ws.client_connected", Payload: map[string]string{"remote": r.RemoteAddr}, CreatedAt: time.Now().UnixMilli()})
	go client.WritePump()
	go client.ReadPump()
}

// Result reports the published analysis. delta_e is the Lab distance between
// what the sensor read and the palette color it was matched to.
func (h *Handler) Result(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	res, ok := h.svc.Shared().Snapshot()
	if !ok {
		writeJSON(w, http.StatusOK, resultResponse{Mode: h.svc.Menu().Snapshot().Variant, Name: waitingName})
		return
	}
	_, m := h.svc.Pipeline().Identify(res.Sensed, res.Variant)
	writeJSON(w, http.StatusOK, resultResponse{
		Published: true,
		Mode:      res.Variant,
		Name:      res.Name.String(),
		RGB:       res.Color,
		Hex:       service.HexOf(res.Color),
		Sensed:    res.Sensed,
		DeltaE:    service.PerceptualDistance(res.Sensed, m.Ideal),
	})
}

func (h *Handler) Modes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"modes": model.Variants()})
}

// Menu takes a named action, a direct mode choice or a raw 12-bit joystick Y
// reading.
func (h *Handler) Menu(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.svc.Menu().Snapshot())
	case http.MethodPost:
		var req struct {
			Action string         `json:"action"`
			Mode   *model.Variant `json:"mode"`
			Axis   *uint16        `json:"axis"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErr(w, http.StatusBadRequest, err)
			return
		}
		var (
			st  service.MenuState
			err error
		)
		switch {
		case req.Mode != nil:
			st, err = h.svc.SelectVariant(*req.Mode)
		case req.Axis != nil:
			action, moved := service.AxisAction(*req.Axis)
			if !moved {
				writeJSON(w, http.StatusOK, h.svc.Menu().Snapshot())
				return
			}
			st, err = h.svc.ApplyMenu(action)
		default:
			var action service.MenuAction
			action, err = service.ParseMenuAction(req.Action)
			if err == nil {
				st, err = h.svc.ApplyMenu(action)
			}
		}
		if errors.Is(err, service.ErrUnknownAction) || errors.Is(err, model.ErrUnknownVariant) {
			writeErr(w, http.StatusBadRequest, err)
			return
		}
		if err != nil {
			writeErr(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, st)
	default:
		methodNotAllowed(w)
	}
}

func (h *Handler) Palette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	palette := h.svc.Pipeline().Palette
	out := make([]paletteEntry, 0, len(palette))
	for _, ref := range palette {
		out = append(out, paletteEntry{Name: ref.Name, Sensor: ref.Sensor, Ideal: ref.Ideal, Hex: service.HexOf(ref.Ideal)})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"colors": out})
}

// Simulate matches and filters a color supplied by the caller, bypassing the
// sensor. The variant defaults to the one selected in the menu.
func (h *Handler) Simulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req struct {
		R       *int   `json:"r"`
		G       *int   `json:"g"`
		B       *int   `json:"b"`
		Variant string `json:"variant"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, err)
		return
	}
	c, err := rgbFromRequest(req.R, req.G, req.B)
	if err != nil {
		writeErr(w, http.StatusBadRequest, err)
		return
	}
	variant := h.svc.Menu().Snapshot().Variant
	if strings.TrimSpace(req.Variant) != "" {
		if variant, err = model.ParseVariant(req.Variant); err != nil {
			writeErr(w, http.StatusBadRequest, err)
			return
		}
	}
	res, m := h.svc.Pipeline().Identify(c, variant)
	writeJSON(w, http.StatusOK, simulateResponse{
		Mode:     res.Variant,
		Name:     res.Name.String(),
		Input:    c,
		Matched:  m.Ideal,
		RGB:      res.Color,
		Hex:      service.HexOf(res.Color),
		Distance: m.Distance,
	})
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"history": h.store.History()})
}

func (h *Handler) DisplayPNG(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	scale := atoiDefault(r.URL.Query().Get("scale"), 1)
	if scale > maxDisplayScale {
		scale = maxDisplayScale
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	if err := h.oled.WritePNG(w, scale); err != nil {
		log.Printf("encode display png: %v", err)
	}
}

// DisplayRaw serves the framebuffer in the panel's own page layout.
func (h *Handler) DisplayRaw(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(h.oled.PageBuffer())
}

func (h *Handler) SwatchPNG(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	res, ok := h.svc.Shared().Snapshot()
	if !ok {
		writeErr(w, http.StatusNotFound, errors.New("no color published yet"))
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	if err := display.WriteSwatchPNG(w, res.Color, swatchSize); err != nil {
		log.Printf("encode swatch png: %v", err)
	}
}

func rgbFromRequest(r, g, b *int) (model.RGB, error) {
	if r == nil || g == nil || b == nil {
		return model.RGB{}, errors.New("r, g and b required")
	}
	for _, v := range []int{*r, *g, *b} {
		if v < 0 || v > 255 {
			return model.RGB{}, errors.New("channels must be in [0,255]")
		}
	}
	return model.RGB{R: uint8(*r), G: uint8(*g), B: uint8(*b)}, nil
}

func writeJSON(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

func writeErr(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, apiError{Error: err.Error()})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeErr(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
}

func atoiDefault(v string, d int) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n <= 0 {
		return d
	}
	return n
}
