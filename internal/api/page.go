package api

import (
	"html/template"
	"log"
	"net/http"

	"colorviz/internal/model"
	"colorviz/internal/service"
)

const waitingName = "Aguardando Leitura..."

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<meta http-equiv="refresh" content="2">
</head>
<body style="background-color:rgb({{.Color.R}},{{.Color.G}},{{.Color.B}}); color:rgb({{.Text.R}},{{.Text.G}},{{.Text.B}}); text-align:center; font-family:sans-serif;">
<h1>Colorviz: Simulação de Daltonismo</h1>
<p>Modo de visualização: <b>{{.Mode}}</b></p>
<p>Cor Identificada: <b>{{.Name}}</b></p>
<p>RGB: ({{.Color.R}}, {{.Color.G}}, {{.Color.B}}) {{.Hex}}</p>
</body>
</html>
`))

type pageData struct {
	Title string
	Mode  string
	Name  string
	Color model.RGB
	Text  model.RGB
	Hex   string
}

func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	data := pageData{Title: h.cfg.APName, Name: waitingName, Mode: h.svc.Menu().Snapshot().Variant.String()}
	if res, ok := h.svc.Shared().Snapshot(); ok {
		data.Mode = res.Variant.String()
		data.Name = res.Name.String()
		data.Color = res.Color
		data.Hex = service.HexOf(res.Color)
	}
	data.Text = service.ReadableText(data.Color)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := pageTmpl.Execute(w, data); err != nil {
		log.Printf("render page: %v", err)
	}
}
