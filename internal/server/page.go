package server

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/tartampluch/go-yourage/internal/config"
	"github.com/tartampluch/go-yourage/internal/engine"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<h2>{{.Prompt}}</h2>
<form method="post" action="/">
<label for="name">{{.LabelName}}</label>
<input name="name" id="name" value="{{.Name}}">
<label for="birthday">{{.LabelBirthday}}</label>
<input type="date" name="birthday" id="birthday" value="{{.Birthday}}">
<button type="submit">{{.LabelSubmit}}</button>
</form>
{{- if .View.Visible}}
{{- if .View.HasAge}}
<h2>{{.Greeting}}</h2>
<p>{{.YouAre}}</p>
{{- range .Lines}}
<p>{{.}}</p>
{{- end}}
<p>{{.Share}}</p>
<p><a href="{{.VCardURL}}">{{.LabelVCard}}</a> <a href="{{.ICalURL}}">{{.LabelICal}}</a></p>
{{- else}}
<p><i>{{.Invalid}}</i></p>
{{- end}}
{{- end}}
</body>
</html>
`))

// pageData feeds pageTemplate.
type pageData struct {
	Title    string
	Prompt   string
	Name     string
	Birthday string
	Greeting string
	YouAre   string
	Invalid  string
	Share    string
	VCardURL template.URL
	ICalURL  template.URL
	View     engine.View

	// Lines are the breakdown rows with the value in bold.
	Lines []template.HTML

	LabelName     string
	LabelBirthday string
	LabelSubmit   string
	LabelVCard    string
	LabelICal     string
}

func newPageData(state engine.State) pageData {
	view := engine.NewView(state)
	// The encoded query is produced by engine.EncodeQuery and is URL-safe.
	query := config.QueryPrefix + view.Query

	lines := make([]template.HTML, 0, len(view.Lines))
	for _, l := range view.Lines {
		value := "<b>" + template.HTMLEscapeString(l.Text) + "</b>"
		lines = append(lines, template.HTML(fmt.Sprintf(config.FormatAgeLine, value, template.HTMLEscapeString(l.Label))))
	}

	return pageData{
		Title:    config.AppName,
		Prompt:   config.FallbackPrompt,
		Name:     state.Name,
		Birthday: state.Birthday.String(),
		Greeting: fmt.Sprintf(config.FallbackHello, state.Name),
		YouAre:   config.FallbackYouAre,
		Invalid:  config.FallbackInvalid,
		Share:    config.FallbackShare,
		VCardURL: template.URL(config.RouteVCard + query),
		ICalURL:  template.URL(config.RouteICal + query),
		View:     view,
		Lines:    lines,

		LabelName:     config.FormLabelName,
		LabelBirthday: config.FormLabelBirthday,
		LabelSubmit:   config.FormLabelSubmit,
		LabelVCard:    config.FormLabelVCard,
		LabelICal:     config.FormLabelICal,
	}
}

// renderPage executes the template into a buffer first so a template error
// never leaves a half-written 200 response.
func (s *ShareServer) renderPage(w http.ResponseWriter, r *http.Request, state engine.State) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, newPageData(state)); err != nil {
		slog.Error(config.ErrRender,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyError, err,
		)
		http.Error(w, config.HTTPMsgInternalErr, http.StatusInternalServerError)
		return
	}

	w.Header().Set(config.HeaderContentType, config.MimeTextHTML)
	w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
	w.Header().Set(config.HeaderCacheControl, config.CacheControlPrivate)
	w.Header().Set(config.HeaderServer, config.UserAgent)

	if r.Method == http.MethodGet {
		if _, err := buf.WriteTo(w); err != nil {
			slog.Error(config.ErrWriteResp,
				config.LogKeyComponent, config.CompServer,
				config.LogKeyError, err,
			)
		}
	}
}
