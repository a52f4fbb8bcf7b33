package engine

import (
	"fmt"
	"io"

	"github.com/tartampluch/go-yourage/internal/config"
)

// View is what a rendering layer displays for one snapshot.
type View struct {
	Name string

	// Visible is false when the name is empty: nothing is rendered at all.
	Visible bool

	// HasAge is false when the birthday is absent; the layer shows the
	// "enter a valid birthday" prompt instead of the breakdown.
	HasAge bool
	Age    Breakdown
	Lines  []AgeLine

	// Query is the encoded projection, without "?", for share links.
	Query string
}

// NewView derives the display model of s.
func NewView(s State) View {
	v := View{
		Name:    s.Name,
		Visible: s.Name != "",
		Query:   EncodeQuery(s.Query()),
	}
	if !v.Visible || s.Birthday.IsZero() {
		return v
	}

	v.HasAge = true
	v.Age = ComputeAge(s.Birthday, s.CurrentTime)
	v.Lines = v.Age.Lines()
	return v
}

// WriteText renders v as plain text, one line per row.
func (v View) WriteText(w io.Writer) error {
	if !v.Visible {
		return nil
	}
	if !v.HasAge {
		_, err := fmt.Fprintln(w, config.FallbackInvalid)
		return err
	}

	if _, err := fmt.Fprintf(w, config.FallbackHello+"\n%s\n", v.Name, config.FallbackYouAre); err != nil {
		return err
	}
	for _, l := range v.Lines {
		if _, err := fmt.Fprintf(w, "  %s\n", l); err != nil {
			return err
		}
	}
	return nil
}
