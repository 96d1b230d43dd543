package router

import (
	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/constants"
)

// Titles localizes destination titles for breadcrumbs and headers.
// Message files are TOML, named like active.es.toml. Load every file before
// calling For; the bundle is not safe to modify while it is being read.
type Titles struct {
	bundle *i18n.Bundle
}

// NewTitles creates an empty title set whose default language is
// constants.DefaultLanguage.
func NewTitles() *Titles {
	bundle := i18n.NewBundle(language.Make(constants.DefaultLanguage))
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	return &Titles{bundle: bundle}
}

// LoadMessageFile adds the messages of a TOML message file. The language is
// taken from the file name.
func (t *Titles) LoadMessageFile(path string) error {
	_, err := t.bundle.LoadMessageFile(path)
	return err
}

// AddMessageFile adds messages from TOML bytes; name carries the language
// the same way a file name would (e.g. "active.de.toml").
func (t *Titles) AddMessageFile(data []byte, name string) error {
	_, err := t.bundle.ParseMessageFileBytes(data, name)
	return err
}

// AddMessages adds messages for a language directly.
func (t *Titles) AddMessages(tag language.Tag, messages ...*i18n.Message) error {
	return t.bundle.AddMessages(tag, messages...)
}

// For returns the localized title of dest in the first available of langs.
// The destination parameters are available to the message template. When
// the route has no title, or no message matches, the segment is returned.
func (t *Titles) For(dest Destination, langs ...string) string {
	if dest.Title == "" {
		return dest.Segment
	}

	data := make(map[string]string, len(dest.Params))
	for k, v := range dest.Params {
		data[k] = v
	}

	title, err := i18n.NewLocalizer(t.bundle, langs...).Localize(&i18n.LocalizeConfig{
		MessageID:    dest.Title,
		TemplateData: data,
	})
	if err != nil || title == "" {
		return dest.Segment
	}

	return title
}

// Breadcrumbs returns the titles of dests in order.
func (t *Titles) Breadcrumbs(dests []Destination, langs ...string) []string {
	crumbs := make([]string, len(dests))
	for i, d := range dests {
		crumbs[i] = t.For(d, langs...)
	}
	return crumbs
}
