package mailer

import (
	"embed"
	"fmt"
	"strings"
	"time"

	"github.com/osteele/liquid"
)

//go:embed templates/*.liquid
var templateFS embed.FS

// Templates renders the embedded liquid templates.
type Templates struct {
	engine *liquid.Engine
	tpls   map[string]*liquid.Template
}

// NewTemplates parses all embedded templates.
func NewTemplates() (*Templates, error) {
	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("could not list templates: %w", err)
	}

	t := &Templates{engine: liquid.NewEngine(), tpls: make(map[string]*liquid.Template, len(entries))}
	for _, e := range entries {
		src, err := templateFS.ReadFile("templates/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("could not read template %s: %w", e.Name(), err)
		}
		tpl, perr := t.engine.ParseTemplate(src)
		if perr != nil {
			return nil, fmt.Errorf("could not parse template %s: %w", e.Name(), perr)
		}
		t.tpls[strings.TrimSuffix(e.Name(), ".liquid")] = tpl
	}

	return t, nil
}

func (t *Templates) render(name string, bindings liquid.Bindings) (string, error) {
	tpl, ok := t.tpls[name]
	if !ok {
		return "", fmt.Errorf("unknown template %s", name)
	}
	out, err := tpl.RenderString(bindings)
	if err != nil {
		return "", fmt.Errorf("could not render %s: %w", name, err)
	}

	return out, nil
}

// Invite describes an invitation email.
type Invite struct {
	To          string
	InviterName string
	AccountName string
	AcceptURL   string
	ExpiresAt   time.Time
}

// Invite renders the invitation email.
func (t *Templates) Invite(inv Invite) (Message, error) {
	bindings := liquid.Bindings{
		"inviter_name": inv.InviterName,
		"account_name": inv.AccountName,
		"accept_url":   inv.AcceptURL,
		"expires_at":   inv.ExpiresAt,
	}

	subject, err := t.render("invite_subject", bindings)
	if err != nil {
		return Message{}, err
	}
	html, err := t.render("invite.html", bindings)
	if err != nil {
		return Message{}, err
	}
	text, err := t.render("invite.txt", bindings)
	if err != nil {
		return Message{}, err
	}

	return Message{
		To:      inv.To,
		Subject: strings.TrimSpace(subject),
		HTML:    html,
		Text:    text,
	}, nil
}
