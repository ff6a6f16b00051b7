package mailer_test

import (
	"labelchecker/pkg/mailer"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTemplates_Invite(t *testing.T) {
	tpls, err := mailer.NewTemplates()
	require.NoError(t, err)

	msg, err := tpls.Invite(mailer.Invite{
		To:          "new@example.com",
		InviterName: "Dana <Owner>",
		AccountName: "Acme Toys",
		AcceptURL:   "https://app.example.com/invite/tok123",
		ExpiresAt:   time.Date(2030, 3, 9, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Equal(t, "new@example.com", msg.To)
	require.Equal(t, "Dana <Owner> invited you to Acme Toys on Product Label Checker", msg.Subject)
	require.Contains(t, msg.HTML, `href="https://app.example.com/invite/tok123"`)
	require.Contains(t, msg.HTML, "Dana &lt;Owner&gt;")
	require.Contains(t, msg.HTML, "2030")
	require.Contains(t, msg.Text, "Accept the invitation: https://app.example.com/invite/tok123")
	require.Contains(t, msg.Text, "March")
	require.Contains(t, msg.Text, "2030")
}

func TestTemplates_InviteDefaultInviter(t *testing.T) {
	tpls, err := mailer.NewTemplates()
	require.NoError(t, err)

	msg, err := tpls.Invite(mailer.Invite{To: "x@example.com", AccountName: "Acme", ExpiresAt: time.Now()})
	require.NoError(t, err)
	require.Contains(t, msg.Subject, "A teammate invited you to Acme")
}
