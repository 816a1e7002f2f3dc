package launcher

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os/exec"
	"testing"

	"warranty/config"
	"warranty/internal/domain/constants"
	"warranty/internal/domain/share"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLinkOpener(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name    string
		share   *config.ShareConfig
		want    any
		wantErr bool
	}{
		{name: "default", share: nil, want: &logOpener{}},
		{name: "log", share: &config.ShareConfig{Opener: constants.OpenerLog}, want: &logOpener{}},
		{name: "system", share: &config.ShareConfig{Opener: constants.OpenerSystem}, want: &systemOpener{}},
		{name: "unknown", share: &config.ShareConfig{Opener: "carrier-pigeon"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opener, err := NewLinkOpener(Params{
				Config: &config.Config{Share: tt.share},
				Logger: logger,
			})
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown share opener")

				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, opener)
		})
	}
}

func TestLogOpener_RecordsLink(t *testing.T) {
	var buf bytes.Buffer
	opener := NewLogOpener(slog.New(slog.NewTextHandler(&buf, nil)))

	err := opener.Open(context.Background(), share.ChannelWhatsApp, "https://wa.me/60123456789?text=hi")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "channel=whatsapp")
	assert.Contains(t, buf.String(), "https://wa.me/60123456789?text=hi")
}

func TestPlatformCommand(t *testing.T) {
	ctx := context.Background()
	uri := "mailto:a@example.com"

	tests := []struct {
		goos string
		want []string
	}{
		{goos: "darwin", want: []string{"open", uri}},
		{goos: "windows", want: []string{"rundll32", "url.dll,FileProtocolHandler", uri}},
		{goos: "linux", want: []string{"xdg-open", uri}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			cmd := platformCommand(tt.goos)(ctx, uri)
			assert.Equal(t, tt.want, cmd.Args)
		})
	}
}

func TestSystemOpener_StartFailure(t *testing.T) {
	opener := &systemOpener{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		command: func(ctx context.Context, uri string) *exec.Cmd {
			return exec.CommandContext(ctx, "/nonexistent/url-handler", uri)
		},
	}

	err := opener.Open(context.Background(), share.ChannelEmail, "mailto:a@example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open email link")

	err = opener.Open(context.Background(), share.ChannelEmail, "")
	require.Error(t, err)
}
