//go:build unit

package qr_test

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"courtbook/internal/infra/qr"
	"courtbook/internal/pkg/config"
	"courtbook/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(t *testing.T) (commands.QRRenderer, string) {
	t.Helper()
	dir := t.TempDir()

	cfg := config.NewTestConfig()
	cfg.Uploads.Dir = dir
	cfg.Uploads.BaseURL = "/uploads"

	r, err := qr.NewRenderer(cfg)
	require.NoError(t, err)
	return r, dir
}

func TestRenderer_RenderReservationQR(t *testing.T) {
	r, dir := newTestRenderer(t)

	path, err := r.RenderReservationQR(commands.ReservationQRRequest{
		Content:      "http://localhost:8889/verify/TRACK12345",
		TrackingCode: "TRACK12345",
		VenueName:    "Riverside",
		CourtName:    "Court 1",
		ExpiresAt:    time.Date(2026, 9, 5, 10, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, "/uploads/reservations/TRACK12345.png", path)

	f, err := os.Open(filepath.Join(dir, "reservations", "TRACK12345.png"))
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	// Canvas is the QR square plus margins and three caption lines.
	assert.Equal(t, 288, img.Bounds().Dx())
	assert.Greater(t, img.Bounds().Dy(), img.Bounds().Dx())
}

func TestRenderer_RenderGuestQR(t *testing.T) {
	r, dir := newTestRenderer(t)

	path, err := r.RenderGuestQR(commands.GuestQRRequest{
		Content:        "http://localhost:8889/guests/view?d=abc",
		InvitationCode: "INVITE0001",
		GuestAlias:     "bruno",
		CourtName:      "Court 2",
	})

	require.NoError(t, err)
	assert.Equal(t, "/uploads/guests/INVITE0001.png", path)
	assert.FileExists(t, filepath.Join(dir, "guests", "INVITE0001.png"))
}

func TestRenderer_RemoveIsIdempotent(t *testing.T) {
	r, dir := newTestRenderer(t)

	path, err := r.RenderInvitationQR(commands.InvitationQRRequest{
		Content:        "http://localhost:8889/invitations/view?d=abc",
		InvitationCode: "INVITE0002",
		VenueName:      "Riverside",
		CourtName:      "Court 1",
	})
	require.NoError(t, err)

	require.NoError(t, r.Remove(path))
	assert.NoFileExists(t, filepath.Join(dir, "invitations", "INVITE0002.png"))

	// A second removal of the same path is not an error.
	assert.NoError(t, r.Remove(path))
}

func TestRenderer_RemoveRejectsForeignPath(t *testing.T) {
	r, _ := newTestRenderer(t)

	err := r.Remove("/etc/passwd")
	assert.Error(t, err)
}
