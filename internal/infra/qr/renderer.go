// Package qr renders QR artifacts as PNG files with caption lines baked into
// the image, so the file is self-describing when shared on its own.
package qr

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"courtbook/internal/pkg/config"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/usecase/commands"

	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	qrSize     = 256
	margin     = 16
	lineHeight = 16
)

type Renderer struct {
	dir     string
	baseURL string
}

func NewRenderer(cfg config.Config) (commands.QRRenderer, error) {
	for _, sub := range []string{"reservations", "invitations", "guests"} {
		if err := os.MkdirAll(filepath.Join(cfg.Uploads.Dir, sub), 0o755); err != nil {
			return nil, errs.Wrap(err, "failed to create uploads directory")
		}
	}
	return &Renderer{dir: cfg.Uploads.Dir, baseURL: cfg.Uploads.BaseURL}, nil
}

func (r *Renderer) RenderReservationQR(req commands.ReservationQRRequest) (string, error) {
	captions := []string{
		req.VenueName + " / " + req.CourtName,
		"Code: " + req.TrackingCode,
		"Valid until " + req.ExpiresAt.Format("2006-01-02 15:04"),
	}
	return r.render("reservations", req.TrackingCode, req.Content, captions)
}

func (r *Renderer) RenderInvitationQR(req commands.InvitationQRRequest) (string, error) {
	captions := []string{
		req.VenueName + " / " + req.CourtName,
		"Invitation: " + req.InvitationCode,
	}
	return r.render("invitations", req.InvitationCode, req.Content, captions)
}

func (r *Renderer) RenderGuestQR(req commands.GuestQRRequest) (string, error) {
	captions := []string{
		"Guest: " + req.GuestAlias,
		req.CourtName,
		"Invitation: " + req.InvitationCode,
	}
	return r.render("guests", req.InvitationCode, req.Content, captions)
}

// Remove deletes a previously rendered artifact. Missing files are not an
// error, so cleanup stays idempotent.
func (r *Renderer) Remove(path string) error {
	rel, ok := strings.CutPrefix(path, r.baseURL+"/")
	if !ok {
		return errs.Newf("path %q is outside the uploads base", path)
	}
	if err := os.Remove(filepath.Join(r.dir, filepath.FromSlash(rel))); err != nil && !os.IsNotExist(err) {
		return errs.Wrap(err, "failed to remove artifact")
	}
	return nil
}

func (r *Renderer) render(category, code, content string, captions []string) (string, error) {
	qr, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return "", errs.Wrap(err, "failed to encode QR content")
	}

	img := compose(qr.Image(qrSize), captions)

	filename := code + ".png"
	dest := filepath.Join(r.dir, category, filename)

	f, err := os.Create(dest)
	if err != nil {
		return "", errs.Wrap(err, "failed to create artifact file")
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		os.Remove(dest)
		return "", errs.Wrap(err, "failed to write artifact file")
	}

	return r.baseURL + "/" + category + "/" + filename, nil
}

// compose places the QR image on a white canvas with the caption lines drawn
// beneath it.
func compose(qrImg image.Image, captions []string) image.Image {
	width := qrSize + 2*margin
	height := qrSize + 2*margin + len(captions)*lineHeight

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(canvas,
		image.Rect(margin, margin, margin+qrSize, margin+qrSize),
		qrImg, qrImg.Bounds().Min, draw.Src)

	face := basicfont.Face7x13
	for i, line := range captions {
		textWidth := font.MeasureString(face, line).Ceil()
		x := (width - textWidth) / 2
		if x < margin {
			x = margin
		}
		y := qrSize + margin + (i+1)*lineHeight

		d := font.Drawer{
			Dst:  canvas,
			Src:  image.NewUniform(color.Black),
			Face: face,
			Dot:  fixed.P(x, y),
		}
		d.DrawString(line)
	}
	return canvas
}
