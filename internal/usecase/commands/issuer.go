package commands

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/codes"
	"courtbook/internal/pkg/config"
	"courtbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNoActiveControllers     = errs.New("no active controllers available")
	ErrCodeGenerationExhausted = errs.New("unable to generate unique code")
)

// qrPayload is the compact JSON blob encoded into the invitation QR.
type qrPayload struct {
	Court string   `json:"court"`
	Venue string   `json:"venue"`
	Host  string   `json:"host"`
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// QRIssuer creates the at-most-one verification QR bundle for a reservation
// once the payment threshold is crossed. It always runs inside the caller's
// transaction; the existence check and the insert share the reservation row
// lock, which is what makes issuance at-most-once under concurrent payments.
type QRIssuer struct {
	reservationRepo ReservationRepository
	issuanceRepo    IssuanceRepository
	controllerRepo  ControllerRepository
	renderer        QRRenderer
	clock           clock.Clock
	baseURL         string
	codeLength      int
	codeMaxAttempts int
}

func NewQRIssuer(
	reservationRepo ReservationRepository,
	issuanceRepo IssuanceRepository,
	controllerRepo ControllerRepository,
	renderer QRRenderer,
	clk clock.Clock,
	cfg config.Config,
) *QRIssuer {
	return &QRIssuer{
		reservationRepo: reservationRepo,
		issuanceRepo:    issuanceRepo,
		controllerRepo:  controllerRepo,
		renderer:        renderer,
		clock:           clk,
		baseURL:         cfg.Server.BaseURL,
		codeLength:      cfg.Booking.CodeLength,
		codeMaxAttempts: cfg.Booking.CodeMaxAttempts,
	}
}

// EnsureIssued issues the QR bundle for the reservation unless one already
// exists; re-invocation is a no-op at reservation granularity. The returned
// artifact paths let the caller delete the rendered files if the enclosing
// transaction later fails.
func (i *QRIssuer) EnsureIssued(
	ctx context.Context,
	dbtx db.DBTX,
	reservationID, paymentID uuid.UUID,
) (rec *IssuanceRecord, artifacts []string, err error) {
	existing, err := i.issuanceRepo.FindByReservation(ctx, dbtx, reservationID)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, nil
	}

	details, err := i.reservationRepo.DetailsForIssuance(ctx, dbtx, reservationID)
	if err != nil {
		return nil, nil, err
	}

	controllerID, err := i.controllerRepo.PickRandomActive(ctx, dbtx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrNoActiveControllers
		}
		return nil, nil, err
	}

	invitationCode, err := i.uniqueCode(ctx, dbtx, i.issuanceRepo.InvitationCodeInUse)
	if err != nil {
		return nil, nil, err
	}
	trackingCode, err := i.uniqueCode(ctx, dbtx, i.issuanceRepo.TrackingCodeInUse)
	if err != nil {
		return nil, nil, err
	}

	payload, err := json.Marshal(qrPayload{
		Court: details.CourtName,
		Venue: details.VenueName,
		Host:  details.HostAlias,
		Date:  details.Date.Format("2006-01-02"),
		Slots: details.SlotDisplays,
	})
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to marshal QR payload")
	}

	reservationPath, err := i.renderer.RenderReservationQR(ReservationQRRequest{
		Content:      fmt.Sprintf("%s/verify/%s", i.baseURL, trackingCode),
		TrackingCode: trackingCode,
		VenueName:    details.VenueName,
		CourtName:    details.CourtName,
		ExpiresAt:    details.LastSlotEnd,
	})
	if err != nil {
		return nil, nil, err
	}
	artifacts = append(artifacts, reservationPath)

	invitationPath, err := i.renderer.RenderInvitationQR(InvitationQRRequest{
		Content:        fmt.Sprintf("%s/invitations/view?d=%s", i.baseURL, base64.RawURLEncoding.EncodeToString(payload)),
		InvitationCode: invitationCode,
		VenueName:      details.VenueName,
		CourtName:      details.CourtName,
	})
	if err != nil {
		return nil, artifacts, err
	}
	artifacts = append(artifacts, invitationPath)

	rec = &IssuanceRecord{
		ID:                uuid.New(),
		ReservationID:     reservationID,
		PaymentID:         paymentID,
		InvitationCode:    invitationCode,
		TrackingCode:      trackingCode,
		Verified:          false,
		ReservationQRPath: reservationPath,
		InvitationQRPath:  invitationPath,
		ControllerID:      controllerID,
		GeneratedAt:       i.clock.Now(),
		ExpiresAt:         details.LastSlotEnd,
	}

	if _, err := i.issuanceRepo.Create(ctx, dbtx, rec); err != nil {
		return nil, artifacts, err
	}

	return rec, artifacts, nil
}

// UniqueInvitationCode generates a guest invitation code against the guest
// invitation table with the same bounded retry as issuance codes.
func (i *QRIssuer) UniqueInvitationCode(
	ctx context.Context,
	dbtx db.DBTX,
	inUse func(context.Context, db.DBTX, string) (bool, error),
) (string, error) {
	return i.uniqueCode(ctx, dbtx, inUse)
}

func (i *QRIssuer) uniqueCode(
	ctx context.Context,
	dbtx db.DBTX,
	inUse func(context.Context, db.DBTX, string) (bool, error),
) (string, error) {
	for attempt := 0; attempt < i.codeMaxAttempts; attempt++ {
		code, err := codes.New(i.codeLength)
		if err != nil {
			return "", err
		}

		taken, err := inUse(ctx, dbtx, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", ErrCodeGenerationExhausted
}

// guestPayload is the content encoded into a personalized guest QR.
type guestPayload struct {
	Code        string    `json:"code"`
	Host        string    `json:"host"`
	GeneratedAt time.Time `json:"generated_at"`
}

// GuestLink wraps a guest invitation payload into a shareable link.
func (i *QRIssuer) GuestLink(code, hostAlias string) (string, error) {
	payload, err := json.Marshal(guestPayload{
		Code:        code,
		Host:        hostAlias,
		GeneratedAt: i.clock.Now(),
	})
	if err != nil {
		return "", errs.Wrap(err, "failed to marshal guest QR payload")
	}
	return fmt.Sprintf("%s/guests/view?d=%s", i.baseURL, base64.RawURLEncoding.EncodeToString(payload)), nil
}
