package commands

import (
	"context"

	"courtbook/internal/domain/person"
	"courtbook/internal/domain/reservation"
	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/usecase/queries"
	"courtbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvitationNotFound  = errs.New("guest invitation not found")
	ErrInviteeNotFound     = errs.New("invitee not found")
	ErrInviteeNotClient    = errs.New("invitee is not a registered client")
	ErrDuplicateInvitation = errs.New("person is already invited to this reservation")
)

type InviteGuestParams struct {
	ReservationID uuid.UUID
	PersonID      uuid.UUID
}

type InvitationCommands interface {
	Invite(ctx context.Context, params InviteGuestParams) (*queries.InvitationView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type invitationCommandsImpl struct {
	runner          shared.TxRunner
	reservationRepo ReservationRepository
	invitationRepo  InvitationRepository
	personRepo      PersonRepository
	issuer          *QRIssuer
	renderer        QRRenderer
	clock           clock.Clock
}

func NewInvitationCommands(
	runner shared.TxRunner,
	reservationRepo ReservationRepository,
	invitationRepo InvitationRepository,
	personRepo PersonRepository,
	issuer *QRIssuer,
	renderer QRRenderer,
	clk clock.Clock,
) InvitationCommands {
	return &invitationCommandsImpl{
		runner:          runner,
		reservationRepo: reservationRepo,
		invitationRepo:  invitationRepo,
		personRepo:      personRepo,
		issuer:          issuer,
		renderer:        renderer,
		clock:           clk,
	}
}

// Invite registers a client as guest of a reservation, grants the guest role,
// and renders a personalized QR. Inviting the same person twice is rejected.
func (c *invitationCommandsImpl) Invite(ctx context.Context, params InviteGuestParams) (*queries.InvitationView, error) {
	var (
		result    *queries.InvitationView
		artifacts []string
	)

	err := c.runner.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		snap, err := c.reservationRepo.FindForUpdate(ctx, tx, params.ReservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return err
		}
		if snap.Status.IsTerminal() {
			return errs.Mark(reservation.ErrReservationCancelled, ErrReservationValidation)
		}

		guest, err := c.personRepo.FindByID(ctx, tx, params.PersonID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrInviteeNotFound
			}
			return err
		}

		isClient, err := c.personRepo.HasRole(ctx, tx, guest.ID, person.RoleClient)
		if err != nil {
			return err
		}
		if !isClient {
			return ErrInviteeNotClient
		}

		exists, err := c.invitationRepo.ExistsFor(ctx, tx, snap.ID, guest.ID)
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicateInvitation
		}

		if err := c.personRepo.EnsureRole(ctx, tx, guest.ID, person.RoleGuest); err != nil {
			return err
		}

		code, err := c.issuer.UniqueInvitationCode(ctx, tx, c.invitationRepo.CodeInUse)
		if err != nil {
			return err
		}

		details, err := c.reservationRepo.DetailsForIssuance(ctx, tx, snap.ID)
		if err != nil {
			return err
		}

		link, err := c.issuer.GuestLink(code, details.HostAlias)
		if err != nil {
			return err
		}

		qrPath, err := c.renderer.RenderGuestQR(GuestQRRequest{
			Content:        link,
			InvitationCode: code,
			GuestAlias:     guest.Alias,
			CourtName:      details.CourtName,
		})
		if err != nil {
			return err
		}
		artifacts = append(artifacts, qrPath)

		rec := &InvitationRecord{
			ID:             uuid.New(),
			ReservationID:  snap.ID,
			PersonID:       guest.ID,
			InvitationCode: code,
			Attendance:     reservation.AttendancePending,
			QRPath:         qrPath,
			ExpiresAt:      details.LastSlotEnd,
			CreatedAt:      c.clock.Now(),
		}
		if _, err := c.invitationRepo.Create(ctx, tx, rec); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateInvitation
			}
			return err
		}

		result = invitationViewFrom(rec, guest.Alias)
		return nil
	})
	if err != nil {
		removeRendered(c.renderer, artifacts)
		return nil, err
	}

	return result, nil
}

func (c *invitationCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	var qrPath string

	err := c.runner.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		rec, err := c.invitationRepo.FindByID(ctx, tx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrInvitationNotFound
			}
			return err
		}
		qrPath = rec.QRPath

		return c.invitationRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	removeRendered(c.renderer, []string{qrPath})
	return nil
}
