package components

import (
	"courtbook/internal/infra/qr"
	"courtbook/internal/infra/readstore"
	"courtbook/internal/infra/repository"
	"courtbook/internal/infra/uow"

	"go.uber.org/fx"
)

// Constructors return the port interfaces the command layer consumes.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		uow.NewPostgresTxRunner,
		repository.NewReservationRepository,
		repository.NewPaymentRepository,
		repository.NewIssuanceRepository,
		repository.NewInvitationRepository,
		repository.NewPersonRepository,
		repository.NewCourtRepository,
		repository.NewControllerRepository,
		repository.NewNotificationRepository,
		readstore.NewReservationReadStore,
		qr.NewRenderer,
	),
)
