package components

import (
	"carhaul-portal/internal/upstream"
	"carhaul-portal/internal/usecase/commands"
	"carhaul-portal/internal/usecase/queries"

	"go.uber.org/fx"
)

// GatewayModule wires the upstream core-API clients to the gateway ports the
// use cases depend on.
var GatewayModule = fx.Module("gateway",
	fx.Provide(
		upstream.NewClient,
		fx.Annotate(
			upstream.NewAuthClient,
			fx.As(new(commands.AuthGateway)),
		),
		fx.Annotate(
			upstream.NewQuoteClient,
			fx.As(new(commands.QuoteGateway)),
		),
		fx.Annotate(
			upstream.NewReservationClient,
			fx.As(new(commands.ReservationGateway)),
		),
		fx.Annotate(
			upstream.NewPaymentClient,
			fx.As(new(commands.PaymentGateway)),
		),
		fx.Annotate(
			upstream.NewContactClient,
			fx.As(new(commands.ContactGateway)),
		),
		fx.Annotate(
			upstream.NewAdminClient,
			fx.As(new(commands.AdminGateway)),
		),
		fx.Annotate(
			upstream.NewBrandClient,
			fx.As(new(queries.BrandGateway)),
		),
		fx.Annotate(
			upstream.NewMapsClient,
			fx.As(new(queries.MapsGateway)),
		),
		fx.Annotate(
			upstream.NewTrackingClient,
			fx.As(new(queries.TrackingGateway)),
		),
		// The profile client backs both a command and a query port.
		upstream.NewProfileClient,
		func(c *upstream.ProfileClient) commands.ProfileGateway { return c },
		func(c *upstream.ProfileClient) queries.DashboardGateway { return c },
	),
)
