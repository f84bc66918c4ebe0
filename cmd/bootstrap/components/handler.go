package components

import (
	"carhaul-portal/internal/handler"
	"carhaul-portal/internal/handler/api"
	"carhaul-portal/internal/handler/middleware"
	"carhaul-portal/internal/usecase/commands"
	"carhaul-portal/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(c *commands.AuthCommands) api.AuthCommands { return c },
		func(c *commands.WizardCommands) api.WizardCommands { return c },
		func(c *commands.PaymentCommands) api.PaymentCommands { return c },
		func(c *commands.ProfileCommands) api.ProfileCommands { return c },
		func(c *commands.AdminCommands) api.AdminCommands { return c },
		func(c *commands.ContactCommands) api.ContactCommands { return c },
		func(q *queries.WizardQueries) api.WizardQueries { return q },
		func(q *queries.LookupQueries) api.LookupQueries { return q },
		func(q *queries.SuggestQueries) api.SuggestQueries { return q },
		func(q *queries.TrackingQueries) api.TrackingQueries { return q },
		func(q *queries.ProfileQueries) api.ProfileQueries { return q },
		api.NewAuthHandler,
		api.NewWizardHandler,
		api.NewPaymentHandler,
		api.NewLookupHandler,
		api.NewTrackingHandler,
		api.NewProfileHandler,
		api.NewAdminHandler,
		api.NewContactHandler,
		middleware.NewAuthMiddleware,
		middleware.NewVisitorMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	wizard *api.WizardHandler,
	payment *api.PaymentHandler,
	lookup *api.LookupHandler,
	tracking *api.TrackingHandler,
	profile *api.ProfileHandler,
	admin *api.AdminHandler,
	contact *api.ContactHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:     auth,
		Wizard:   wizard,
		Payment:  payment,
		Lookup:   lookup,
		Tracking: tracking,
		Profile:  profile,
		Admin:    admin,
		Contact:  contact,
	}
}
