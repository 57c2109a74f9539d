package waitlist

import (
	"go.uber.org/fx"
)

// Module provides the waitlist domain
var Module = fx.Module("waitlist",
	fx.Provide(NewSheetStoreFromConfig),
	fx.Provide(NewService),
	fx.Provide(NewHandler),
	fx.Invoke(RegisterRoutes),
)
