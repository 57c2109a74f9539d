package landing

import (
	"go.uber.org/fx"
)

// Module provides the landing page
var Module = fx.Module("landing",
	fx.Provide(NewHandler),
	fx.Invoke(RegisterRoutes),
)
