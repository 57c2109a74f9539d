package sheets

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/imsurajj/amsoft/internal/config"
)

// Module provides the Sheets *Client. Credential problems fail fx startup.
var Module = fx.Module("sheets",
	fx.Provide(NewClientFromConfig),
)

// NewClientFromConfig builds the client from the validated app config.
func NewClientFromConfig(cfg *config.Config, log *slog.Logger) (*Client, error) {
	sc := cfg.Sheets
	return NewClient(context.Background(), Config{
		SpreadsheetID: sc.SheetID,
		Endpoint:      sc.Endpoint,
		Credentials: CredentialsConfig{
			Source:             sc.Source(),
			ClientEmail:        sc.ClientEmail,
			PrivateKey:         sc.PrivateKey,
			ServiceAccountFile: sc.ServiceAccountFile,
		},
	}, WithLogger(log))
}
