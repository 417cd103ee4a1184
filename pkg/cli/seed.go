package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mandap-labs/vivaha/pkg/cli/config"
	"github.com/mandap-labs/vivaha/pkg/service/fixtures"
	"github.com/mandap-labs/vivaha/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdSeed() *cli.Command {
	var repoCfg config.Repository

	return &cli.Command{
		Name:  "seed",
		Usage: "Load sample vendors into the configured repository",
		Flags: repoCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			if err := fixtures.Load(ctx, repo); err != nil {
				return goerr.Wrap(err, "failed to seed fixtures")
			}
			return nil
		},
	}
}
