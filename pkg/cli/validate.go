package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mandap-labs/vivaha/pkg/cli/config"
	"github.com/mandap-labs/vivaha/pkg/domain/model"
	"github.com/mandap-labs/vivaha/pkg/service/fixtures"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	var appCfg config.AppConfig
	var checkFixtures bool

	flags := appCfg.Flags()
	flags = append(flags, &cli.BoolFlag{
		Name:        "fixtures",
		Usage:       "Also validate the sample vendors against the schemas",
		Value:       true,
		Destination: &checkFixtures,
	})

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate category schemas and sample data",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			registry, err := appCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "schema validation failed")
			}

			return runValidation(os.Stdout, registry, checkFixtures)
		},
	}
}

// runValidation prints a per-category report and returns an error when
// any schema or fixture vendor fails its checks.
func runValidation(w io.Writer, registry *model.CategoryRegistry, checkFixtures bool) error {
	ok := color.New(color.FgGreen).SprintFunc()
	bad := color.New(color.FgRed).SprintFunc()
	head := color.New(color.Bold).SprintFunc()

	failures := 0

	fmt.Fprintln(w, head("Category schemas"))
	for _, schema := range registry.List() {
		if err := schema.Validate(); err != nil {
			failures++
			fmt.Fprintf(w, "  %s %s: %v\n", bad("✗"), schema.Category, err)
			continue
		}
		fmt.Fprintf(w, "  %s %s (%d fields, %d groups, %d media slots)\n",
			ok("✓"), schema.Category, len(schema.Fields), len(schema.Groups), len(schema.MediaSlots))
	}

	if checkFixtures {
		fmt.Fprintln(w, head("Sample vendors"))
		for _, vendor := range fixtures.Vendors() {
			schema, err := registry.Get(vendor.Category)
			if err != nil {
				failures++
				fmt.Fprintf(w, "  %s %s: unknown category %q\n", bad("✗"), vendor.Name, vendor.Category)
				continue
			}

			draft := model.SeedDraft(schema, vendor)
			result := model.NewDraftValidator(schema).Validate(draft)
			if !result.Valid {
				failures++
				fmt.Fprintf(w, "  %s %s:\n", bad("✗"), vendor.Name)
				for field, msg := range result.Errors {
					fmt.Fprintf(w, "      %s: %s\n", field, msg)
				}
				continue
			}
			fmt.Fprintf(w, "  %s %s\n", ok("✓"), vendor.Name)
		}
	}

	if failures > 0 {
		return goerr.New("validation failed", goerr.V("failures", failures))
	}
	fmt.Fprintln(w, ok("All checks passed"))
	return nil
}
