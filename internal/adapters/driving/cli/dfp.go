package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/adsclient/internal/apis/dfp/v201605"
	"github.com/custodia-labs/adsclient/internal/core/domain"
	"github.com/custodia-labs/adsclient/internal/core/services"
	"github.com/custodia-labs/adsclient/internal/statement"
)

var dfpPageSize int

var dfpCmd = &cobra.Command{
	Use:   "dfp",
	Short: "Run DFP API examples",
}

var dfpLineItemsCmd = &cobra.Command{
	Use:   "line-items",
	Short: "List all line items, page by page",
	RunE:  runDfpLineItems,
}

func init() {
	dfpLineItemsCmd.Flags().IntVar(&dfpPageSize, "page-size", statement.SuggestedPageLimit, "line items per request")
	dfpCmd.AddCommand(dfpLineItemsCmd)
	rootCmd.AddCommand(dfpCmd)
}

func runDfpLineItems(cmd *cobra.Command, _ []string) error {
	if dfpPageSize <= 0 {
		return fmt.Errorf("%w: --page-size must be positive", domain.ErrInvalidInput)
	}
	f, err := getDfpFactory()
	if err != nil {
		return err
	}

	cmd.Println("This example gets all line items.")

	ctx := cmd.Context()
	svc, err := services.GetService[*v201605.LineItemService](ctx, f, v201605.LineItemServiceSignature,
		services.NewUser(f.Config().NetworkCode))
	if err != nil {
		cmd.Printf("Failed to get line items. Error says \"%s\"\n", err)
		return nil
	}

	b := statement.New().OrderBy("id ASC").Limit(dfpPageSize)
	var page *v201605.LineItemPage
	for {
		page, err = svc.GetLineItemsByStatement(ctx, b.MustStatement())
		if err != nil {
			cmd.Printf("Failed to get line items. Error says \"%s\"\n", err)
			return nil
		}

		i := page.StartIndex
		for _, item := range page.Results {
			cmd.Printf("%d) Line item with ID \"%d\" and name \"%s\" was found.\n", i, item.ID, item.Name)
			i++
		}

		b.IncreaseOffsetBy(dfpPageSize)
		if b.GetOffset() >= page.TotalResultSetSize {
			break
		}
	}

	cmd.Printf("Number of results found: %d\n", page.TotalResultSetSize)
	return nil
}
