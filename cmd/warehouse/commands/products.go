package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vreeburg/warehouse-dashboard/internal/csvio"
	"github.com/vreeburg/warehouse-dashboard/internal/view"
)

var (
	// Product flags
	productSearch    string
	productLowOnly   bool
	productThreshold int
	productFile      string
	productOut       string
	addProductName   string
	addProductStock  int
	addProductEAN    string
	addProductPrice  float64
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Browse and manage the product inventory",
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products, optionally searched or low-stock only",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, _, err := newController()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		if err := ctrl.RefreshProducts(ctx); err != nil {
			return err
		}
		if err := ctrl.RefreshSettings(ctx); err != nil {
			return err
		}

		products := view.SearchProducts(ctrl.Store().Products(), productSearch)
		if productLowOnly {
			threshold := productThreshold
			if threshold <= 0 {
				threshold = ctrl.LowStockThreshold()
			}
			products = view.LowStock(products, threshold)
		}

		if len(products) == 0 {
			fmt.Println("No products found.")
			return nil
		}

		w := newTable()
		fmt.Fprintln(w, "ID\tNAME\tSTOCK\tPRICE\tCATEGORY\tSUPPLIER")
		for _, p := range products {
			fmt.Fprintf(w, "%d\t%s\t%d\t%.2f\t%s\t%s\n", p.ID, p.Name, p.Stock, p.Price, p.Category, p.Supplier)
		}
		return w.Flush()
	},
}

var productsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new product",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, _, err := newController()
		if err != nil {
			return err
		}

		extra := map[string]any{}
		if addProductEAN != "" {
			extra["ean_code"] = addProductEAN
		}
		if addProductPrice != 0 {
			extra["price"] = addProductPrice
		}

		p, err := ctrl.AddProduct(cmd.Context(), addProductName, addProductStock, extra)
		if err != nil {
			return err
		}
		fmt.Printf("Product %q added with id %d\n", p.Name, p.ID)
		return nil
	},
}

var productsSetStockCmd = &cobra.Command{
	Use:   "set-stock <id> <stock>",
	Short: "Update a product's stock level",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var id int64
		var stock int
		if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
			return fmt.Errorf("invalid product id %q", args[0])
		}
		if _, err := fmt.Sscanf(args[1], "%d", &stock); err != nil {
			return fmt.Errorf("invalid stock amount %q", args[1])
		}

		ctrl, _, err := newController()
		if err != nil {
			return err
		}
		p, err := ctrl.SetProductStock(cmd.Context(), id, stock)
		if err != nil {
			return err
		}
		fmt.Printf("Stock for %q updated to %d\n", p.Name, p.Stock)
		return nil
	},
}

var productsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the product table as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, _, err := newController()
		if err != nil {
			return err
		}
		if err := ctrl.RefreshProducts(cmd.Context()); err != nil {
			return err
		}
		return writeFileOrStdout(productOut, ctrl.ExportProducts())
	},
}

var productsImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import products from a CSV file, one row at a time",
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := os.ReadFile(productFile)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", productFile, err)
		}

		ctrl, _, err := newController()
		if err != nil {
			return err
		}
		res, skipped, err := ctrl.ImportProducts(cmd.Context(), string(content))
		if err != nil {
			return err
		}
		fmt.Printf("Import finished: %d imported, %d failed, %d rows skipped\n", res.Imported, res.Failed, skipped)
		return nil
	},
}

var productsTemplateCmd = &cobra.Command{
	Use:   "template",
	Short: "Print the product import template",
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeFileOrStdout(productOut, csvio.ProductTemplate())
	},
}

func init() {
	rootCmd.AddCommand(productsCmd)
	productsCmd.AddCommand(productsListCmd, productsAddCmd, productsSetStockCmd,
		productsExportCmd, productsImportCmd, productsTemplateCmd)

	productsListCmd.Flags().StringVar(&productSearch, "search", "", "Filter products by name")
	productsListCmd.Flags().BoolVar(&productLowOnly, "low", false, "Show only low-stock products")
	productsListCmd.Flags().IntVar(&productThreshold, "threshold", 0, "Low-stock threshold override")

	productsAddCmd.Flags().StringVar(&addProductName, "name", "", "Product name (required)")
	productsAddCmd.Flags().IntVar(&addProductStock, "stock", 0, "Initial stock level")
	productsAddCmd.Flags().StringVar(&addProductEAN, "ean", "", "EAN code")
	productsAddCmd.Flags().Float64Var(&addProductPrice, "price", 0, "Unit price")
	_ = productsAddCmd.MarkFlagRequired("name")

	productsExportCmd.Flags().StringVar(&productOut, "out", "", "Write CSV to this file instead of stdout")
	productsTemplateCmd.Flags().StringVar(&productOut, "out", "", "Write template to this file instead of stdout")

	productsImportCmd.Flags().StringVar(&productFile, "file", "", "CSV file to import (required)")
	_ = productsImportCmd.MarkFlagRequired("file")
}
