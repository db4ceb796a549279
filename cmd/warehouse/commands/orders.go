package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/vreeburg/warehouse-dashboard/internal/api"
	"github.com/vreeburg/warehouse-dashboard/internal/csvio"
	"github.com/vreeburg/warehouse-dashboard/internal/record"
	"github.com/vreeburg/warehouse-dashboard/internal/view"
)

var (
	// Order flags
	orderStatusFilter string
	orderSearch       string
	orderFile         string
	orderOut          string
	orderCustomerID   int64
	orderItems        []string
	assignOrderID     int64
	assignWorkerID    int64
	assignClear       bool
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Browse and manage orders",
}

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List orders, optionally filtered by status and searched",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, _, err := newController()
		if err != nil {
			return err
		}
		if err := ctrl.RefreshOrders(cmd.Context()); err != nil {
			return err
		}

		orders := view.ByStatus(ctrl.Store().Orders(), record.OrderStatus(orderStatusFilter))
		orders = view.SearchOrders(orders, orderSearch)
		if len(orders) == 0 {
			fmt.Println("No orders found.")
			return nil
		}

		w := newTable()
		fmt.Fprintln(w, "ID\tCUSTOMER\tITEMS\tSTATUS\tCREATED")
		for _, o := range orders {
			created := ""
			if !o.CreatedAt.IsZero() {
				created = o.CreatedAt.Format(time.RFC3339)
			}
			fmt.Fprintf(w, "#%d\t%s\t%s\t%s\t%s\n", o.ID, o.CustomerName, summarizeItems(o), o.Status, created)
		}
		return w.Flush()
	},
}

// summarizeItems renders the line items compactly, falling back to the
// legacy flat fields.
func summarizeItems(o record.Order) string {
	if len(o.Items) == 0 {
		if o.ProductName != "" {
			return fmt.Sprintf("%s x%d", o.ProductName, o.Quantity)
		}
		return "-"
	}
	parts := make([]string, 0, len(o.Items))
	for _, item := range o.Items {
		parts = append(parts, fmt.Sprintf("%s x%d", item.ProductName, item.Quantity))
	}
	return strings.Join(parts, ", ")
}

var ordersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an order with one or more productId:quantity items",
	RunE: func(cmd *cobra.Command, args []string) error {
		items := make([]api.OrderItemInput, 0, len(orderItems))
		for _, spec := range orderItems {
			item, err := parseItemSpec(spec)
			if err != nil {
				return err
			}
			items = append(items, item)
		}

		ctrl, _, err := newController()
		if err != nil {
			return err
		}
		o, err := ctrl.CreateOrder(cmd.Context(), orderCustomerID, items)
		if err != nil {
			return err
		}
		fmt.Printf("Order #%d created for customer %d\n", o.ID, orderCustomerID)
		return nil
	},
}

func parseItemSpec(spec string) (api.OrderItemInput, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return api.OrderItemInput{}, fmt.Errorf("invalid item %q, expected productId:quantity", spec)
	}
	productID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return api.OrderItemInput{}, fmt.Errorf("invalid product id in item %q", spec)
	}
	quantity, err := strconv.Atoi(parts[1])
	if err != nil {
		return api.OrderItemInput{}, fmt.Errorf("invalid quantity in item %q", spec)
	}
	return api.OrderItemInput{ProductID: productID, Quantity: quantity}, nil
}

var ordersSetStatusCmd = &cobra.Command{
	Use:   "set-status <id> <status>",
	Short: "Move an order to the next lifecycle status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid order id %q", args[0])
		}

		ctrl, _, err := newController()
		if err != nil {
			return err
		}
		if err := ctrl.RefreshOrders(cmd.Context()); err != nil {
			return err
		}
		o, err := ctrl.SetOrderStatus(cmd.Context(), id, record.OrderStatus(args[1]))
		if err != nil {
			return err
		}
		fmt.Printf("Order #%d is now %s\n", o.ID, o.Status)
		return nil
	},
}

var ordersProcessCmd = &cobra.Command{
	Use:   "process <id>",
	Short: "Mark an order as processed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid order id %q", args[0])
		}

		ctrl, _, err := newController()
		if err != nil {
			return err
		}
		if err := ctrl.RefreshOrders(cmd.Context()); err != nil {
			return err
		}
		o, err := ctrl.ProcessOrder(cmd.Context(), id)
		if err != nil {
			return err
		}
		fmt.Printf("Order #%d processed successfully\n", o.ID)
		return nil
	},
}

var ordersAssignCmd = &cobra.Command{
	Use:   "assign",
	Short: "Assign a picker or packer to an order",
	RunE: func(cmd *cobra.Command, args []string) error {
		roleFlag, _ := cmd.Flags().GetString("role")
		var role api.AssignRole
		switch roleFlag {
		case "picker":
			role = api.AssignPicker
		case "packer":
			role = api.AssignPacker
		default:
			return fmt.Errorf("role must be picker or packer, got %q", roleFlag)
		}

		ctrl, _, err := newController()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		if err := ctrl.RefreshOrders(ctx); err != nil {
			return err
		}
		if err := ctrl.RefreshWorkers(ctx); err != nil {
			return err
		}

		var workerID *int64
		if !assignClear {
			workerID = &assignWorkerID
		}
		o, err := ctrl.AssignWorker(ctx, assignOrderID, role, workerID)
		if err != nil {
			return err
		}
		if assignClear {
			fmt.Printf("Cleared %s on order #%d\n", role, o.ID)
		} else {
			fmt.Printf("Assigned worker %d as %s on order #%d\n", assignWorkerID, role, o.ID)
		}
		return nil
	},
}

var ordersExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the order table as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, _, err := newController()
		if err != nil {
			return err
		}
		if err := ctrl.RefreshOrders(cmd.Context()); err != nil {
			return err
		}
		return writeFileOrStdout(orderOut, ctrl.ExportOrders())
	},
}

var ordersImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import orders from a CSV file, one row at a time",
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := os.ReadFile(orderFile)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", orderFile, err)
		}

		ctrl, _, err := newController()
		if err != nil {
			return err
		}
		res, skipped, err := ctrl.ImportOrders(cmd.Context(), string(content))
		if err != nil {
			return err
		}
		fmt.Printf("Import finished: %d imported, %d failed, %d rows skipped\n", res.Imported, res.Failed, skipped)
		return nil
	},
}

var ordersTemplateCmd = &cobra.Command{
	Use:   "template",
	Short: "Print the order import template",
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeFileOrStdout(orderOut, csvio.OrderTemplate())
	},
}

func init() {
	rootCmd.AddCommand(ordersCmd)
	ordersCmd.AddCommand(ordersListCmd, ordersCreateCmd, ordersSetStatusCmd, ordersProcessCmd,
		ordersAssignCmd, ordersExportCmd, ordersImportCmd, ordersTemplateCmd)

	ordersListCmd.Flags().StringVar(&orderStatusFilter, "status", "all", "Filter by status (pending, picked, packed, shipped, processed, all)")
	ordersListCmd.Flags().StringVar(&orderSearch, "search", "", "Search by customer or product name")

	ordersCreateCmd.Flags().Int64Var(&orderCustomerID, "customer", 0, "Customer id (required)")
	ordersCreateCmd.Flags().StringArrayVar(&orderItems, "item", nil, "Line item as productId:quantity (repeatable)")
	_ = ordersCreateCmd.MarkFlagRequired("customer")
	_ = ordersCreateCmd.MarkFlagRequired("item")

	ordersAssignCmd.Flags().Int64Var(&assignOrderID, "order", 0, "Order id (required)")
	ordersAssignCmd.Flags().String("role", "", "Assignment slot: picker or packer (required)")
	ordersAssignCmd.Flags().Int64Var(&assignWorkerID, "worker", 0, "Worker id")
	ordersAssignCmd.Flags().BoolVar(&assignClear, "clear", false, "Clear the slot instead of assigning")
	_ = ordersAssignCmd.MarkFlagRequired("order")
	_ = ordersAssignCmd.MarkFlagRequired("role")

	ordersExportCmd.Flags().StringVar(&orderOut, "out", "", "Write CSV to this file instead of stdout")
	ordersTemplateCmd.Flags().StringVar(&orderOut, "out", "", "Write template to this file instead of stdout")

	ordersImportCmd.Flags().StringVar(&orderFile, "file", "", "CSV file to import (required)")
	_ = ordersImportCmd.MarkFlagRequired("file")
}
