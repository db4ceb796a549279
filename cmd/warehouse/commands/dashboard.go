package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vreeburg/warehouse-dashboard/internal/view"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the overview page: stats, low-stock alerts, recent orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard(cmd)
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command) error {
	ctrl, _, err := newController()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if err := ctrl.RefreshAll(ctx); err != nil {
		return err
	}

	stats := ctrl.Overview()
	fmt.Println("Dashboard Overview")
	fmt.Println()
	fmt.Printf("  Total Products:  %d\n", stats.TotalProducts)
	fmt.Printf("  Total Orders:    %d\n", stats.TotalOrders)
	fmt.Printf("  Pending Orders:  %d\n", stats.PendingOrders)
	fmt.Printf("  Low Stock Items: %d\n", stats.LowStockItems)
	fmt.Printf("  Active Workers:  %d\n", view.CountActive(ctrl.Store().Workers()))

	low := view.LowStock(ctrl.Store().Products(), ctrl.LowStockThreshold())
	if len(low) > 0 {
		fmt.Println()
		fmt.Println("Low Stock Alerts")
		for _, p := range low {
			fmt.Printf("  %s - only %d units remaining\n", p.Name, p.Stock)
		}
	}

	recent := view.RecentOrders(ctrl.Store().Orders(), 5)
	if len(recent) > 0 {
		fmt.Println()
		fmt.Println("Recent Orders")
		w := newTable()
		fmt.Fprintln(w, "ORDER\tCUSTOMER\tSTATUS")
		for _, o := range recent {
			fmt.Fprintf(w, "#%d\t%s\t%s\n", o.ID, o.CustomerName, o.Status)
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}
	return nil
}
