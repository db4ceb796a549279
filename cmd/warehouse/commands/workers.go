package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/vreeburg/warehouse-dashboard/internal/record"
	"github.com/vreeburg/warehouse-dashboard/internal/view"
)

var (
	workerActiveOnly bool
	addWorkerName    string
	addWorkerEmail   string
	addWorkerRole    string
	addWorkerPhone   string
)

var workersCmd = &cobra.Command{
	Use:   "workers",
	Short: "Browse and manage warehouse workers",
}

var workersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workers",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, _, err := newController()
		if err != nil {
			return err
		}
		if err := ctrl.RefreshWorkers(cmd.Context()); err != nil {
			return err
		}

		workers := ctrl.Store().Workers()
		if workerActiveOnly {
			workers = view.ActiveWorkers(workers)
		}
		if len(workers) == 0 {
			fmt.Println("No workers found.")
			return nil
		}

		w := newTable()
		fmt.Fprintln(w, "ID\tNAME\tROLE\tEMAIL\tACTIVE")
		for _, worker := range workers {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\n", worker.ID, worker.Name, worker.Role, worker.Email, worker.Active)
		}
		return w.Flush()
	},
}

var workersAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a worker",
	RunE: func(cmd *cobra.Command, args []string) error {
		role := record.WorkerRole(addWorkerRole)
		if !role.Valid() {
			return fmt.Errorf("role must be Picker, Packer, Supervisor or Manager, got %q", addWorkerRole)
		}

		_, client, err := newController()
		if err != nil {
			return err
		}
		fields := map[string]any{
			"name":   addWorkerName,
			"email":  addWorkerEmail,
			"role":   addWorkerRole,
			"active": true,
		}
		if addWorkerPhone != "" {
			fields["phone"] = addWorkerPhone
		}
		raw, err := client.CreateWorker(cmd.Context(), fields)
		if err != nil {
			return err
		}
		fmt.Printf("Worker %q added with id %v\n", addWorkerName, raw["id"])
		return nil
	},
}

var workersDeactivateCmd = &cobra.Command{
	Use:   "deactivate <id>",
	Short: "Mark a worker inactive (they remain in the full list)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid worker id %q", args[0])
		}

		_, client, err := newController()
		if err != nil {
			return err
		}
		if _, err := client.UpdateWorker(cmd.Context(), id, map[string]any{"active": false}); err != nil {
			return err
		}
		fmt.Printf("Worker %d deactivated\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(workersCmd)
	workersCmd.AddCommand(workersListCmd, workersAddCmd, workersDeactivateCmd)

	workersListCmd.Flags().BoolVar(&workerActiveOnly, "active", false, "Show only active workers")

	workersAddCmd.Flags().StringVar(&addWorkerName, "name", "", "Worker name (required)")
	workersAddCmd.Flags().StringVar(&addWorkerEmail, "email", "", "Worker email (required)")
	workersAddCmd.Flags().StringVar(&addWorkerRole, "role", "", "Worker role (required)")
	workersAddCmd.Flags().StringVar(&addWorkerPhone, "phone", "", "Phone number")
	_ = workersAddCmd.MarkFlagRequired("name")
	_ = workersAddCmd.MarkFlagRequired("email")
	_ = workersAddCmd.MarkFlagRequired("role")
}
