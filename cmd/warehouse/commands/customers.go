package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	addCustomerName    string
	addCustomerEmail   string
	addCustomerCompany string
	addCustomerPhone   string
	addCustomerAddress string
)

var customersCmd = &cobra.Command{
	Use:   "customers",
	Short: "Browse and manage customers",
}

var customersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List customers",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, _, err := newController()
		if err != nil {
			return err
		}
		if err := ctrl.RefreshCustomers(cmd.Context()); err != nil {
			return err
		}

		customers := ctrl.Store().Customers()
		if len(customers) == 0 {
			fmt.Println("No customers found.")
			return nil
		}

		w := newTable()
		fmt.Fprintln(w, "ID\tNAME\tCOMPANY\tEMAIL\tPHONE")
		for _, c := range customers {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Company, c.Email, c.Phone)
		}
		return w.Flush()
	},
}

var customersAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a customer",
	RunE: func(cmd *cobra.Command, args []string) error {
		if addCustomerName == "" {
			return fmt.Errorf("customer name is required")
		}

		_, client, err := newController()
		if err != nil {
			return err
		}
		fields := map[string]any{"name": addCustomerName}
		if addCustomerEmail != "" {
			fields["email"] = addCustomerEmail
		}
		if addCustomerCompany != "" {
			fields["company"] = addCustomerCompany
		}
		if addCustomerPhone != "" {
			fields["phone"] = addCustomerPhone
		}
		if addCustomerAddress != "" {
			fields["address"] = addCustomerAddress
		}

		raw, err := client.CreateCustomer(cmd.Context(), fields)
		if err != nil {
			return err
		}
		fmt.Printf("Customer %q added with id %v\n", addCustomerName, raw["id"])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(customersCmd)
	customersCmd.AddCommand(customersListCmd, customersAddCmd)

	customersAddCmd.Flags().StringVar(&addCustomerName, "name", "", "Customer name (required)")
	customersAddCmd.Flags().StringVar(&addCustomerEmail, "email", "", "Email")
	customersAddCmd.Flags().StringVar(&addCustomerCompany, "company", "", "Company")
	customersAddCmd.Flags().StringVar(&addCustomerPhone, "phone", "", "Phone")
	customersAddCmd.Flags().StringVar(&addCustomerAddress, "address", "", "Address")
	_ = customersAddCmd.MarkFlagRequired("name")
}
