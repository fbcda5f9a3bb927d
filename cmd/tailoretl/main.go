package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tailor-etl/internal/config"
	"github.com/tailor-etl/internal/consolidate"
	"github.com/tailor-etl/internal/db"
	"github.com/tailor-etl/internal/debug"
	"github.com/tailor-etl/internal/loader"
	"github.com/tailor-etl/internal/report"
	"github.com/tailor-etl/internal/source"
	"github.com/tailor-etl/internal/tables"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Fatalf("Failed to load environment: %v", err)
	}

	rootCmd := &cobra.Command{
		Use:   "tailoretl",
		Short: "Tailoring shop customer consolidation pipeline",
		Long:  `Consolidates the denormalized spreadsheet export into customer, order and measurement tables, loads them into a database, and runs reports over them`,
	}

	rootCmd.AddCommand(createConsolidateCmd())
	rootCmd.AddCommand(createLoadCmd())
	rootCmd.AddCommand(createReportCmd())
	rootCmd.AddCommand(createPingCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// createConsolidateCmd creates the consolidate subcommand
func createConsolidateCmd() *cobra.Command {
	var sourcePath string
	var outDir string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "consolidate",
		Short: "Consolidate the raw export into the normalized tables",
		Run: func(cmd *cobra.Command, args []string) {
			defer debug.Timing(verbose, "consolidation run")()

			debug.Output(verbose, "Reading source %s", sourcePath)
			records, err := source.Read(sourcePath)
			if err != nil {
				log.Fatalf("Failed to read source: %v", err)
			}

			result := consolidate.Run(records)
			debug.Output(verbose, "Writing consolidated tables to %s", outDir)
			if err := tables.WriteAll(outDir, result); err != nil {
				log.Fatalf("Failed to write consolidated tables: %v", err)
			}
		},
	}

	cmd.Flags().StringVar(&sourcePath, "source", "Database.csv", "Raw export file (.csv or .xlsx)")
	cmd.Flags().StringVar(&outDir, "out", "consolidated-data", "Output directory for consolidated tables")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Print stage timings")
	return cmd
}

// createLoadCmd creates the load subcommand
func createLoadCmd() *cobra.Command {
	var dataDir string
	var driver string

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load the consolidated tables into the database",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := config.DatabaseConfigFromEnv()
			if driver != "" {
				cfg.Driver = driver
			}

			conn, err := db.NewConnection(cfg)
			if err != nil {
				log.Fatalf("Failed to connect to database: %v", err)
			}
			defer conn.Close()

			if err := loader.New(conn).Load(dataDir); err != nil {
				log.Fatalf("Failed to load consolidated tables: %v", err)
			}
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", "consolidated-data", "Directory holding the consolidated tables")
	cmd.Flags().StringVar(&driver, "driver", "", "Database driver override (postgres or sqlite)")
	return cmd
}

// createReportCmd creates the report subcommand and its report variants
func createReportCmd() *cobra.Command {
	var dataDir string
	var queryDir string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Run reports over the consolidated tables",
	}
	cmd.PersistentFlags().StringVar(&dataDir, "data", "consolidated-data", "Directory holding the consolidated tables")

	duplicatesCmd := &cobra.Command{
		Use:   "duplicates",
		Short: "List customers sharing a phone number or email",
		Run: func(cmd *cobra.Command, args []string) {
			customers, err := tables.ReadCustomers(customersPath(dataDir))
			if err != nil {
				log.Fatalf("Failed to read customers: %v", err)
			}
			report.PrintDuplicates(os.Stdout, customers)
		},
	}

	ordersCmd := &cobra.Command{
		Use:   "orders",
		Short: "Write per-customer order counts",
		Run: func(cmd *cobra.Command, args []string) {
			orders, err := tables.ReadOrders(ordersPath(dataDir))
			if err != nil {
				log.Fatalf("Failed to read orders: %v", err)
			}
			counts := report.CountOrders(orders)
			path, err := report.WriteOrderCounts(queryDir, counts)
			if err != nil {
				log.Fatalf("Failed to write order counts: %v", err)
			}
			fmt.Printf("Order counts for %d customers written to %s\n", len(counts), path)
		},
	}
	ordersCmd.Flags().StringVar(&queryDir, "queries", "queries", "Output directory for query results")

	orphansCmd := &cobra.Command{
		Use:   "orphans",
		Short: "List orders with no resolved customer",
		Run: func(cmd *cobra.Command, args []string) {
			orders, err := tables.ReadOrders(ordersPath(dataDir))
			if err != nil {
				log.Fatalf("Failed to read orders: %v", err)
			}
			report.PrintOrphans(os.Stdout, orders)
		},
	}

	cmd.AddCommand(duplicatesCmd)
	cmd.AddCommand(ordersCmd)
	cmd.AddCommand(orphansCmd)
	return cmd
}

// createPingCmd creates a command to test database connectivity
func createPingCmd() *cobra.Command {
	var driver string

	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Test database connectivity",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := config.DatabaseConfigFromEnv()
			if driver != "" {
				cfg.Driver = driver
			}

			conn, err := db.NewConnection(cfg)
			if err != nil {
				log.Fatalf("Failed to connect to database: %v", err)
			}
			defer conn.Close()
			fmt.Println("Database connection successful!")

			var count int
			if err := conn.DB.QueryRow("SELECT COUNT(*) FROM Customer").Scan(&count); err != nil {
				log.Printf("Error counting Customer records: %v", err)
			} else {
				fmt.Printf("Customers loaded: %d\n", count)
			}
			if err := conn.DB.QueryRow("SELECT COUNT(*) FROM Orders").Scan(&count); err != nil {
				log.Printf("Error counting Orders records: %v", err)
			} else {
				fmt.Printf("Orders loaded: %d\n", count)
			}
		},
	}

	cmd.Flags().StringVar(&driver, "driver", "", "Database driver override (postgres or sqlite)")
	return cmd
}

func customersPath(dataDir string) string {
	return filepath.Join(dataDir, tables.CustomersFile)
}

func ordersPath(dataDir string) string {
	return filepath.Join(dataDir, tables.OrdersFile)
}
