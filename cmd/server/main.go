package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/RifatHossaiN47/cuet-foodexpress-backend/app/routes"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/internal/server"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "foodexpress",
	Short: "FoodExpress restaurant API server",
}

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"start", "run"},
	Short:   "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start()
	},
}

var routeListCmd = &cobra.Command{
	Use:     "route:list",
	Aliases: []string{"routes"},
	Short:   "Print the registered routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		noop := func(next http.Handler) http.Handler { return next }
		r := server.NewRouter(routes.Controllers{}, routes.Guards{
			Authenticate: noop,
			RequireAdmin: noop,
		})

		fmt.Printf("%-8s  %-40s  %s\n", "METHOD", "PATH", "NAME")
		for _, rt := range r.Routes() {
			fmt.Printf("%-8s  %-40s  %s\n", rt.Method, rt.Path, rt.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)
}
