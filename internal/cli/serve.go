package cli

import (
	"github.com/spf13/cobra"

	"tsteg/internal/server"
)

func ServeAppCommand() *cobra.Command {
	var port string

	command := &cobra.Command{
		Use:     "serve",
		Short:   "Serve an API to perform keyed adaptive steganography over the web",
		Example: "tsteg serve --port 8888",
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.StartServer(port)
		},
	}

	command.Flags().StringVar(&port, "port", "8080", "Port on which to start the server")

	return command
}
