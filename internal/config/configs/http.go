package configs

// HTTP defines configuration for the HTTP server.
type HTTP struct {
	// Port is the TCP port the server listens on.
	Port uint16 `env:"PORT" envDefault:"8080"`
}
