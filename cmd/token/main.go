// Command token mints a bearer token for the go-panel API.
//
// It reads the signing key and issuer from the usual configuration sources
// and prints the signed token to stdout:
//
//	token -user 1 -admin -token-sign-key secret -token-issuer go-panel
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-panel/internal/config"
	"github.com/MKhiriev/go-panel/internal/logger"
	"github.com/MKhiriev/go-panel/internal/service"
)

const defaultTokenDuration = time.Hour

func main() {
	userID := flag.Int64("user", 0, "User ID written to the token subject")
	rootAdmin := flag.Bool("admin", false, "Grant root administrator privileges")

	log := logger.NewLoggerTo("go-panel-token", os.Stderr)
	cfg, err := config.GetTokenConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}

	token, err := service.NewAuthService(cfg.App, log).CreateToken(context.Background(), *userID, *rootAdmin)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating token")
	}

	log.Info().
		Int64("user_id", token.UserID).
		Bool("root_admin", token.RootAdmin).
		Dur("expires_in", cfg.App.TokenDuration).
		Msg("token created")

	fmt.Println(token.SignedString)
}
