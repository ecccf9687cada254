// cmd/server/main.go
package main

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/promptclash/promptclash/internal/config"
	"github.com/promptclash/promptclash/internal/handlers"
	"github.com/promptclash/promptclash/internal/middleware"
)

const releaseVersion = "0.1.0"

func newCmd(cfg *config.Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("PROMPTCLASH")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "promptclash",
		Short:         "A party card game server: one prompt per round, anonymous responses, a rotating judge.",
		Args:          cobra.ExactArgs(0),
		Version:       releaseVersion,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			return serve(cfg)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&cfg.Bind, "bind", "b", "0.0.0.0", "address to bind to (env: PROMPTCLASH_BIND)")
	fs.IntVarP(&cfg.Port, "port", "p", 3000, "port to listen on (env: PROMPTCLASH_PORT)")
	fs.StringVar(&cfg.PublicURL, "public-url", "", "externally reachable base URL, used in join QR codes (env: PROMPTCLASH_PUBLIC_URL)")
	fs.StringVar(&cfg.StaticDir, "static-dir", "public", "directory of client assets to serve (env: PROMPTCLASH_STATIC_DIR)")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "enable debug logging (env: PROMPTCLASH_VERBOSE)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("promptclash v{{.Version}}\n")

	return cmd
}

func serve(cfg *config.Config) error {
	logger := logrus.New()
	if cfg.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	srv := handlers.NewServer(logger)

	mux := httprouter.New()
	mux.GET("/ws", handlers.WSHandler(srv))
	mux.GET("/qr/:code", handlers.QRHandler(srv, cfg.PublicURL))
	mux.GET("/version", handlers.VersionHandler(releaseVersion))
	if cfg.StaticDir != "" {
		mux.NotFound = http.FileServer(http.Dir(cfg.StaticDir))
	}

	// No WriteTimeout: long-lived WebSocket connections must outlive any
	// fixed deadline.
	httpSrv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           middleware.Log(logger)(mux),
		IdleTimeout:       10 * time.Minute,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Infof("promptclash v%s listening on %s", releaseVersion, cfg.Addr())
	return httpSrv.ListenAndServe()
}

func main() {
	log.SetFlags(0)
	cfg := &config.Config{}
	cobra.CheckErr(newCmd(cfg).Execute())
}
