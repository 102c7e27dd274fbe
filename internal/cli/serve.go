// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alvinbaena/pwd-strength/internal/api"
	"github.com/alvinbaena/pwd-strength/internal/config"
	"github.com/alvinbaena/pwd-strength/internal/strength"
	"github.com/gin-gonic/gin"
	"github.com/likexian/selfca"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the password evaluation API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serveCommand()
		},
	}
)

func init() {
	serveCmd.Flags().Bool("self-tls", false,
		"If the server should use a self-signed certificate when starting. The certificate is renewed on each server restart")
	serveCmd.Flags().String("tls-cert", "", "Path to the PEM encoded TLS certificate to be used by the server")
	serveCmd.Flags().String("tls-key", "", "Path to the PEM encoded TLS private key to be used by the server")
	serveCmd.Flags().Uint16P("port", "p", 8000, "Port to be used by the server")
	serveCmd.Flags().StringP("strategy", "s", string(strength.ModeRules), "Strategies backing the verdicts, rules, zxcvbn or hybrid")
	serveCmd.Flags().String("common-passwords", strength.DefaultCommonPasswordsFile, "File of known passwords, one per line, used by the hybrid strategy")
	serveCmd.Flags().Int64("cache-size", 10_000, "Number of verdicts kept in memory, 0 disables the cache")

	_ = viper.BindPFlag("SELF_TLS", serveCmd.Flags().Lookup("self-tls"))
	_ = viper.BindPFlag("TLS_CERT", serveCmd.Flags().Lookup("tls-cert"))
	_ = viper.BindPFlag("TLS_KEY", serveCmd.Flags().Lookup("tls-key"))
	_ = viper.BindPFlag("PORT", serveCmd.Flags().Lookup("port"))
	_ = viper.BindPFlag("STRATEGY", serveCmd.Flags().Lookup("strategy"))
	_ = viper.BindPFlag("CACHE_SIZE", serveCmd.Flags().Lookup("cache-size"))
	_ = viper.BindPFlag("COMMON_PASSWORDS", serveCmd.Flags().Lookup("common-passwords"))

	rootCmd.AddCommand(serveCmd)
}

func serveCommand() error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	if !verbose && !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := api.NewRouter(api.Options{
		Mode:           strength.Mode(cfg.Strategy),
		Settings:       strength.Settings{CommonPasswordsFile: cfg.CommonPasswords},
		CacheSize:      cfg.CacheSize,
		AllowedOrigins: cfg.AllowedOrigins,
	})
	if err != nil {
		return err
	}

	srvAddr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              srvAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := listen(srv, cfg); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("error starting server")
		}
	}()

	gracefulShutdown(srv)
	return nil
}

func listen(srv *http.Server, cfg config.Config) error {
	switch {
	case cfg.TLSCert != "" && cfg.TLSKey != "":
		log.Info().Msgf("starting TLS Server on address: %s", srv.Addr)
		// service connections with tls certs
		return srv.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
	case cfg.SelfTLS:
		log.Warn().Msgf("using auto self-signed certificate for TLS. This is not recommended for production. Please consider using your own certificates.")
		pair, err := selfSignedPair()
		if err != nil {
			return err
		}

		srv.TLSConfig = &tls.Config{
			Certificates: []tls.Certificate{pair},
		}

		log.Info().Msgf("starting TLS Server on address: %s", srv.Addr)
		// service connections with tls config, no need to pass files
		return srv.ListenAndServeTLS("", "")
	default:
		log.Info().Msgf("starting Server on address: %s", srv.Addr)
		return srv.ListenAndServe()
	}
}

func selfSignedPair() (tls.Certificate, error) {
	caConfig := selfca.Certificate{
		IsCA:      true,
		KeySize:   2048,
		NotBefore: time.Now(),
		// 30 day self-signed cert.
		NotAfter: time.Now().Add(time.Duration(30*24) * time.Hour),
	}

	// generating the certificate
	certificate, key, err := selfca.GenerateCertificate(caConfig)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("error generating auto self-signed certificate: %w", err)
	}

	pair, err := tls.X509KeyPair(
		pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: certificate}),
		pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)}),
	)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("error using auto self-signed certificate: %w", err)
	}
	return pair, nil
}

func gracefulShutdown(srv *http.Server) {
	// Wait for interrupt signal to gracefully shut down the server with
	// a timeout.
	quit := make(chan os.Signal, 1)
	// kill (no param) default send syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	// kill -9 is syscall. SIGKILL but can't be a catch, so don't need to add it
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("server Shutdown.")
	}
	log.Info().Msg("server exiting...")
}
