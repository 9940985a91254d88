// devproxy is a local HTTPS reverse proxy for testing the site with a secure
// origin (cookies, HX headers behind TLS-only browser features). It fronts
// the site process started separately with `go run .`.
package main

import (
	"crypto/tls"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"

	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	siteURL := getenv("SITE_URL", "http://127.0.0.1:8080")
	listenAddr := getenv("PROXY_ADDR", ":8443")
	certFile := getenv("CERT_FILE", "certs/cert.pem")
	keyFile := getenv("KEY_FILE", "certs/key.pem")

	if _, err := os.Stat(certFile); os.IsNotExist(err) {
		log.Fatal().Str("cert", certFile).Msg("TLS certificate not found; generate a local pair first")
	}

	target, err := url.Parse(siteURL)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid SITE_URL")
	}

	proxy := httputil.NewSingleHostReverseProxy(target)
	director := proxy.Director
	proxy.Director = func(req *http.Request) {
		director(req)
		req.Header.Set("X-Forwarded-Proto", "https")
		req.Header.Set("X-Forwarded-Host", req.Host)
	}

	srv := &http.Server{
		Addr:    listenAddr,
		Handler: proxy,
		TLSConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	}

	log.Info().Str("listen", listenAddr).Str("target", siteURL).Msg("devproxy running")
	if err := srv.ListenAndServeTLS(certFile, keyFile); err != nil {
		log.Fatal().Err(err).Msg("devproxy failed")
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
