// Command stratad is a demonstration HTTP server for the strata wire
// formats. It serves a single canonical payload as a JSON envelope on
// /payload and a sequence of length-prefixed SCB frames on /stream.
package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"flag"
	"net/http"
	"os"
	"syscall"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/oklog/run"

	"github.com/emagjby/strata/encoding"
	"github.com/emagjby/strata/hash"
	"github.com/emagjby/strata/value"
	"github.com/emagjby/strata/wire"
)

func main() {
	var (
		listenAddr = flag.String("listen", "127.0.0.1:3000", "listen address")
		debug      = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	var logger log.Logger
	logger = log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	if *debug {
		logger = level.NewFilter(logger, level.AllowDebug())
	} else {
		logger = level.NewFilter(logger, level.AllowInfo())
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/payload", payloadHandler(logger))
	mux.HandleFunc("/stream", streamHandler(logger))

	srv := &http.Server{
		Addr:              *listenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	var g run.Group
	g.Add(run.SignalHandler(context.Background(), syscall.SIGINT, syscall.SIGTERM))
	g.Add(func() error {
		level.Info(logger).Log("msg", "listening", "addr", *listenAddr)
		return srv.ListenAndServe()
	}, func(error) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	})

	err := g.Run()
	var sigErr run.SignalError
	if err != nil && !errors.As(err, &sigErr) && !errors.Is(err, http.ErrServerClosed) {
		level.Error(logger).Log("err", err)
		os.Exit(1)
	}
	level.Info(logger).Log("msg", "shutdown complete")
}

// demoValue is the payload served by /payload.
func demoValue() value.Value {
	return value.MapOf(value.E("answer", value.Int(42)))
}

// streamValues are the frames served by /stream, one value per frame.
func streamValues() []value.Value {
	return []value.Value{
		value.Int(42),
		value.String("hello"),
		demoValue(),
	}
}

type payloadEnvelope struct {
	BytesBase64 string `json:"bytes_base64"`
	HashHex     string `json:"hash_hex"`
}

func payloadHandler(logger log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		v := demoValue()
		scb, err := encoding.Encode(v)
		if err != nil {
			level.Error(logger).Log("handler", "payload", "err", err)
			http.Error(w, "encoding failed", http.StatusInternalServerError)

			return
		}

		envelope := payloadEnvelope{
			BytesBase64: base64.StdEncoding.EncodeToString(scb),
			HashHex:     hash.SumHex(scb),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(envelope); err != nil {
			level.Debug(logger).Log("handler", "payload", "err", err)
		}
	}
}

func streamHandler(logger log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		w.Header().Set("Content-Type", "application/strata")

		fw := wire.NewFrameWriter(w)
		flusher, _ := w.(http.Flusher)

		for _, v := range streamValues() {
			if err := fw.WriteValue(v); err != nil {
				level.Debug(logger).Log("handler", "stream", "err", err)
				return
			}
			if flusher != nil {
				flusher.Flush()
			}
		}
	}
}
