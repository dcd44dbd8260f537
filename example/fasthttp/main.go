// FILE: lixenwraith/daylog/example/fasthttp/main.go
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/lixenwraith/daylog"
	"github.com/lixenwraith/daylog/compat"
	"github.com/valyala/fasthttp"
)

func main() {
	cfg := daylog.DefaultConfig()
	cfg.Directory = "/var/log/fasthttp"
	cfg.TypeLabel = "http"
	cfg.Sanitize = daylog.SanitizeTxt

	builder := compat.NewBuilder().WithConfig(cfg)
	defer builder.Shutdown()

	fasthttpAdapter, err := builder.BuildFastHTTP(
		compat.WithDefaultLevel(compat.LevelInfo),
		compat.WithLevelDetector(customLevelDetector),
	)
	if err != nil {
		panic(err)
	}

	server := &fasthttp.Server{
		Handler: requestHandler,
		Logger:  fasthttpAdapter,

		Name:              "MyServer",
		Concurrency:       fasthttp.DefaultConcurrency,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		TCPKeepalive:      true,
		ReduceMemoryUsage: true,
	}

	fmt.Println("Starting server on :8080")
	if err := server.ListenAndServe(":8080"); err != nil {
		panic(err)
	}
}

func requestHandler(ctx *fasthttp.RequestCtx) {
	ctx.SetContentType("text/plain")
	fmt.Fprintf(ctx, "Hello, world! Path: %s\n", ctx.Path())
}

func customLevelDetector(msg string) string {
	if strings.Contains(msg, "connection cannot be served") {
		return compat.LevelWarn
	}
	if strings.Contains(msg, "error when serving connection") {
		return compat.LevelError
	}
	return compat.DetectLogLevel(msg)
}
