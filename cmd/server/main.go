package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/lucasferreira/fluentia/internal/auth"
	"github.com/lucasferreira/fluentia/internal/config"
	"github.com/lucasferreira/fluentia/internal/container"
	"github.com/lucasferreira/fluentia/internal/router"
)

func main() {
	config.Init()
	auth.Init()

	c := container.New()
	r := router.New(router.RouterConfig{
		AuthHandler:    c.AuthHandler,
		CatalogHandler: c.CatalogContainer.Handler,
		QuizHandler:    c.QuizContainer.Handler,
		LearnHandler:   c.LearnContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		adapter := httpadapter.New(r)
		lambda.Start(adapter.ProxyWithContext)
		return
	}

	addr := config.EnvOr("HTTP_ADDR", ":8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("listening on %s", addr)
	log.Fatal(srv.ListenAndServe())
}
