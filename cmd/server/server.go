package main

import (
	"context"

	"github.com/mileusna/crontab"
	"gramgate.io/profile-api-gateway/app/domain/healthcheck"
	"gramgate.io/profile-api-gateway/app/infrastructure/upstream"
	"gramgate.io/profile-api-gateway/app/interfaces/http"
	"gramgate.io/profile-api-gateway/app/utils/logger"
	"gramgate.io/profile-api-gateway/config/environment_variables"
)

type Application struct {
	HttpServer  *http.HttpServer
	Healthcheck *healthcheck.HealthcheckCrontabService
}

func (application *Application) Start() {
	if err := application.HttpServer.Run(); err != nil {
		panic(err)
	}
}

func init() {
	environment_variables.EnvironmentVariables.LoadFromEnv()
	upstream.Init()
}

func main() {
	if err := environment_variables.EnvironmentVariables.ValidateUpstreamCredentials(); err != nil {
		logger.GetLogger().Fatalf("refusing to start: %v", err)
	}
	application, err := CreateApplication()
	if err != nil {
		panic(err)
	}
	ctab := crontab.New()
	application.Healthcheck.Start(context.Background(), ctab)
	application.Start()
}
