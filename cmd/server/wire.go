//go:build wireinject

package main

import (
	"github.com/google/wire"
	"gramgate.io/profile-api-gateway/app/domain"
	"gramgate.io/profile-api-gateway/app/infrastructure"
	"gramgate.io/profile-api-gateway/app/interfaces/http"
	"gramgate.io/profile-api-gateway/app/interfaces/http/routes"
)

func CreateApplication() (*Application, error) {
	wire.Build(
		infrastructure.InfrastructureProvider,
		domain.ServiceProvider,
		routes.RouteProvider,
		http.NewHttpServer,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}
