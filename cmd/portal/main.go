package main

import (
	"RequestPortal/internal/bootstrap"
	pkg "RequestPortal/pkg/routes"

	"go.uber.org/fx"
)

func main() {
	bootstrap.Loadenv()
	app := fx.New(
		pkg.EchoModules,
	)

	app.Run()
}
