package main

import (
	"github.com/asarekings/mlops-platform/internal"
	"github.com/asarekings/mlops-platform/internal/infrastructure/controllers"
	"go.uber.org/dig"
)

func injectAppContext() *internal.AppInternal {
	container := dig.New()

	// Register all providers
	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	// Invoke to get AppInternal
	var appInternal *internal.AppInternal
	if err := container.Invoke(func(ai *internal.AppInternal) {
		appInternal = ai
	}); err != nil {
		panic(err)
	}

	return appInternal
}

func injectRunController() *controllers.RunController {
	container := dig.New()

	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	var runController *controllers.RunController
	if err := container.Invoke(func(rc *controllers.RunController) {
		runController = rc
	}); err != nil {
		panic(err)
	}

	return runController
}
