package main

import (
	"context"
	"flag"
	"io"

	"github.com/diwise/schema-markup/internal/pkg/infrastructure/storage"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
)

type FlagType int
type FlagMap map[FlagType]string

const (
	listenAddress FlagType = iota
	servicePort

	configPath
	opaPath
	notifierEndpoint

	logFormat
)

type AppConfig struct {
	renderConfig io.ReadCloser
	opaConfig    io.ReadCloser
	store        storage.Store
}

func parseExternalConfig(ctx context.Context, flags FlagMap) (context.Context, FlagMap) {

	// Allow environment variables to override certain defaults
	envOrDef := env.GetVariableOrDefault
	flags[servicePort] = envOrDef(ctx, "SERVICE_PORT", flags[servicePort])
	flags[configPath] = envOrDef(ctx, "RENDER_CONFIG_PATH", flags[configPath])
	flags[opaPath] = envOrDef(ctx, "POLICY_PATH", flags[opaPath])
	flags[notifierEndpoint] = envOrDef(ctx, "NOTIFIER_ENDPOINT", flags[notifierEndpoint])

	apply := func(f FlagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	// Allow command line arguments to override defaults and environment variables
	flag.Func("config", "path to the render profile", apply(configPath))
	flag.Func("policies", "an authorization policy file", apply(opaPath))
	flag.Func("notifier", "endpoint that receives entity notifications", apply(notifierEndpoint))
	flag.Parse()

	return ctx, flags
}

func defaultFlags() FlagMap {
	return FlagMap{
		listenAddress: "",
		servicePort:   "8080",

		configPath: "/opt/diwise/config/schema-markup.yaml",
		opaPath:    "/opt/diwise/config/authz.rego",

		logFormat: "json",
	}
}
