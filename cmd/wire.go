package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/viper"

	configadapter "github.com/apexworks/pitwall/internal/adapters/config"
	"github.com/apexworks/pitwall/internal/adapters/demo"
	"github.com/apexworks/pitwall/internal/adapters/remote"
	"github.com/apexworks/pitwall/internal/application"
	"github.com/apexworks/pitwall/internal/ports"
)

type app struct {
	cfg     configadapter.Config
	browser *application.Browser
	clock   ports.Clock
}

func wireApp() (*app, error) {
	cfg, err := configadapter.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire config: %w", err)
	}

	httpClient := http.DefaultClient
	remoteSource := &remote.Source{
		BaseURL:        cfg.Remote.BaseURL,
		HTTPClient:     httpClient,
		RequestTimeout: 30 * time.Second,
	}
	demoSource := &demo.Source{
		BaseURL:        cfg.Demo.BaseURL,
		HTTPClient:     httpClient,
		RequestTimeout: 30 * time.Second,
	}

	resolver := application.NewResolver(remoteSource, demoSource, application.ResolverOptions{
		SkipRemote:   cfg.Source.Force == configadapter.ForceDemo,
		ForceArchive: cfg.Source.Force == configadapter.ForceArchive,
	})

	return &app{
		cfg:     cfg,
		browser: application.NewBrowser(resolver),
		clock:   ports.SystemClock{},
	}, nil
}
