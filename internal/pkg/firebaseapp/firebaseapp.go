// Package firebaseapp holds the process-wide Firebase app and the clients
// derived from it. Each is created on first use and reused afterwards.
package firebaseapp

import (
	"context"
	"fmt"
	"sync"

	fs "cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

type Config struct {
	ProjectID       string
	CredentialsFile string
}

var (
	mu        sync.Mutex
	app       *firebase.App
	firestore *fs.Client
	authc     *auth.Client
)

// App initializes the Firebase app once. Later calls return the same
// instance and ignore cfg.
func App(ctx context.Context, cfg Config) (*firebase.App, error) {
	mu.Lock()
	defer mu.Unlock()
	return appLocked(ctx, cfg)
}

func appLocked(ctx context.Context, cfg Config) (*firebase.App, error) {
	if app != nil {
		return app, nil
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	var fbCfg *firebase.Config
	if cfg.ProjectID != "" {
		fbCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	a, err := firebase.NewApp(ctx, fbCfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase.NewApp: %w", err)
	}
	app = a
	return app, nil
}

func Firestore(ctx context.Context, cfg Config) (*fs.Client, error) {
	mu.Lock()
	defer mu.Unlock()

	if firestore != nil {
		return firestore, nil
	}
	a, err := appLocked(ctx, cfg)
	if err != nil {
		return nil, err
	}
	c, err := a.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("app.Firestore: %w", err)
	}
	firestore = c
	return firestore, nil
}

func Auth(ctx context.Context, cfg Config) (*auth.Client, error) {
	mu.Lock()
	defer mu.Unlock()

	if authc != nil {
		return authc, nil
	}
	a, err := appLocked(ctx, cfg)
	if err != nil {
		return nil, err
	}
	c, err := a.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("app.Auth: %w", err)
	}
	authc = c
	return authc, nil
}

// Close releases the Firestore client if one was created.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if firestore == nil {
		return nil
	}
	err := firestore.Close()
	firestore = nil
	return err
}
