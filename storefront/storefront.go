// Package storefront assembles the session store, router, API client and
// cart store into a single client.
package storefront

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/jrsteele09/go-storefront-client/api"
	"github.com/jrsteele09/go-storefront-client/cart"
	"github.com/jrsteele09/go-storefront-client/catalog"
	"github.com/jrsteele09/go-storefront-client/internal/config"
	"github.com/jrsteele09/go-storefront-client/router"
	"github.com/jrsteele09/go-storefront-client/sessions"
	fakesessionrepo "github.com/jrsteele09/go-storefront-client/sessions/repofakes"
	"github.com/jrsteele09/go-storefront-client/sessions/storage/filestore"
	"github.com/jrsteele09/go-storefront-client/sessions/storage/redisstore"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Storefront struct {
	Sessions *sessions.Store
	Router   *router.Router
	API      *api.Client
	Cart     *cart.Store

	closer io.Closer

	catalogLock sync.RWMutex
	products    []catalog.Product
}

// New opens the configured session backend and wires everything over it.
func New(ctx context.Context, c config.Config) (*Storefront, error) {
	storage, closer, err := openStorage(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("[storefront.New] %w", err)
	}

	opts := []api.Option{
		api.WithHTTPClient(&http.Client{Timeout: c.GetHTTPTimeout()}),
		api.WithUserAgent(c.GetUserAgent()),
	}
	if c.IsDev() {
		opts = append(opts, api.WithTransportMiddleware(api.LoggingMiddleware))
	}
	sf := Assemble(c.GetAPIBaseURL(), storage, opts...)
	sf.closer = closer
	log.Debug().
		Str("api", c.GetAPIBaseURL()).
		Str("session_backend", string(c.GetStorageBackend())).
		Msg("storefront ready")
	return sf, nil
}

// Assemble wires the components over an already opened storage backend.
// When the API rejects the session the router is sent to the login page.
func Assemble(baseURL string, storage sessions.Storage, opts ...api.Option) *Storefront {
	sessionStore := sessions.NewStore(storage)
	rt := router.New(router.NewGuard(router.NewTable(router.DefaultRoutes()), sessionStore))

	expired := api.SessionExpiredFunc(func(ctx context.Context) {
		rt.Navigate(ctx, router.RouteLogin)
	})
	client := api.New(baseURL, sessionStore, append(opts, api.WithSessionExpiredHandler(expired))...)

	return &Storefront{
		Sessions: sessionStore,
		Router:   rt,
		API:      client,
		Cart:     cart.NewStore(client, sessionStore),
	}
}

func openStorage(ctx context.Context, c config.StorageConfig) (sessions.Storage, io.Closer, error) {
	switch c.GetStorageBackend() {
	case config.StorageBackendMemory:
		return fakesessionrepo.NewFakeStorage(), nil, nil
	case config.StorageBackendRedis:
		store, err := redisstore.Dial(ctx, c.GetRedisAddr(), c.GetRedisPassword(), c.GetRedisDB(), c.GetRedisKeyPrefix())
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil
	default:
		key, err := c.GetSessionEncryptionKey()
		if err != nil {
			return nil, nil, err
		}
		store, err := filestore.New(c.GetSessionFile(), key)
		if err != nil {
			return nil, nil, err
		}
		return store, nil, nil
	}
}

// Bootstrap loads the cart and the catalogue concurrently. A cart failure
// only shows up in the cart state; a catalogue failure is returned.
func (sf *Storefront) Bootstrap(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := sf.Cart.Refresh(gctx); err != nil {
			log.Warn().Err(err).Msg("cart not loaded during bootstrap")
		}
		return nil
	})
	g.Go(func() error {
		_, err := sf.LoadProducts(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("[Storefront.Bootstrap] %w", err)
	}
	return nil
}

// LoadProducts fetches the catalogue and keeps it for Products.
func (sf *Storefront) LoadProducts(ctx context.Context) ([]catalog.Product, error) {
	products, err := sf.API.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	sf.catalogLock.Lock()
	sf.products = products
	sf.catalogLock.Unlock()
	return products, nil
}

// Products returns the last loaded catalogue.
func (sf *Storefront) Products() []catalog.Product {
	sf.catalogLock.RLock()
	defer sf.catalogLock.RUnlock()
	return append([]catalog.Product(nil), sf.products...)
}

// Logout drops the session, empties the cart and goes to the login page.
func (sf *Storefront) Logout(ctx context.Context) (router.Navigation, error) {
	if err := sf.Sessions.Clear(ctx); err != nil {
		return router.Navigation{}, fmt.Errorf("[Storefront.Logout] %w", err)
	}
	if err := sf.Cart.Refresh(ctx); err != nil {
		log.Warn().Err(err).Msg("cart refresh after logout failed")
	}
	return sf.Router.Navigate(ctx, router.RouteLogin), nil
}

func (sf *Storefront) Close() error {
	if sf.closer == nil {
		return nil
	}
	return sf.closer.Close()
}
