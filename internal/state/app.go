// Package state composes the individual slices into one constructed app
// object. Every cross-slice effect (keeping the profile in sync with the
// session, gating checkout) goes through here; slices never mutate each
// other directly.
package state

import (
	"context"

	"store499_app/internal/addresses"
	"store499_app/internal/api"
	"store499_app/internal/cart"
	"store499_app/internal/catalog"
	"store499_app/internal/checkout"
	"store499_app/internal/kv"
	"store499_app/internal/models"
	"store499_app/internal/profile"
	"store499_app/internal/session"
)

type App struct {
	Session *session.Store
	Profile *profile.Store
	Catalog *catalog.Cache
	Cart    *cart.State
	Stores  *addresses.Store
}

func New(client *api.Client, persist kv.Store) *App {
	sess := session.New(client, persist)
	return &App{
		Session: sess,
		Profile: profile.New(client, sess),
		Catalog: catalog.New(client),
		Cart:    cart.New(),
		Stores:  addresses.New(client, sess),
	}
}

// Init restores a persisted session at process start and brings the profile
// slice in line with it.
func (a *App) Init(ctx context.Context) error {
	if err := a.Session.InitFromPersistence(ctx); err != nil {
		return err
	}
	if user := a.Session.Current(); user != nil {
		a.Profile.SetUser(*user)
	}
	return nil
}

// Login signs in and syncs the profile slice.
func (a *App) Login(ctx context.Context, email, password string) (models.User, error) {
	user, err := a.Session.Login(ctx, email, password)
	if err != nil {
		return models.User{}, err
	}
	a.Profile.SetUser(user)
	return user, nil
}

// Register creates an account, signs it in and syncs the profile slice.
func (a *App) Register(ctx context.Context, input api.RegisterInput) (models.User, error) {
	user, err := a.Session.Register(ctx, input)
	if err != nil {
		return models.User{}, err
	}
	a.Profile.SetUser(user)
	return user, nil
}

// Logout clears the session and profile. The cart is deliberately kept; it
// belongs to the device, not the account.
func (a *App) Logout(ctx context.Context) {
	a.Session.Logout(ctx)
	a.Profile.Reset()
}

// ProceedToCheckout re-checks the gate at the moment of the tap, then
// returns the order summary for the current cart.
func (a *App) ProceedToCheckout() (checkout.OrderSummary, error) {
	if err := checkout.CanCheckout(a.Session); err != nil {
		return checkout.OrderSummary{}, err
	}
	return checkout.Summarize(a.Cart.TotalPrice()), nil
}
