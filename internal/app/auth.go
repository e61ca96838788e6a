package app

import (
	"context"

	"adminconsole-go/internal/adapter/remote"
	"adminconsole-go/internal/domain/account"
	"adminconsole-go/internal/domain/notify"
	"adminconsole-go/internal/domain/validate"
)

// Login validates credentials, exchanges them with the remote and, on
// success, installs the session. Prior state survives any failure.
func (a *AppContext) Login(ctx context.Context, input validate.LoginInput) (account.Session, error) {
	if err := a.Validator.Struct(input); err != nil {
		return account.Session{}, err
	}

	resp, err := a.Remote.Login(ctx, input.Email, input.Password)
	if err != nil {
		a.notifyFailure("Sign-in failed", err)
		return account.Session{}, err
	}

	if err := a.Account.SetAuth(ctx, resp.User, resp.Token); err != nil {
		return account.Session{}, err
	}
	a.Remote.SetToken(resp.Token)

	a.Notifications.Push(notify.KindSuccess, "Welcome back", a.Account.ActorName())
	a.Logger.InfoTag("auth", "signed in", "user", a.Account.ActorName())
	return a.Account.Session(), nil
}

// Register creates an account and signs the new user in.
func (a *AppContext) Register(ctx context.Context, input validate.RegisterInput) (account.Session, error) {
	if err := a.Validator.Struct(input); err != nil {
		return account.Session{}, err
	}

	resp, err := a.Remote.Register(ctx, remote.RegisterRequest{
		Name:           input.Name,
		Email:          input.Email,
		Password:       input.Password,
		VerifyPassword: input.VerifyPassword,
		Phone: account.Phone{
			Country: input.Phone.Country,
			DDD:     input.Phone.DDD,
			Number:  input.Phone.Number,
		},
	})
	if err != nil {
		a.notifyFailure("Registration failed", err)
		return account.Session{}, err
	}

	if err := a.Account.SetAuth(ctx, resp.User, resp.Token); err != nil {
		return account.Session{}, err
	}
	a.Remote.SetToken(resp.Token)

	a.Notifications.Push(notify.KindSuccess, "Account created", a.Account.ActorName())
	return a.Account.Session(), nil
}

// UpdateProfile merges editable fields into the signed-in user and
// persists the session. Anonymous callers are rejected.
func (a *AppContext) UpdateProfile(ctx context.Context, input validate.UpdateProfileInput) (account.Session, error) {
	if err := a.Validator.Struct(input); err != nil {
		return account.Session{}, err
	}

	session := a.Account.Session()
	user := account.User{}
	if session.User != nil {
		user = *session.User
	}
	user.Name = input.Name
	user.Email = input.Email
	user.Phone = account.Phone{
		Country: input.Phone.Country,
		DDD:     input.Phone.DDD,
		Number:  input.Phone.Number,
	}
	user.Street = input.Street
	user.Complement = input.Complement
	user.District = input.District
	user.City = input.City
	user.State = input.State

	if err := a.Account.SetUser(ctx, &user); err != nil {
		a.notifyFailure("Could not update profile", err)
		return account.Session{}, err
	}

	a.Notifications.Push(notify.KindSuccess, "Profile updated", user.Name)
	return a.Account.Session(), nil
}

// RefreshSession trades the current token for a fresh one. The stored
// session is only replaced when the remote accepted the exchange.
func (a *AppContext) RefreshSession(ctx context.Context) (account.Session, error) {
	resp, err := a.Remote.RefreshSession(ctx)
	if err != nil {
		return account.Session{}, err
	}
	if err := a.Account.SetAuth(ctx, resp.User, resp.Token); err != nil {
		return account.Session{}, err
	}
	a.Remote.SetToken(resp.Token)
	return a.Account.Session(), nil
}

// Logout drops the session locally. No remote call is involved.
func (a *AppContext) Logout(ctx context.Context) error {
	if err := a.Account.ClearAuth(ctx); err != nil {
		return err
	}
	a.Remote.ClearToken()
	a.Logger.InfoTag("auth", "signed out")
	return nil
}
