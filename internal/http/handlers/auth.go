package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"foundation/internal/auth"
	"foundation/internal/domain"
	"foundation/internal/middleware"
	"foundation/internal/validate"
)

type userProfileDTO struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func profileDTO(u *domain.User) userProfileDTO {
	return userProfileDTO{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// Signup creates a new account. Username uniqueness is checked against the
// store first and again enforced by the unique index on insert; either way
// the conflict comes back as a field error.
func (a *App) Signup(w http.ResponseWriter, r *http.Request) {
	var req validate.SignupInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	fields := validate.Signup(&req)
	if fields.Valid() {
		taken, err := a.Users.UsernameTaken(r.Context(), req.Username)
		if err != nil {
			a.storeError(w, r, "check username", err)
			return
		}
		if taken {
			fields.Add("username", "this username is already taken")
		}
	}
	if !fields.Valid() {
		a.fieldErrors(w, fields)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		a.storeError(w, r, "hash password", err)
		return
	}
	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		PasswordHash: hash,
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	}
	if err := a.Users.Create(r.Context(), user); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			fields.Add("username", "this username is already taken")
			a.fieldErrors(w, fields)
			return
		}
		a.storeError(w, r, "create user", err)
		return
	}
	a.json(w, http.StatusCreated, map[string]any{
		"message": "account created, you can now log in",
		"user":    profileDTO(user),
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// authenticate resolves a username/password pair to a user. Unknown
// usernames and wrong passwords both come back as ErrInvalidCredentials,
// with a throwaway bcrypt compare on the unknown-user path so the two cost
// the same.
func (a *App) authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := a.Users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			auth.BurnCompare(password)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// Login authenticates a username/password pair and establishes a session.
// Unknown usernames and wrong passwords produce the same generic outcome.
func (a *App) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	user, err := a.authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			a.error(w, http.StatusUnauthorized, "invalid_credentials", "invalid username or password")
			return
		}
		a.storeError(w, r, "lookup user", err)
		return
	}

	token, err := auth.GenerateToken(user.ID, []byte(a.Cfg.JWTSecret), a.Cfg.SessionTTL)
	if err != nil {
		a.storeError(w, r, "sign token", err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(a.Cfg.SessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   a.Cfg.AppEnv != "development",
	})
	a.json(w, http.StatusOK, map[string]any{
		"message": "welcome back, " + user.Username + "!",
		"token":   token,
		"user":    profileDTO(user),
	})
}

// Logout terminates the session by expiring the cookie. Calling it without
// an active session is a no-op, not an error.
func (a *App) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   a.Cfg.AppEnv != "development",
	})
	a.json(w, http.StatusOK, map[string]string{"message": "you have been logged out"})
}

// Me returns the authenticated user's profile.
func (a *App) Me(w http.ResponseWriter, r *http.Request) {
	user, err := a.Users.GetByID(r.Context(), a.currentUserID(r))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "user not found")
			return
		}
		a.storeError(w, r, "lookup user", err)
		return
	}
	a.json(w, http.StatusOK, profileDTO(user))
}
