package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/linkvault/linkvault/internal/auth"
	"github.com/linkvault/linkvault/internal/domain"
	"github.com/linkvault/linkvault/internal/httpserver/deps"
	"github.com/linkvault/linkvault/internal/logger"
	"github.com/linkvault/linkvault/internal/utils"
)

// maxAvatarBytes caps the uploaded avatar size at 5 MB.
const maxAvatarBytes = 5 << 20

type authUser struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Avatar *string `json:"avatar"`
}

type authResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    authUser `json:"user"`
}

func publicUser(u *domain.User) authUser {
	out := authUser{ID: u.ID, Name: u.Name, Email: u.Email}
	if u.AvatarURL != "" {
		out.Avatar = &u.AvatarURL
	}
	return out
}

// Register creates an account. Accepts a JSON body, or multipart form
// data when an avatar image is attached.
func Register(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		in, avatarFile, err := parseRegisterRequest(r)
		if err != nil {
			respondError(w, d.Logger, err)
			return
		}
		if avatarFile != nil {
			defer utils.Close(avatarFile.file)
		}

		in.Normalize()
		if err := in.Validate(); err != nil {
			respondError(w, d.Logger, err)
			return
		}

		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			respondError(w, d.Logger, err)
			return
		}

		user := &domain.User{
			Name:         in.Name,
			Email:        in.Email,
			PasswordHash: hash,
		}

		// Best effort: a failed avatar upload does not block registration.
		if avatarFile != nil && d.Avatars != nil {
			asset, err := d.Avatars.Upload(ctx, avatarFile.name, avatarFile.file)
			if err != nil {
				d.Logger.Warn("avatar upload failed",
					logger.String("email", in.Email),
					logger.Error(err))
			} else {
				user.AvatarURL = asset.URL
				user.AvatarID = asset.ID
			}
		}

		if err := d.Store.CreateUser(ctx, user); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				respondJSON(w, http.StatusConflict,
					errorResponse{Message: "user already exists, please use another email"})
				return
			}
			respondError(w, d.Logger, err)
			return
		}

		token, err := d.Tokens.Issue(user.ID)
		if err != nil {
			respondError(w, d.Logger, err)
			return
		}

		d.Logger.Info("user registered", logger.String("user_id", user.ID))
		respondJSON(w, http.StatusCreated, authResponse{
			Message: "user registered successfully",
			Token:   token,
			User:    publicUser(user),
		})
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges email/password for a bearer token. A wrong email and a
// wrong password produce the same 401.
func Login(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req loginRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, d.Logger, err)
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))
		user, err := d.Store.UserByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				respondError(w, d.Logger, domain.ErrInvalidCredentials)
				return
			}
			respondError(w, d.Logger, err)
			return
		}

		if err := auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
			respondError(w, d.Logger, err)
			return
		}

		token, err := d.Tokens.Issue(user.ID)
		if err != nil {
			respondError(w, d.Logger, err)
			return
		}

		respondJSON(w, http.StatusOK, authResponse{
			Message: "login successful",
			Token:   token,
			User:    publicUser(user),
		})
	}
}

type avatarUpload struct {
	name string
	file multipart.File
}

// parseRegisterRequest reads the registration fields from either a JSON
// body or a multipart form with an optional "avatar" file part.
func parseRegisterRequest(r *http.Request) (domain.RegisterInput, *avatarUpload, error) {
	var in domain.RegisterInput

	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		if err := decodeJSON(r, &in); err != nil {
			return in, nil, err
		}
		return in, nil, nil
	}

	if err := r.ParseMultipartForm(maxAvatarBytes); err != nil {
		return in, nil, domain.Invalid("malformed multipart form (avatar limit is %d bytes)", maxAvatarBytes)
	}
	in.Name = r.FormValue("name")
	in.Email = r.FormValue("email")
	in.Password = r.FormValue("password")

	file, header, err := r.FormFile("avatar")
	if err != nil {
		// No avatar part is fine; registration proceeds without one.
		return in, nil, nil
	}
	if header.Size > maxAvatarBytes {
		_ = file.Close()
		return in, nil, domain.Invalid("avatar exceeds %d bytes", maxAvatarBytes)
	}
	return in, &avatarUpload{name: header.Filename, file: file}, nil
}
