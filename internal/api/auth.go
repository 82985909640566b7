package api

import (
	"encoding/json"
	"net/http"
	"time"

	"skylogger/dronelog/internal/auth"
	"skylogger/dronelog/internal/common"
	"skylogger/dronelog/internal/models/dtos"
)

// RegisterUser handles POST /api/v1/auth/register
func (h *Handlers) RegisterUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.RegisterUserReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		user, err := h.deps.Services.User.Register(r.Context(), &req)
		if err != nil {
			respondDomainError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "アカウントが正常に作成されました", user, http.StatusCreated)
	}
}

// Login handles POST /api/v1/auth/login
func (h *Handlers) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.LoginReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		resp, err := h.deps.Services.User.Login(r.Context(), &req)
		if err != nil {
			respondDomainError(w, initTime, err)
			return
		}

		if h.deps.Metrics != nil {
			h.deps.Metrics.SessionsActive.Inc()
		}
		common.RespondSuccess(w, initTime, "", resp)
	}
}

// Logout handles POST /api/v1/auth/logout
func (h *Handlers) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized", http.StatusUnauthorized)
			return
		}

		h.deps.Services.User.Logout(r.Context(), claims.SessionID())
		if h.deps.Metrics != nil {
			h.deps.Metrics.SessionsActive.Dec()
		}
		common.RespondSuccess(w, initTime, "ログアウトしました", nil)
	}
}

// GetProfile handles GET /api/v1/user/profile
func (h *Handlers) GetProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized", http.StatusUnauthorized)
			return
		}

		user, err := h.deps.Services.User.GetProfile(r.Context(), claims.UserID())
		if err != nil {
			respondDomainError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "", user)
	}
}

// UpdateProfile handles PUT /api/v1/user/profile
func (h *Handlers) UpdateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized", http.StatusUnauthorized)
			return
		}

		var req dtos.UpdateProfileReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		user, err := h.deps.Services.User.UpdateProfile(r.Context(), claims.UserID(), &req)
		if err != nil {
			respondDomainError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "プロフィールを更新しました", user)
	}
}
