package auth

import (
	"encoding/json"
	"net/http"

	"github.com/hirestack/applicant-tracking/internal"
	"github.com/hirestack/applicant-tracking/internal/transport"
)

type Handler struct {
	*transport.BaseHandler
	Service       *Service
	CookieName    string
	SecureCookies bool
}

func NewHandler(service *Service, cookieName string, secureCookies bool) *Handler {
	return &Handler{
		BaseHandler:   transport.NewBaseHandler(nil),
		Service:       service,
		CookieName:    cookieName,
		SecureCookies: secureCookies,
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("Login: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, sess, err := h.Service.Login(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.CookieName,
		Value:    sess.ID,
		Path:     "/",
		MaxAge:   int(h.Service.SessionTTL().Seconds()),
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	h.WriteJSON(w, http.StatusOK, u)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.CookieName); err == nil {
		if err := h.Service.Logout(cookie.Value); err != nil {
			h.HandleServiceError(w, err)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	authUser, ok := internal.UserFromContext(r.Context())
	if !ok || authUser == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	u, err := h.Service.CurrentUser(authUser.ID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, u)
}

// AuthMiddleware resolves the session cookie and attaches the authenticated
// user to the request context. No valid session means 401 for everything
// behind it.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(h.CookieName)
		if err != nil {
			h.WriteError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		authUser, err := h.Service.Resolve(cookie.Value)
		if err != nil {
			h.HandleServiceError(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(internal.ContextWithUser(r.Context(), authUser)))
	})
}
