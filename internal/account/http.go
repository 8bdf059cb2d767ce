package account

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ImirStore/pkg/kit"
)

const (
	maxBodyBytes = 1 << 20

	// Guest sessions live long enough for a cart to survive a return
	// visit; account sessions are shorter lived.
	guestSessionTTL = 30 * 24 * time.Hour
	userSessionTTL  = 24 * time.Hour

	minPasswordLen = 8
)

type Server struct {
	Log   *zap.Logger
	Store UserStore
	JWT   *TokenMaker
}

// Handlers are exported individually so the composition layer can attach
// per-route rate limits.
func (s *Server) SessionHandler() http.HandlerFunc  { return s.handleSession }
func (s *Server) RegisterHandler() http.HandlerFunc { return s.handleRegister }
func (s *Server) LoginHandler() http.HandlerFunc    { return s.handleLogin }
func (s *Server) WhoAmIHandler() http.HandlerFunc   { return s.handleWhoAmI }

type sessionResp struct {
	Token string `json:"token"`
}

// handleSession issues an anonymous browsing session. Every cart and
// wishlist hangs off one of these.
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	sid := "s_" + uuid.NewString()

	tok, err := s.JWT.New(sid, "", RoleGuest, guestSessionTTL)
	if err != nil {
		s.Log.Error("guest token issue", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	kit.WriteJSON(w, http.StatusCreated, sessionResp{Token: tok})
}

type credentialsReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeCredentials(w, r)
	if !ok {
		return
	}
	if len(req.Password) < minPasswordLen {
		kit.WriteError(w, r, http.StatusBadRequest, "password too short", map[string]any{"min_len": minPasswordLen})
		return
	}

	id := "u_" + uuid.NewString()

	if err := s.Store.Create(r.Context(), req.Email, req.Password, id); err != nil {
		if err == ErrEmailExists {
			kit.WriteError(w, r, http.StatusConflict, err.Error(), nil)
			return
		}
		s.Log.Error("create user", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

type loginResp struct {
	AccessToken string `json:"access_token"`
}

// handleLogin exchanges credentials for a session token. The session id is
// the user id, so a returning customer gets the same cart back.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeCredentials(w, r)
	if !ok {
		return
	}

	u, err := s.Store.Verify(r.Context(), req.Email, req.Password)
	if err != nil {
		kit.WriteError(w, r, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}

	tok, err := s.JWT.New(u.ID, u.Email, RoleUser, userSessionTTL)
	if err != nil {
		s.Log.Error("token issue", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	kit.WriteJSON(w, http.StatusOK, loginResp{AccessToken: tok})
}

func (s *Server) handleWhoAmI(w http.ResponseWriter, r *http.Request) {
	authz := r.Header.Get("Authorization")
	if !strings.HasPrefix(authz, "Bearer ") {
		kit.WriteError(w, r, http.StatusUnauthorized, "missing token", nil)
		return
	}

	claims, err := s.JWT.Parse(strings.TrimPrefix(authz, "Bearer "))
	if err != nil {
		kit.WriteError(w, r, http.StatusUnauthorized, "invalid token", nil)
		return
	}

	kit.WriteJSON(w, http.StatusOK, map[string]any{
		"session_id": claims.SessionID,
		"email":      claims.Email,
		"role":       claims.Role,
	})
}

func (s *Server) decodeCredentials(w http.ResponseWriter, r *http.Request) (credentialsReq, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req credentialsReq
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return credentialsReq{}, false
	}

	req.Email = normalizeEmail(req.Email)
	req.Password = strings.TrimSpace(req.Password)

	if req.Email == "" || req.Password == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "email/password required", nil)
		return credentialsReq{}, false
	}

	return req, true
}
