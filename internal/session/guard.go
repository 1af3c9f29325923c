// ABOUTME: Per-page authentication guard for the admin console
// ABOUTME: Loading to Authenticated/Unauthenticated state machine with server verification

package session

import (
	"context"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"github.com/mylikerahul/acasa-adminctl/internal/token"
)

// State is the guard's outcome for one check
type State int

const (
	StateLoading State = iota
	StateAuthenticated
	StateUnauthenticated
)

// Reason explains an Unauthenticated outcome. Exactly one reason is
// reported per failed check.
type Reason string

const (
	ReasonNone             Reason = ""
	ReasonNoToken          Reason = "no admin session, please log in"
	ReasonExpired          Reason = "session expired, please log in again"
	ReasonWrongSessionType Reason = "a non-admin session is active, please log in as an admin"
	ReasonNotAdmin         Reason = "this account is not an admin"
	ReasonRejected         Reason = "session rejected by server, please log in again"
)

// Result carries the guard's decision and, when authenticated, the claims
type Result struct {
	State  State
	Reason Reason
	Claims *token.Claims
}

// Verifier confirms a token server-side. *client.Client satisfies it.
type Verifier interface {
	VerifyToken(ctx context.Context) error
}

// Guard validates the stored admin session before a screen acts on it.
// Every admin screen runs the same check; concurrent checks coalesce into
// a single verification call.
type Guard struct {
	store  *token.Store
	verify Verifier
	group  singleflight.Group
}

// NewGuard creates a session guard over the token store and verifier
func NewGuard(store *token.Store, verify Verifier) *Guard {
	return &Guard{store: store, verify: verify}
}

// Check runs the full authentication check. Local failures (missing,
// expired, or non-admin tokens) short-circuit without a network call; a
// locally valid token is then confirmed with the backend. On any failure
// the token store is cleared before the result is returned.
func (g *Guard) Check(ctx context.Context) Result {
	v, _, _ := g.group.Do("check", func() (any, error) {
		return g.check(ctx), nil
	})
	return v.(Result)
}

func (g *Guard) check(ctx context.Context) Result {
	switch g.store.SessionType() {
	case token.SessionNone:
		return g.deny(ReasonNoToken)
	case token.SessionUser:
		return g.deny(ReasonWrongSessionType)
	}

	tok := g.store.AdminToken()
	claims, err := token.DecodeClaims(tok)
	if err != nil {
		return g.deny(ReasonExpired)
	}
	if !g.store.IsAdminTokenValid() {
		return g.deny(ReasonExpired)
	}
	if claims.UserType != "admin" {
		return g.deny(ReasonNotAdmin)
	}

	if err := g.verify.VerifyToken(ctx); err != nil {
		slog.Debug("server-side token verification failed", "error", err)
		return g.deny(ReasonRejected)
	}

	return Result{State: StateAuthenticated, Claims: claims}
}

// deny clears every stored session and reports the single failure reason
func (g *Guard) deny(reason Reason) Result {
	g.store.LogoutAll()
	return Result{State: StateUnauthenticated, Reason: reason}
}
