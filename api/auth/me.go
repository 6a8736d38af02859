package auth

import (
	"net/http"

	"posadmin_server/lib"

	"github.com/MonkyMars/gecho"
)

// HandleMe reports the terminal behind the current session token.
func (arm *AuthRoutesManager) HandleMe(w http.ResponseWriter, r *http.Request) {
	claims, err := lib.ExtractClaims(r, arm.cfg.Auth.AccessTokenSecret)
	if err != nil {
		gecho.Unauthorized(w, gecho.WithMessage("Not logged in"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"terminal":   claims.Terminal,
			"expires_at": claims.Exp,
		}),
		gecho.Send(),
	)
}
