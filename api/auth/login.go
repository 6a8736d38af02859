package auth

import (
	"net/http"

	"posadmin_server/lib"
	"posadmin_server/structs"

	"github.com/MonkyMars/gecho"
)

func (arm *AuthRoutesManager) HandleLogin(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.LoginRequest](r)
	if err != nil {
		arm.logger.Warn("Failed to extract login body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check your login information and try again"), gecho.Send())
		return
	}

	token, expiresAt, err := arm.authService.Login(body.Terminal, body.Pin)
	if err != nil {
		gecho.Unauthorized(w, gecho.WithMessage("Invalid credentials"), gecho.Send())
		return
	}

	lib.SetCookie(lib.AccessCookieName, token, expiresAt, w)

	gecho.Success(w,
		gecho.WithMessage("Login successful"),
		gecho.WithData(map[string]any{
			"terminal":   body.Terminal,
			"expires_at": expiresAt,
		}),
		gecho.Send(),
	)
}
