package auth

import (
	"net/http"

	"posadmin_server/lib"

	"github.com/MonkyMars/gecho"
)

func (arm *AuthRoutesManager) HandleLogout(w http.ResponseWriter, r *http.Request) {
	_, err := lib.GetCookieValue(lib.AccessCookieName, r)
	if err != nil {
		gecho.Success(w,
			gecho.WithMessage("No access token found"),
			gecho.Send(),
		)
		return
	}

	lib.ClearCookie(lib.AccessCookieName, w)

	gecho.Success(w,
		gecho.WithMessage("Logged out successfully"),
		gecho.Send(),
	)
}
