package handler

import (
	"net/http"

	"github.com/opendiscuss/forum/internal/domain"
	"github.com/opendiscuss/forum/internal/utils"
)

type registerRequest struct {
	Username string `validate:"required" json:"username"`
	Password string `validate:"required" json:"password"`
	Fullname string `validate:"required" json:"fullname"`
}

type loginRequest struct {
	Username string `validate:"required" json:"username"`
	Password string `validate:"required" json:"password"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var body registerRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	added, err := h.auth.Register(domain.Credentials{
		Username: domain.Username(body.Username),
		Password: body.Password,
		Fullname: body.Fullname,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{"addedUser": added})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	accessToken, err := h.auth.Login(domain.Username(body.Username), body.Password)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	// cookie for browser clients, token in the body for everyone else
	http.SetCookie(w, &http.Cookie{
		Path:     "/",
		Name:     "accessToken",
		Value:    accessToken,
		MaxAge:   int(h.cfg.JwtTTL().Seconds()),
		HttpOnly: true,
	})

	writeSuccess(w, http.StatusOK, map[string]any{"accessToken": accessToken})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Path:     "/",
		Name:     "accessToken",
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
	})

	writeSuccess(w, http.StatusOK, nil)
}
