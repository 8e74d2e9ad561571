package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
)

type AuthHandler struct {
	authService service.IAuthService
}

func NewAuthHandler(authService service.IAuthService) *AuthHandler {
	if authService == nil {
		panic("authService cannot be nil")
	}
	return &AuthHandler{
		authService: authService,
	}
}

// Signup 註冊
func (a *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var signupDTO dto.SignupDTO
	if err := json.NewDecoder(r.Body).Decode(&signupDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if signupDTO.Name == "" || signupDTO.Email == "" || signupDTO.Password == "" {
		api.ErrorJSON(w, http.StatusBadRequest, "name, email and password are required")
		return
	}

	user, err := a.authService.Signup(r.Context(), signupDTO.Name, signupDTO.Email, signupDTO.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.SuccessJSON(w, http.StatusCreated, convertUserModelToDTO(user))
}

// Login 登入取得token
func (a *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var loginDTO dto.LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&loginDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	loginRes, err := a.authService.Login(r.Context(), loginDTO.Email, loginDTO.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.SuccessJSON(w, http.StatusOK, dto.LoginResponse{
		AccessToken: dto.TokenInfo{
			Value:     loginRes.AccessToken,
			ExpiresIn: loginRes.ExpiresIn,
		},
		User: convertUserModelToDTO(loginRes.User),
	})
}

func convertUserModelToDTO(user *model.User) dto.UserDTO {
	return dto.UserDTO{
		ID:    user.UserID,
		Name:  user.UserName,
		Email: user.UserEmail,
		Role:  user.Role,
	}
}
