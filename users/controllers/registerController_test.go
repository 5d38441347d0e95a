package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"cargo-logbook-backend/config"
	"cargo-logbook-backend/db/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	config.Logger = zap.NewNop()
	m.Run()
}

type stubUserRepo struct {
	byEmail map[string]*models.User
}

func (s *stubUserRepo) CreateUser(user *models.User) (*models.User, error) {
	return user, nil
}

func (s *stubUserRepo) GetUserByID(id string) (*models.User, error) {
	return nil, errors.New("record not found")
}

func (s *stubUserRepo) GetUserByEmail(email string) (*models.User, error) {
	if user, ok := s.byEmail[email]; ok {
		return user, nil
	}
	return nil, errors.New("record not found")
}

func newRegisterApp(repo *stubUserRepo) *fiber.App {
	controller := &AuthController{UserRepo: repo}

	app := fiber.New()
	app.Post("/api/v1/auth/register", controller.RegisterUser)
	return app
}

func postRegister(t *testing.T, app *fiber.App, payload string) (*http.Response, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))

	return resp, body
}

func TestRegisterUserRejectsMissingFields(t *testing.T) {
	app := newRegisterApp(&stubUserRepo{})

	resp, body := postRegister(t, app,
		`{"email":"operador@example.com","senha":"segredo","confirmar":"segredo"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Informe o seu nome.", body["error"])

	resp, body = postRegister(t, app,
		`{"nome":"Operador","senha":"segredo","confirmar":"segredo"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Informe o e-mail.", body["error"])

	resp, body = postRegister(t, app,
		`{"nome":"Operador","email":"operador@example.com","confirmar":"segredo"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Informe a senha.", body["error"])

	resp, body = postRegister(t, app,
		`{"nome":"Operador","email":"operador@example.com","senha":"segredo"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Preencha todos os campos.", body["error"])
}

func TestRegisterUserRejectsPasswordMismatch(t *testing.T) {
	app := newRegisterApp(&stubUserRepo{})

	resp, body := postRegister(t, app,
		`{"nome":"Operador","email":"operador@example.com","senha":"segredo","confirmar":"diferente"}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "As senhas não coincidem.", body["error"])
}

func TestRegisterUserRejectsShortPassword(t *testing.T) {
	app := newRegisterApp(&stubUserRepo{})

	resp, body := postRegister(t, app,
		`{"nome":"Operador","email":"operador@example.com","senha":"12345","confirmar":"12345"}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "A senha deve ter pelo menos 6 caracteres.", body["error"])
}

func TestRegisterUserRejectsDuplicateEmail(t *testing.T) {
	app := newRegisterApp(&stubUserRepo{byEmail: map[string]*models.User{
		"existente@example.com": {Email: "existente@example.com"},
	}})

	resp, body := postRegister(t, app,
		`{"nome":"Operador","email":"existente@example.com","senha":"segredo","confirmar":"segredo"}`)

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Esse e-mail já está em uso.", body["error"])
}
