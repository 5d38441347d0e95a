package services

import (
	"regexp"

	"cargo-logbook-backend/db/models"
	"cargo-logbook-backend/users/repositories"
)

func ValidateUser(user *models.User) string {
	if user.Name == "" {
		return "Informe o seu nome."
	}
	if user.Email == "" {
		return "Informe o e-mail."
	}
	if user.Password == "" {
		return "Informe a senha."
	}
	return ""
}

func ValidatePassword(password string) string {
	if len(password) < 6 {
		return "A senha deve ter pelo menos 6 caracteres."
	}
	return ""
}

func ValidateEmailFormat(email string) bool {
	var emailRegex = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)
	return emailRegex.MatchString(email)
}

func IsEmailInDB(email string, repo repositories.UserRepository) bool {
	user, err := repo.GetUserByEmail(email)
	return err == nil && user != nil
}

func ValidateEmail(email string, repo repositories.UserRepository) string {
	if !ValidateEmailFormat(email) {
		return "Formato de e-mail inválido."
	}
	if IsEmailInDB(email, repo) {
		return "Esse e-mail já está em uso."
	}
	return ""
}
