package utils

import (
	"fmt"
	"math/rand"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/outpost-ops/taskboard/backend/internal/domain"
)

var firstNames = []string{
	"Noam", "Dana", "Yoav", "Tamar", "Eitan", "Maya", "Omer", "Shira",
	"Idan", "Noa", "Lior", "Gal", "Amit", "Roni", "Tom", "Yael",
	"Ariel", "Hila", "Nadav", "Michal",
}
var lastNames = []string{
	"Peretz", "Mizrahi", "Azulay", "Cohen", "Levi", "Biton", "Dahan",
	"Avraham", "Friedman", "Malka", "Gabay", "Ohana", "Shapiro", "Katz",
}

func GenerateRandomFullName() string {
	return firstNames[rand.Intn(len(firstNames))] + " " + lastNames[rand.Intn(len(lastNames))]
}

var roles = []domain.Role{
	domain.RoleSoldier,
	domain.RoleSergeant,
	domain.RoleCommander,
}

func GenerateRandomRole() domain.Role {
	return roles[rand.Intn(len(roles))]
}

var digits = "0123456789"

func GenerateUsernameFromFullName(fullName string) string {
	username := strings.ToLower(strings.ReplaceAll(fullName, " ", "."))

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		username += string(digits[rand.Intn(len(digits))])
	}

	return username
}

func GenerateRandomPerson(siteID int64, password string, emailDomainName string) (*domain.Person, error) {
	fullName := GenerateRandomFullName()
	username := GenerateUsernameFromFullName(fullName)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	person := &domain.Person{
		SiteID:       siteID,
		Username:     username,
		PasswordHash: string(passwordHash),
		FullName:     fullName,
		Email:        strings.ReplaceAll(username, ".", "") + "@" + emailDomainName,
		Role:         GenerateRandomRole(),
		IsActive:     true,
	}

	return person, nil
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	random_password := make([]rune, length)
	for i := range random_password {
		random_password[i] = letters[rand.Intn(len(letters))]
	}
	return string(random_password)
}

func GenerateRandomID(letterLength int, digitLength int) string {
	random_id := make([]rune, letterLength+digitLength)
	for i := range random_id {
		if i < letterLength {
			random_id[i] = letters[rand.Intn(len(letters))]
		} else {
			random_id[i] = rune(digits[rand.Intn(len(digits))])
		}
	}
	return string(random_id)
}
