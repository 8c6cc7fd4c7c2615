package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestGenerateRandomOTP(t *testing.T) {
	for i := 0; i < 100; i++ {
		otp := GenerateRandomOTP()
		require.Len(t, otp, 6)
		for _, c := range otp {
			require.True(t, c >= '0' && c <= '9', "otp %q contains non-digit", otp)
		}
	}
}

func TestGenerateRandomPassword(t *testing.T) {
	assert.Len(t, GenerateRandomPassword(12), 12)
	assert.Len(t, GenerateRandomPassword(0), 0)
}

func TestEmailFromFullName(t *testing.T) {
	email := EmailFromFullName("Priya Singh", "example.com")
	assert.Regexp(t, `^priya\.singh\d+@example\.com$`, email)
}

func TestGenerateRandomUser(t *testing.T) {
	user, err := GenerateRandomUser("secret-password", "example.com")
	require.NoError(t, err)

	assert.NotEmpty(t, user.FullName)
	assert.NotEmpty(t, user.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret-password")))
}

func TestGenerateRandomPatient(t *testing.T) {
	p := GenerateRandomPatient("2025-03-10", "example.com")

	assert.NotEmpty(t, p.FullName)
	assert.Equal(t, "2025-03-10", p.VisitDate)
	assert.Positive(t, p.Age)
	assert.NotEmpty(t, p.BloodGroup)
}
