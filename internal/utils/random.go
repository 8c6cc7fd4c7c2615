package utils

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/medivista-dev/hospital-portal/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var firstNames = []string{
	"Aarav", "Amelia", "Arjun", "Ben", "Clara", "Daniel", "Diya", "Emma",
	"Farhan", "Grace", "Hana", "Ishaan", "James", "Kavya", "Liam", "Meera",
	"Noah", "Priya", "Rohan", "Sofia", "Tariq", "Uma", "Vikram", "Zara",
}

var lastNames = []string{
	"Ahmed", "Brown", "Chen", "Das", "Evans", "Fernandes", "Gupta", "Hall",
	"Iyer", "Joshi", "Khan", "Lopez", "Mehta", "Nair", "Patel", "Qureshi",
	"Rao", "Singh", "Thomas", "Verma", "Wright", "Yadav",
}

func GenerateRandomFullName() string {
	return firstNames[rand.Intn(len(firstNames))] + " " + lastNames[rand.Intn(len(lastNames))]
}

func EmailFromFullName(fullName string, emailDomain string) string {
	local := strings.ToLower(strings.ReplaceAll(fullName, " ", "."))
	return fmt.Sprintf("%s%d@%s", local, rand.Intn(1000), emailDomain)
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	password := make([]rune, length)
	for i := range password {
		password[i] = letters[rand.Intn(len(letters))]
	}
	return string(password)
}

var seedRoles = []domain.Role{
	domain.RoleReceptionist,
	domain.RoleDoctor,
	domain.RoleStaff,
	domain.RolePatient,
}

func GenerateRandomUser(password string, emailDomain string) (*domain.User, error) {
	fullName := GenerateRandomFullName()
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &domain.User{
		Email:        EmailFromFullName(fullName, emailDomain),
		PasswordHash: string(passwordHash),
		FullName:     fullName,
		Role:         seedRoles[rand.Intn(len(seedRoles))],
	}, nil
}

var visitReasons = []string{
	"fever", "routine checkup", "back pain", "migraine",
	"follow-up visit", "skin rash", "chest pain", "vaccination",
}

func GenerateRandomPatient(visitDate string, emailDomain string) *domain.Patient {
	fullName := GenerateRandomFullName()

	return &domain.Patient{
		FullName:   fullName,
		Email:      EmailFromFullName(fullName, emailDomain),
		Age:        int32(rand.Intn(90) + 1),
		BloodGroup: domain.BloodGroups[rand.Intn(len(domain.BloodGroups))],
		Reason:     visitReasons[rand.Intn(len(visitReasons))],
		AmountPaid: float64(rand.Intn(400)+100) + 0.5*float64(rand.Intn(2)),
		VisitDate:  visitDate,
	}
}

var slotIntervals = []int32{20, 30}

func GenerateRandomDoctor(specialtyID int64, emailDomain string) *domain.Doctor {
	fullName := "Dr. " + GenerateRandomFullName()

	// morning or afternoon shift, always a multiple of the interval long
	startHour := rand.Intn(2)*6 + 8 // 08:00 or 14:00
	endHour := startHour + 6

	return &domain.Doctor{
		FullName:      fullName,
		Email:         EmailFromFullName(fullName[4:], emailDomain),
		SpecialtyID:   specialtyID,
		ShiftStart:    fmt.Sprintf("%02d:00", startHour),
		ShiftEnd:      fmt.Sprintf("%02d:00", endHour),
		SlotInterval:  slotIntervals[rand.Intn(len(slotIntervals))],
		NurseAssigned: GenerateRandomFullName(),
	}
}

var wardTypes = []domain.WardType{
	domain.WardGeneral,
	domain.WardPrivate,
	domain.WardICU,
	domain.WardEmergency,
}

func GenerateRandomRoom(number int) *domain.Room {
	return &domain.Room{
		Number:   fmt.Sprintf("%d%02d", number/100+1, number%100),
		Floor:    int32(number/100 + 1),
		Ward:     wardTypes[rand.Intn(len(wardTypes))],
		Capacity: int32(rand.Intn(4) + 1),
	}
}
