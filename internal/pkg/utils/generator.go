package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"telecare-service/internal/pkg/constvars"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + strings.ReplaceAll(uuid.NewString(), "-", "")
}

func GenerateRandomDigits(length int) (string, error) {
	const digits = "0123456789"
	max := big.NewInt(int64(len(digits)))

	out := make([]byte, length)
	for i := range out {
		num, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = digits[num.Int64()]
	}

	return string(out), nil
}

// GenerateDoctorID returns "dr" followed by six random digits.
func GenerateDoctorID() (string, error) {
	digits, err := GenerateRandomDigits(6)
	if err != nil {
		return "", err
	}
	return "dr" + digits, nil
}

// GenerateAppointmentID returns "APT-{unix seconds}-{four random digits}".
func GenerateAppointmentID(now time.Time) (string, error) {
	digits, err := GenerateRandomDigits(4)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("APT-%d-%s", now.Unix(), digits), nil
}

func GenerateFileName(prefix, owner, fileExtension string, now time.Time) string {
	timestamp := now.Format("20060102_150405")
	return fmt.Sprintf("%s_%s_%s%s", prefix, owner, timestamp, fileExtension)
}
