package service

import (
	"fmt"
	"time"
)

const (
	otpSubject = "Your OTP Code"

	registrationSubject = "Registration Confirmation"
	registrationBody    = "You have successfully registered for DeFiSensei. Thank you!"

	deletionSubject = "Account Deletion Confirmation"
)

func otpBody(code int, ttl time.Duration) string {
	return fmt.Sprintf("Your OTP code is %d. It is valid for %s.", code, humanTTL(ttl))
}

func deletionBody(username string) string {
	return fmt.Sprintf("Dear %s,\n\nYour account has been successfully deleted.\n\nBest regards,\nYour Team", username)
}

// humanTTL renders whole minutes as "N minutes" and anything shorter or
// uneven in seconds.
func humanTTL(ttl time.Duration) string {
	if ttl >= time.Minute && ttl%time.Minute == 0 {
		minutes := int(ttl / time.Minute)
		if minutes == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", minutes)
	}

	return fmt.Sprintf("%d seconds", int(ttl.Round(time.Second)/time.Second))
}
