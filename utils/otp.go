package utils

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"homeserve/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const otpTTL = 5 * time.Minute

// generateNumericOTP generates a secure random numeric code of the given length.
func generateNumericOTP(length int) (string, error) {
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}

// SendSMS hands a message to the SMS delivery collaborator. Delivery itself
// is outside this service; the outgoing message is logged.
func SendSMS(phone, message string) error {
	GetLogger().Sugar().Infof("Sending SMS to %s: %s", phone, message)
	return nil
}

// InitiatePhoneOTP generates a verification code for the phone number, stores
// a bcrypt hash of it in Redis with a 5-minute TTL, and hands the code to the
// SMS collaborator.
func InitiatePhoneOTP(phone string) error {
	otp, err := generateNumericOTP(config.AppConfig.OTPLength)
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(otp), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash OTP: %w", err)
	}

	ctx := context.Background()
	client := GetOTPCacheClient()
	otpKey := fmt.Sprintf("otp:%s", phone)
	if err := client.Set(ctx, otpKey, string(hash), otpTTL).Err(); err != nil {
		GetLogger().Error("Failed to cache OTP", zap.Error(err))
		return fmt.Errorf("failed to initiate phone OTP")
	}

	message := fmt.Sprintf("Your verification code is: %s. It expires in 5 minutes.", otp)
	if err := SendSMS(phone, message); err != nil {
		GetLogger().Error("Failed to send OTP", zap.Error(err))
		return fmt.Errorf("failed to send OTP")
	}

	GetLogger().Sugar().Infof("Sent OTP to phone %s (expires in %v)", phone, otpTTL)
	return nil
}

// VerifyPhoneOTP compares the provided code against the stored hash. On a
// match the stored code is deleted so it cannot be replayed.
func VerifyPhoneOTP(phone, providedOTP string) error {
	ctx := context.Background()
	client := GetOTPCacheClient()
	otpKey := fmt.Sprintf("otp:%s", phone)

	storedHash, err := client.Get(ctx, otpKey).Result()
	if err != nil {
		if err == redis.Nil {
			return fmt.Errorf("OTP not found or expired")
		}
		return fmt.Errorf("failed to retrieve OTP: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(providedOTP)) != nil {
		return fmt.Errorf("OTP does not match")
	}

	if err := client.Del(ctx, otpKey).Err(); err != nil {
		GetLogger().Error("Failed to delete OTP after verification", zap.Error(err))
	}
	return nil
}
