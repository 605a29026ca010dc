package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/piresc/freightdesk/internal/pkg/models"
	"github.com/ttacon/libphonenumber"
)

var (
	oldPlatePattern      = regexp.MustCompile(`^[A-Z]{3}[0-9]{4}$`)
	mercosulPlatePattern = regexp.MustCompile(`^[A-Z]{3}[0-9][A-Z][0-9]{2}$`)
)

// IsValidCPF checks an individual taxpayer id with the two-pass mod-11
// check digits. Punctuation is ignored; repeated-digit ids are rejected.
func IsValidCPF(cpf string) bool {
	digits := models.DigitsOnly(cpf)
	if len(digits) != 11 || allSame(digits) {
		return false
	}

	for pass := 0; pass < 2; pass++ {
		n := 9 + pass
		sum := 0
		for i := 0; i < n; i++ {
			sum += int(digits[i]-'0') * (n + 1 - i)
		}
		check := (sum * 10) % 11
		if check == 10 {
			check = 0
		}
		if check != int(digits[n]-'0') {
			return false
		}
	}
	return true
}

// IsValidCNPJ checks a company taxpayer id
func IsValidCNPJ(cnpj string) bool {
	digits := models.DigitsOnly(cnpj)
	if len(digits) != 14 || allSame(digits) {
		return false
	}

	weights := []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	for pass := 0; pass < 2; pass++ {
		n := 12 + pass
		w := weights[1-pass:]
		sum := 0
		for i := 0; i < n; i++ {
			sum += int(digits[i]-'0') * w[i]
		}
		check := 0
		if r := sum % 11; r >= 2 {
			check = 11 - r
		}
		if check != int(digits[n]-'0') {
			return false
		}
	}
	return true
}

// IsValidDocument accepts either a CPF or a CNPJ
func IsValidDocument(doc string) bool {
	return IsValidCPF(doc) || IsValidCNPJ(doc)
}

// IsValidPlate accepts the legacy (ABC1234) and Mercosul (ABC1D23) formats
func IsValidPlate(plate string) bool {
	p := models.NormalizePlate(plate)
	return oldPlatePattern.MatchString(p) || mercosulPlatePattern.MatchString(p)
}

// NormalizePhone turns a Brazilian phone number into E.164 digits
// (55 + DDD + number), without the leading plus.
func NormalizePhone(phone string) (string, error) {
	digits := models.DigitsOnly(phone)
	if strings.HasPrefix(digits, "55") && (len(digits) == 12 || len(digits) == 13) {
		digits = digits[2:]
	}
	digits = strings.TrimLeft(digits, "0")

	if len(digits) != 10 && len(digits) != 11 {
		return "", fmt.Errorf("invalid phone number length")
	}
	p, err := libphonenumber.Parse(digits, "BR")
	if err != nil {
		return "", err
	}
	if !libphonenumber.IsValidNumber(p) {
		return "", fmt.Errorf("phone number is not valid")
	}
	return strings.TrimPrefix(libphonenumber.Format(p, libphonenumber.E164), "+"), nil
}

// IsValidPhone reports whether NormalizePhone accepts the number
func IsValidPhone(phone string) bool {
	_, err := NormalizePhone(phone)
	return err == nil
}

// FormatCPF renders digits as 000.000.000-00
func FormatCPF(cpf string) string {
	d := models.DigitsOnly(cpf)
	if len(d) != 11 {
		return cpf
	}
	return d[:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:]
}

func allSame(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
