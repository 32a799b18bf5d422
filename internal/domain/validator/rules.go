package validator

import (
	"regexp"
	"strings"
)

// DefaultInstitutionalDomain - суффикс институциональной почты UTEQ
const DefaultInstitutionalDomain = "@uteq.edu.ec"

var (
	emailRe      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	personNameRe = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚáéíóúÑñ\s]+$`)
	urlRe        = regexp.MustCompile(`^(ftp|http|https)://\S+$`)
)

// Rule - именованная проверка одного значения поля
type Rule struct {
	Name  string
	Check func(value string) bool
}

const (
	RuleRequired           = "requiredNonEmpty"
	RuleInstitutionalEmail = "isInstitutionalEmail"
	RulePersonName         = "isPersonName"
	RuleWellFormedURL      = "isWellFormedUrl"
	RulePublicEmail        = "isPublicEmail"
)

// PublicEmailDomains - почтовые домены, разрешенные для публичной регистрации
var PublicEmailDomains = []string{"gmail.com", "hotmail.com", "yahoo.com", "outlook.com", "outlook.es"}

var (
	Required   = Rule{Name: RuleRequired, Check: RequiredNonEmpty}
	PersonName = Rule{Name: RulePersonName, Check: IsPersonName}
	URL        = Rule{Name: RuleWellFormedURL, Check: IsWellFormedURL}
	Email      = InstitutionalEmail(DefaultInstitutionalDomain)
	Public     = Rule{Name: RulePublicEmail, Check: IsPublicEmail}
)

// RequiredNonEmpty возвращает true, если значение не пустое после обрезки пробелов.
func RequiredNonEmpty(value string) bool {
	return strings.TrimSpace(value) != ""
}

// IsInstitutionalEmail проверяет форму адреса и домен @uteq.edu.ec.
func IsInstitutionalEmail(value string) bool {
	return isEmailWithSuffix(value, DefaultInstitutionalDomain)
}

// InstitutionalEmail строит правило для произвольного институционального домена.
// Домен без ведущего '@' дополняется им.
func InstitutionalEmail(domain string) Rule {
	suffix := strings.ToLower(strings.TrimSpace(domain))
	if !strings.HasPrefix(suffix, "@") {
		suffix = "@" + suffix
	}
	return Rule{
		Name: RuleInstitutionalEmail,
		Check: func(value string) bool {
			return isEmailWithSuffix(value, suffix)
		},
	}
}

// IsPublicEmail проверяет форму адреса и домен из PublicEmailDomains.
func IsPublicEmail(value string) bool {
	for _, d := range PublicEmailDomains {
		if isEmailWithSuffix(value, "@"+d) {
			return true
		}
	}
	return false
}

func isEmailWithSuffix(value, suffix string) bool {
	if !emailRe.MatchString(value) {
		return false
	}
	return strings.HasSuffix(strings.ToLower(value), strings.ToLower(suffix))
}

// IsPersonName допускает только буквы (включая испанские с диакритикой) и пробелы.
func IsPersonName(value string) bool {
	return personNameRe.MatchString(value)
}

// IsWellFormedURL требует схему ftp, http или https.
func IsWellFormedURL(value string) bool {
	return urlRe.MatchString(value)
}
