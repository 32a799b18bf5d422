package record

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"uteqportal/internal/domain/validator"
)

const (
	CollectionUsers = "usuarios"

	FieldUserFirstName = "nombre"
	FieldUserLastName  = "apellidos"
	FieldUserEmail     = "correo"
	FieldUserPassword  = "contrasena"

	// FieldUserType - тип регистрации: institucional или publico
	FieldUserType = "tipo"

	UserTypeInstitutional = "institucional"
	UserTypePublic        = "publico"
)

var UserKind = Kind{
	Name:        KindNameUser,
	DisplayName: "Usuario",
	Collection:  CollectionUsers,
	Fields: []FieldSpec{
		{Key: FieldUserFirstName, Label: "Nombre"},
		{Key: FieldUserLastName, Label: "Apellidos"},
		{Key: FieldUserEmail, Label: "Correo"},
		{Key: FieldUserPassword, Label: "Contraseña", Secret: true},
	},
	TitleField:   FieldUserEmail,
	SummaryField: FieldUserLastName,
	Schema: validator.Schema{
		{Field: FieldUserFirstName, Rule: validator.Required},
		{Field: FieldUserFirstName, Rule: validator.PersonName},
		{Field: FieldUserLastName, Rule: validator.Required},
		{Field: FieldUserLastName, Rule: validator.PersonName},
		{Field: FieldUserEmail, Rule: validator.Required},
		{Field: FieldUserEmail, Rule: validator.Email},
		{Field: FieldUserPassword, Rule: validator.Required},
	},
	Insert:  Append,
	Prepare: HashUserPassword,
}

// UserKindForDomain возвращает UserKind с правилом почты для другого домена.
func UserKindForDomain(domain string) Kind {
	k := UserKind
	schema := make(validator.Schema, len(k.Schema))
	copy(schema, k.Schema)
	for i, fr := range schema {
		if fr.Rule.Name == validator.RuleInstitutionalEmail {
			schema[i].Rule = validator.InstitutionalEmail(domain)
		}
	}
	k.Schema = schema
	return k
}

var ErrUnknownUserType = errors.New("tipo de usuario desconocido")

// UserKindForType возвращает схему пользователя для типа регистрации:
// институциональный домен или публичные почтовые сервисы.
func UserKindForType(userType, domain string) (Kind, error) {
	switch userType {
	case UserTypeInstitutional:
		return UserKindForDomain(domain), nil
	case UserTypePublic:
		k := UserKind
		schema := make(validator.Schema, len(k.Schema))
		copy(schema, k.Schema)
		for i, fr := range schema {
			if fr.Rule.Name == validator.RuleInstitutionalEmail {
				schema[i].Rule = validator.Public
			}
		}
		k.Schema = schema
		return k, nil
	}
	return Kind{}, fmt.Errorf("%w: %q", ErrUnknownUserType, userType)
}

type User struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Password  string // хэш после сохранения
	Type      string
}

func (u User) Fields() Fields {
	f := Fields{
		FieldUserFirstName: u.FirstName,
		FieldUserLastName:  u.LastName,
		FieldUserEmail:     u.Email,
		FieldUserPassword:  u.Password,
	}
	if u.Type != "" {
		f[FieldUserType] = u.Type
	}
	return f
}

func UserFromRecord(r Record) User {
	return User{
		ID:        r.ID,
		FirstName: r.Get(FieldUserFirstName),
		LastName:  r.Get(FieldUserLastName),
		Email:     r.Get(FieldUserEmail),
		Password:  r.Get(FieldUserPassword),
		Type:      r.Get(FieldUserType),
	}
}

// HashUserPassword заменяет открытый пароль bcrypt-хэшем.
// Уже захэшированное значение не трогается, чтобы повторное
// редактирование не хэшировало хэш.
func HashUserPassword(fields Fields) (Fields, error) {
	out := fields.Clone()
	password := out[FieldUserPassword]
	if password == "" || isBcryptHash(password) {
		return out, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("хэш пароля: %w", err)
	}
	out[FieldUserPassword] = string(hash)
	return out, nil
}

// CheckUserPassword сверяет пароль с сохраненным хэшем.
func CheckUserPassword(u User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}

func isBcryptHash(value string) bool {
	_, err := bcrypt.Cost([]byte(value))
	return err == nil
}
