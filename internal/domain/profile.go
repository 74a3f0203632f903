package domain

type UserRole string

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleProvider UserRole = "PROVIDER"
	RoleTrader   UserRole = "TRADER"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleProvider, RoleTrader:
		return true
	}
	return false
}

type Language string

const (
	LanguageEnglish Language = "en"
	LanguageHindi   Language = "hi"
)

func (l Language) Valid() bool {
	return l == LanguageEnglish || l == LanguageHindi
}

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

func (t Theme) Valid() bool {
	return t == ThemeDark || t == ThemeLight
}

type UserProfile struct {
	UID               string   `json:"uid"`
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	Role              UserRole `json:"role"`
	IsApproved        bool     `json:"isApproved"`
	CompanyName       string   `json:"companyName,omitempty"`
	PreferredLanguage Language `json:"preferredLanguage"`
}
