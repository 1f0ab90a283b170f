package models

// Known user roles. The role gates which profile endpoints the client may
// use; any other value is treated as "no profile stream available".
const (
	RoleTalent    = "talent"
	RoleRecruiter = "recruiter"
)

// User is the unified domain form of a marketplace account. Both talent and
// recruiter wire shapes map into it; role-specific fields are simply empty
// for the other role.
type User struct {
	// ID is the server-side unique identifier of the user.
	ID string

	// Role is one of [RoleTalent] or [RoleRecruiter].
	Role string

	// FirstName and LastName are the user's display name parts.
	FirstName string
	LastName  string

	// Email is the account e-mail address.
	Email string

	// AvatarURL points to the profile picture, if any.
	AvatarURL string

	// Headline is the talent's professional title (talent only).
	Headline string

	// Skills lists the talent's declared skills (talent only).
	Skills []string

	// CompanyName is the recruiter's company (recruiter only).
	CompanyName string

	// Language is the user's preferred interface language code.
	Language string
}

// TalentDTO is the wire representation of a talent profile.
type TalentDTO struct {
	ID        string   `json:"id"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	AvatarURL string   `json:"avatarUrl"`
	Headline  string   `json:"headline"`
	Skills    []string `json:"skills"`
	Language  string   `json:"language"`
}

// ToDomain maps the talent DTO to the [User] domain form.
func (d TalentDTO) ToDomain() User {
	return User{
		ID:        d.ID,
		Role:      RoleTalent,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
		AvatarURL: d.AvatarURL,
		Headline:  d.Headline,
		Skills:    d.Skills,
		Language:  d.Language,
	}
}

// RecruiterDTO is the wire representation of a recruiter profile.
type RecruiterDTO struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	AvatarURL   string `json:"avatarUrl"`
	CompanyName string `json:"companyName"`
	Language    string `json:"language"`
}

// ToDomain maps the recruiter DTO to the [User] domain form.
func (d RecruiterDTO) ToDomain() User {
	return User{
		ID:          d.ID,
		Role:        RoleRecruiter,
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		Email:       d.Email,
		AvatarURL:   d.AvatarURL,
		CompanyName: d.CompanyName,
		Language:    d.Language,
	}
}
