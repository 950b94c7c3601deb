package auth

import "badgehub/internal/entity"

// Post-login destinations per role. These are hints for the UI router, not
// authorization decisions.
const (
	RedirectBadges      = "/Badges"
	RedirectResponsable = "/ResponsableBadge"
	RedirectPrint       = "/ImprimeBadge"
	RedirectHome        = "/Home"
)

// RedirectForRole maps a user role to its post-login destination. Unknown
// roles land on the generic home view.
func RedirectForRole(role string) string {
	switch role {
	case entity.UserRoleAdmin:
		return RedirectBadges
	case entity.UserRoleResponsable:
		return RedirectResponsable
	case entity.UserRolePrinter:
		return RedirectPrint
	default:
		return RedirectHome
	}
}
