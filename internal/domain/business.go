package domain

// BusinessInfo is the venue's public profile. A single row; created with
// defaults on first read if the venue never set one up.
type BusinessInfo struct {
	ID      int64
	Name    string
	Address string
	Phone   string
	Hours   string
	LogoURL *string
}

// DefaultBusinessInfo returns the profile used until the venue edits it.
func DefaultBusinessInfo() *BusinessInfo {
	return &BusinessInfo{
		Name:    "Demo Restaurant",
		Address: "123 Demo Street, Demo City, DC 12345",
		Phone:   "(555) 123-4567",
		Hours:   "Mon-Sun: 11:00 AM - 10:00 PM",
	}
}
