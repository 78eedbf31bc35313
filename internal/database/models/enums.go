package models

// EntryType is the category of a truck transaction. The set is closed:
// anything outside it is rejected at the service boundary.
type EntryType string

const (
	EntryTypeSales    EntryType = "Sales"
	EntryTypeRawStone EntryType = "RawStone"
)

// IsValid checks if the EntryType is valid
func (e EntryType) IsValid() bool {
	switch e {
	case EntryTypeSales, EntryTypeRawStone:
		return true
	}
	return false
}

// AllEntryTypes returns the closed enumeration of entry types
func AllEntryTypes() []EntryType {
	return []EntryType{EntryTypeSales, EntryTypeRawStone}
}

// UserRole defines the role of a user within an organization
type UserRole string

const (
	UserRoleOwner UserRole = "owner"
	UserRoleUser  UserRole = "user"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleOwner, UserRoleUser:
		return true
	}
	return false
}

// EntryStatus defines the lifecycle status of a truck entry
type EntryStatus string

const (
	EntryStatusActive    EntryStatus = "active"
	EntryStatusCompleted EntryStatus = "completed"
	EntryStatusCancelled EntryStatus = "cancelled"
)

// IsValid checks if the EntryStatus is valid
func (s EntryStatus) IsValid() bool {
	switch s {
	case EntryStatusActive, EntryStatusCompleted, EntryStatusCancelled:
		return true
	}
	return false
}
