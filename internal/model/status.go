package model

// VerificationStatus is the review state of an achievement or project.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// Valid reports whether s is one of the known verification states.
func (s VerificationStatus) Valid() bool {
	switch s {
	case VerificationPending, VerificationVerified, VerificationRejected:
		return true
	}
	return false
}

// ApplicationStatus is the lifecycle state of a job application.
type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "pending"
	ApplicationShortlisted ApplicationStatus = "shortlisted"
	ApplicationRejected    ApplicationStatus = "rejected"
	ApplicationAccepted    ApplicationStatus = "accepted"
	ApplicationWithdrawn   ApplicationStatus = "withdrawn"
)

// Valid reports whether s is one of the known application states.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationShortlisted, ApplicationRejected,
		ApplicationAccepted, ApplicationWithdrawn:
		return true
	}
	return false
}

// Terminal reports whether no further transition is permitted from s.
func (s ApplicationStatus) Terminal() bool {
	switch s {
	case ApplicationAccepted, ApplicationRejected, ApplicationWithdrawn:
		return true
	}
	return false
}
